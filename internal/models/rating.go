package models

import "time"

// Rating is a 1–5 score for an entry. At most one rating exists per
// (EntryId, DeviceId) pair; a second rating from the same device updates
// the existing row.
type Rating struct {
	Id        string    `json:"id"`
	EntryId   string    `json:"entry_id"`
	DeviceId  string    `json:"device_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is free-text feedback on an entry. Append-only, no uniqueness
// constraint.
type Comment struct {
	Id        string    `json:"id"`
	EntryId   string    `json:"entry_id"`
	DeviceId  string    `json:"device_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
