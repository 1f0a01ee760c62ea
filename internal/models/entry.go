package models

import "time"

// Entry is a categorized note. It owns zero or more attachment references.
type Entry struct {
	// Id is a globally unique identifier for the entry.
	Id string `json:"id"`

	// CategoryId references an existing (or concurrently imported) Category.
	CategoryId string `json:"category_id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Wisdom is the free-text notes field.
	Wisdom string `json:"wisdom"`

	// Tags is a comma-separated tag list, pass-through payload.
	Tags string `json:"tags"`

	// DeviceId identifies the installation the entry originated on.
	DeviceId string `json:"device_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ViewCount int64 `json:"view_count"`

	// Attachments is the entry's attachment-reference set. It is written and
	// replaced only as part of an entry write and removed with the entry.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment links an entry to a file in the attachment store. FilePath is
// the stored name inside the managed directory, FileName the display name.
// The reference does not own the file bytes.
type Attachment struct {
	EntryId  string `json:"entry_id"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}
