// Package models defines the data records persisted in the local wisdomvault
// store and exchanged through backup archives.
package models

import "time"

// Category groups entries. Its Id is globally unique and stable across
// devices: re-importing a category with a known Id overwrites the display
// attributes and never creates a duplicate.
type Category struct {
	// Id is a globally unique identifier for the category.
	Id string `json:"id"`

	// Name is unique within a store.
	Name string `json:"name"`

	// Icon and Color are display attributes, pass-through payload.
	Icon  string `json:"icon"`
	Color string `json:"color"`

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time `json:"created_at"`
}
