package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FieldType classifies a value in a user-defined asset schema.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeBool   FieldType = "bool"
)

// FieldDef declares one field of an asset type: a name and its value type.
type FieldDef struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// AssetType is a user-defined schema: an ordered list of field definitions.
type AssetType struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Fields    []FieldDef `json:"fields"`
	CreatedAt time.Time  `json:"created_at"`
}

// FieldValue is one (name, typed value) pair of an asset record. Values are
// kept as an ordered sequence, not a map, so serialization preserves the
// declared field order.
type FieldValue struct {
	Name  string    `json:"name"`
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
}

// Asset is a record of a user-defined asset type.
type Asset struct {
	Id        string       `json:"id"`
	TypeId    string       `json:"type_id"`
	Name      string       `json:"name"`
	Fields    []FieldValue `json:"fields"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate checks a field value against its declared type.
func (v FieldValue) Validate() error {
	switch v.Type {
	case FieldTypeText:
		return nil
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(v.Value, 64); err != nil {
			return fmt.Errorf("field %q: %q is not a number", v.Name, v.Value)
		}
	case FieldTypeDate:
		if _, err := time.Parse(time.RFC3339, v.Value); err != nil {
			if _, err := time.Parse("2006-01-02", v.Value); err != nil {
				return fmt.Errorf("field %q: %q is not a date", v.Name, v.Value)
			}
		}
	case FieldTypeBool:
		if _, err := strconv.ParseBool(v.Value); err != nil {
			return fmt.Errorf("field %q: %q is not a bool", v.Name, v.Value)
		}
	default:
		return fmt.Errorf("field %q: unknown type %q", v.Name, v.Type)
	}
	return nil
}

// MarshalFields serializes an ordered field-value list for storage.
func MarshalFields(fields []FieldValue) ([]byte, error) {
	return json.Marshal(fields)
}

// UnmarshalFields restores an ordered field-value list from storage.
func UnmarshalFields(data []byte) ([]FieldValue, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var fields []FieldValue
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode asset fields: %w", err)
	}
	return fields, nil
}
