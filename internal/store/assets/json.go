package assets

import (
	"encoding/json"
	"fmt"

	"github.com/dkuzmenko/wisdomvault/internal/models"
)

func marshalDefs(defs []models.FieldDef) ([]byte, error) {
	b, err := json.Marshal(defs)
	if err != nil {
		return nil, fmt.Errorf("encode field definitions: %w", err)
	}
	return b, nil
}

func unmarshalDefs(data []byte) ([]models.FieldDef, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var defs []models.FieldDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decode field definitions: %w", err)
	}
	return defs, nil
}
