package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/models"
	"github.com/dkuzmenko/wisdomvault/internal/store"
)

// AssetService manages user-defined asset types and their records.
type AssetService struct {
	repos *store.Repositories
}

func NewAssetService(repos *store.Repositories) *AssetService {
	return &AssetService{repos: repos}
}

func (s *AssetService) AddType(ctx context.Context, name string, defs []models.FieldDef) (*models.AssetType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: type name is required", common.ErrValidation)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", common.ErrValidation)
	}
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", common.ErrValidation, d.Name)
		}
		seen[d.Name] = struct{}{}
		switch d.Type {
		case models.FieldTypeText, models.FieldTypeNumber, models.FieldTypeDate, models.FieldTypeBool:
		default:
			return nil, fmt.Errorf("%w: unknown field type %q", common.ErrValidation, d.Type)
		}
	}

	t := &models.AssetType{
		Id:        uuid.NewString(),
		Name:      name,
		Fields:    defs,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Assets.UpsertType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Add creates an asset record. Values are matched against the declared
// schema: unknown names are rejected, declared fields keep their declared
// order and type, and absent fields are stored empty.
func (s *AssetService) Add(ctx context.Context, typeID, name string, values map[string]string) (*models.Asset, error) {
	t, err := s.repos.Assets.GetTypeByID(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("asset type %s: %w", typeID, err)
	}

	declared := make(map[string]struct{}, len(t.Fields))
	for _, d := range t.Fields {
		declared[d.Name] = struct{}{}
	}
	for n := range values {
		if _, ok := declared[n]; !ok {
			return nil, fmt.Errorf("%w: field %q is not declared by type %s", common.ErrValidation, n, t.Name)
		}
	}

	fields := make([]models.FieldValue, 0, len(t.Fields))
	for _, d := range t.Fields {
		v := models.FieldValue{Name: d.Name, Type: d.Type, Value: values[d.Name]}
		if v.Value != "" {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
			}
		}
		fields = append(fields, v)
	}

	a := &models.Asset{
		Id:        uuid.NewString(),
		TypeId:    typeID,
		Name:      name,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Assets.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
