package records

import (
	"context"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/battler-opacity/internal/repositories/records Repository

// Repository stores trait-bearing database records
type Repository interface {
	Put(ctx context.Context, record *entities.Record) error
	Get(ctx context.Context, kind entities.RecordKind, id int) (*entities.Record, error)
	// GetMany returns records in the order of ids
	GetMany(ctx context.Context, kind entities.RecordKind, ids []int) ([]*entities.Record, error)
	ListByKind(ctx context.Context, kind entities.RecordKind) ([]*entities.Record, error)
	Delete(ctx context.Context, kind entities.RecordKind, id int) error
}

// Data is the stored form of a record. Tags are not stored; they are
// extracted from the note on load.
type Data struct {
	Kind entities.RecordKind `json:"kind"`
	ID   int                 `json:"id"`
	Name string              `json:"name"`
	Note string              `json:"note"`
}
