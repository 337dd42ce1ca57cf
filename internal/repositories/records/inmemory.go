package records

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
)

// InMemoryRepository keeps records in process memory.
// Useful for tests and for running without Redis.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[entities.RecordKind]map[int]*Data
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[entities.RecordKind]map[int]*Data),
	}
}

func (r *InMemoryRepository) Put(ctx context.Context, record *entities.Record) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.records[record.Kind]
	if !ok {
		byID = make(map[int]*Data)
		r.records[record.Kind] = byID
	}
	byID[record.ID] = toData(record)

	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, kind entities.RecordKind, id int) (*entities.Record, error) {
	if err := validateKey(kind, id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.records[kind][id]
	if !ok {
		return nil, newNotFoundError(kind, id)
	}

	return toRecord(data), nil
}

func (r *InMemoryRepository) GetMany(ctx context.Context, kind entities.RecordKind, ids []int) ([]*entities.Record, error) {
	out := make([]*entities.Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, kind, id)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *InMemoryRepository) ListByKind(ctx context.Context, kind entities.RecordKind) ([]*entities.Record, error) {
	r.mu.RLock()
	ids := make([]int, 0, len(r.records[kind]))
	for id := range r.records[kind] {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Ints(ids)
	return r.GetMany(ctx, kind, ids)
}

func (r *InMemoryRepository) Delete(ctx context.Context, kind entities.RecordKind, id int) error {
	if err := validateKey(kind, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[kind][id]; !ok {
		return newNotFoundError(kind, id)
	}
	delete(r.records[kind], id)

	return nil
}
