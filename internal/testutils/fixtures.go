package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	"github.com/KirkDiggler/battler-opacity/internal/notetag"
)

// CreateTestRecord creates a record whose note carries the given opacity tag.
// An empty opacity leaves the note untagged.
func CreateTestRecord(kind entities.RecordKind, id int, name, opacity string) *entities.Record {
	note := fmt.Sprintf("%s test record", name)
	if opacity != "" {
		note += fmt.Sprintf("\n<Battler Opacity: %s>", opacity)
	}

	record := &entities.Record{
		Kind: kind,
		ID:   id,
		Name: name,
		Note: note,
	}
	notetag.Apply(record)
	return record
}

// RecordStore is the subset of a record repository fixtures need
type RecordStore interface {
	Put(ctx context.Context, record *entities.Record) error
}

// SeedGhostParty stores a small database: a half-transparent ghost enemy, a
// plain actor with a phantom class, a veil armor and a fade state.
func SeedGhostParty(t *testing.T, store RecordStore) {
	t.Helper()

	fixtures := []*entities.Record{
		CreateTestRecord(entities.RecordKindActor, 1, "Harold", ""),
		CreateTestRecord(entities.RecordKindClass, 1, "Phantom", "204"),
		CreateTestRecord(entities.RecordKindWeapon, 1, "Sword", ""),
		CreateTestRecord(entities.RecordKindArmor, 1, "Veil", "128"),
		CreateTestRecord(entities.RecordKindState, 1, "Fade", "51"),
		CreateTestRecord(entities.RecordKindState, 2, "Vanish", "0"),
		CreateTestRecord(entities.RecordKindEnemy, 1, "Ghost", "128"),
		CreateTestRecord(entities.RecordKindEnemy, 2, "Slime", ""),
	}

	for _, f := range fixtures {
		require.NoError(t, store.Put(context.Background(), f))
	}
}
