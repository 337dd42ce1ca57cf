package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	apperr "github.com/KirkDiggler/battler-opacity/internal/errors"
	"github.com/KirkDiggler/battler-opacity/internal/opacity"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemory()

	veil := &entities.Record{Kind: entities.RecordKindArmor, ID: 2, Name: "Veil", Note: "<Battler Opacity: 128>"}
	shield := &entities.Record{Kind: entities.RecordKindArmor, ID: 1, Name: "Shield"}
	require.NoError(t, repo.Put(ctx, veil))
	require.NoError(t, repo.Put(ctx, shield))

	t.Run("get derives tags from note", func(t *testing.T) {
		got, err := repo.Get(ctx, entities.RecordKindArmor, 2)
		require.NoError(t, err)
		assert.Equal(t, "Veil", got.Name)
		assert.Equal(t, float64(128), opacity.ReadTagValue(got))
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		veil.Name = "Changed"
		got, err := repo.Get(ctx, entities.RecordKindArmor, 2)
		require.NoError(t, err)
		assert.Equal(t, "Veil", got.Name)
	})

	t.Run("kinds are separate namespaces", func(t *testing.T) {
		_, err := repo.Get(ctx, entities.RecordKindWeapon, 2)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("get many keeps order", func(t *testing.T) {
		got, err := repo.GetMany(ctx, entities.RecordKindArmor, []int{2, 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 1, got[1].ID)

		_, err = repo.GetMany(ctx, entities.RecordKindArmor, []int{1, 99})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("list by kind sorted by ID", func(t *testing.T) {
		got, err := repo.ListByKind(ctx, entities.RecordKindArmor)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Shield", got[0].Name)

		empty, err := repo.ListByKind(ctx, entities.RecordKindState)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, entities.RecordKindArmor, 1))
		assert.True(t, apperr.IsNotFound(repo.Delete(ctx, entities.RecordKindArmor, 1)))
		_, err := repo.Get(ctx, entities.RecordKindArmor, 1)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("validation", func(t *testing.T) {
		assert.True(t, apperr.IsInvalidArgument(repo.Put(ctx, nil)))
		_, err := repo.Get(ctx, "skill", 1)
		assert.True(t, apperr.IsInvalidArgument(err))
	})
}
