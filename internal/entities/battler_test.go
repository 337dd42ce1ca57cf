package entities

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battler-opacity/internal/opacity"
)

func opacityRecord(kind RecordKind, id int, value string) *Record {
	r := &Record{Kind: kind, ID: id, Meta: Metadata{}}
	if value != "" {
		r.Meta.Set(opacity.TagName, value)
	}
	return r
}

func TestBattler_TraitRecords(t *testing.T) {
	t.Run("actor lists states, class, equips then base", func(t *testing.T) {
		base := opacityRecord(RecordKindActor, 1, "")
		class := opacityRecord(RecordKindClass, 2, "")
		sword := opacityRecord(RecordKindWeapon, 3, "")
		cloak := opacityRecord(RecordKindArmor, 4, "")

		actor := NewActor("a-1", base, class, []*Record{sword, nil, cloak})
		actor.AddState(opacityRecord(RecordKindState, 5, ""))

		recs := actor.TraitRecords()
		require.Len(t, recs, 5)
		assert.Equal(t, RecordKindState, recs[0].(*Record).Kind)
		assert.Same(t, class, recs[1])
		assert.Same(t, sword, recs[2])
		assert.Same(t, cloak, recs[3])
		assert.Same(t, base, recs[4])
	})

	t.Run("enemy ends with base", func(t *testing.T) {
		base := opacityRecord(RecordKindEnemy, 9, "")
		enemy := NewEnemy("e-1", base)

		recs := enemy.TraitRecords()
		require.Len(t, recs, 1)
		assert.Same(t, base, recs[0])
	})

	t.Run("always contains the base even when missing", func(t *testing.T) {
		enemy := NewEnemy("e-2", nil)
		recs := enemy.TraitRecords()
		require.Len(t, recs, 1)
		assert.Equal(t, 255, opacity.Combine(recs))
	})
}

func TestBattler_Opacity(t *testing.T) {
	base := opacityRecord(RecordKindActor, 1, "200")
	class := opacityRecord(RecordKindClass, 2, "")
	actor := NewActor("a-1", base, class, nil)

	assert.Equal(t, 200, opacity.Combine(actor.TraitRecords()))

	actor.Equip(0, opacityRecord(RecordKindArmor, 3, "128"))
	// 200 * 128/255
	assert.Equal(t, 100, opacity.Combine(actor.TraitRecords()))

	actor.AddState(opacityRecord(RecordKindState, 10, "0"))
	assert.Equal(t, 0, opacity.Combine(actor.TraitRecords()))

	actor.RemoveState(10)
	assert.Equal(t, 100, opacity.Combine(actor.TraitRecords()))
}

func TestBattler_States(t *testing.T) {
	b := NewEnemy("e-1", opacityRecord(RecordKindEnemy, 1, ""))

	b.AddState(opacityRecord(RecordKindState, 3, ""))
	b.AddState(opacityRecord(RecordKindState, 3, ""))
	b.AddState(nil)
	assert.Len(t, b.States(), 1)
	assert.True(t, b.HasState(3))

	b.RemoveState(42)
	assert.Len(t, b.States(), 1)

	b.RemoveState(3)
	assert.False(t, b.HasState(3))
}

func TestBattler_Equip(t *testing.T) {
	b := NewActor("a-1", opacityRecord(RecordKindActor, 1, ""), nil, nil)

	b.Equip(2, opacityRecord(RecordKindArmor, 5, ""))
	require.Len(t, b.Equips(), 3)
	assert.Nil(t, b.Equips()[0])
	assert.Nil(t, b.Equips()[1])

	b.Equip(2, nil)
	assert.Nil(t, b.Equips()[2])

	b.Equip(-1, opacityRecord(RecordKindArmor, 6, ""))
	assert.Len(t, b.Equips(), 3)

	// only the base remains
	assert.Len(t, b.TraitRecords(), 1)
}

func TestBattler_AccessorsReturnCopies(t *testing.T) {
	b := NewActor("a-2", opacityRecord(RecordKindActor, 1, ""), nil, []*Record{opacityRecord(RecordKindWeapon, 1, "")})
	b.AddState(opacityRecord(RecordKindState, 4, "51"))

	equips := b.Equips()
	equips[0] = nil
	states := b.States()
	states[0] = nil

	require.Len(t, b.Equips(), 1)
	assert.NotNil(t, b.Equips()[0])
	require.Len(t, b.States(), 1)
	assert.NotNil(t, b.States()[0])
}

func TestBattler_ConcurrentStateChanges(t *testing.T) {
	b := NewEnemy("e-2", opacityRecord(RecordKindEnemy, 1, "128"))

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			b.AddState(opacityRecord(RecordKindState, id, "200"))
		}(i)
		go func() {
			defer wg.Done()
			_ = b.States()
			_ = b.TraitRecords()
		}()
	}
	wg.Wait()

	assert.Len(t, b.States(), 8)
	assert.Len(t, b.TraitRecords(), 9)
}
