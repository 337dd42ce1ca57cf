package entities

import (
	"sync"

	"github.com/KirkDiggler/battler-opacity/internal/opacity"
)

// BattlerType distinguishes party members from enemies
type BattlerType string

const (
	BattlerTypeActor BattlerType = "actor"
	BattlerTypeEnemy BattlerType = "enemy"
)

// Battler is a combat participant together with every record that can carry
// traits for it.
type Battler struct {
	ID    string
	Type  BattlerType
	Base  *Record
	Class *Record // nil for enemies

	// mu guards equips and states
	mu     sync.RWMutex
	equips []*Record // indexed by slot; nil entries are empty slots
	states []*Record
}

// NewActor creates an actor battler
func NewActor(id string, base, class *Record, equips []*Record) *Battler {
	return &Battler{
		ID:     id,
		Type:   BattlerTypeActor,
		Base:   base,
		Class:  class,
		equips: equips,
	}
}

// NewEnemy creates an enemy battler
func NewEnemy(id string, base *Record) *Battler {
	return &Battler{
		ID:   id,
		Type: BattlerTypeEnemy,
		Base: base,
	}
}

// TraitRecords returns states, class and equipped items followed by the base
// record. The base is always the last element; opacity.Combine seeds from it.
func (b *Battler) TraitRecords() []opacity.Tagged {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]opacity.Tagged, 0, len(b.states)+len(b.equips)+2)
	for _, s := range b.states {
		out = append(out, s)
	}
	if b.Class != nil {
		out = append(out, b.Class)
	}
	for _, e := range b.equips {
		if e != nil {
			out = append(out, e)
		}
	}
	return append(out, b.Base)
}

// Equips returns a copy of the equipment slots
func (b *Battler) Equips() []*Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]*Record(nil), b.equips...)
}

// States returns a copy of the applied states
func (b *Battler) States() []*Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]*Record(nil), b.states...)
}

// Equip puts item into slot, growing the slot list as needed. A nil item
// empties the slot.
func (b *Battler) Equip(slot int, item *Record) {
	if slot < 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for len(b.equips) <= slot {
		b.equips = append(b.equips, nil)
	}
	b.equips[slot] = item
}

// AddState adds a state unless one with the same ID is already present
func (b *Battler) AddState(state *Record) {
	if state == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.states {
		if s.ID == state.ID {
			return
		}
	}
	b.states = append(b.states, state)
}

// RemoveState removes the state with the given ID
func (b *Battler) RemoveState(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.states {
		if s.ID == id {
			b.states = append(b.states[:i], b.states[i+1:]...)
			return
		}
	}
}

// HasState checks whether a state is currently applied
func (b *Battler) HasState(id int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.states {
		if s.ID == id {
			return true
		}
	}
	return false
}
