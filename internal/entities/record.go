package entities

import (
	"fmt"
)

// RecordKind identifies the database table a trait record comes from
type RecordKind string

const (
	RecordKindActor  RecordKind = "actor"
	RecordKindClass  RecordKind = "class"
	RecordKindWeapon RecordKind = "weapon"
	RecordKindArmor  RecordKind = "armor"
	RecordKindState  RecordKind = "state"
	RecordKindEnemy  RecordKind = "enemy"
)

// Valid reports whether the kind is a known record kind
func (k RecordKind) Valid() bool {
	switch k {
	case RecordKindActor, RecordKindClass, RecordKindWeapon,
		RecordKindArmor, RecordKindState, RecordKindEnemy:
		return true
	}
	return false
}

// Record is a trait-bearing database record: an actor or enemy definition,
// a class, a piece of equipment or a state.
type Record struct {
	Kind RecordKind
	ID   int
	Name string
	Note string
	Meta Metadata
}

// Tag returns the value of a note tag. A nil record carries no tags.
func (r *Record) Tag(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	return r.Meta.Lookup(name)
}

func (r *Record) String() string {
	if r == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s %d (%s)", r.Kind, r.ID, r.Name)
}
