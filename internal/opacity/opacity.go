// Package opacity derives a battler sprite's opacity from the "Battler Opacity"
// tag carried by its trait records. Values from every record combine
// multiplicatively.
package opacity

//go:generate mockgen -destination=mock/mock_opacity.go -package=mockopacity -source=opacity.go

// Version of the opacity rules
const Version = "1.2"

// TagName is the tag looked up on every trait record
const TagName = "Battler Opacity"

const (
	// MinOpacity is fully transparent
	MinOpacity = 0
	// MaxOpacity is fully opaque and the neutral value for missing tags
	MaxOpacity = 255
)

// Tagged is any record that may carry a named tag.
// A tag with no explicit value reports the bool true.
type Tagged interface {
	Tag(name string) (any, bool)
}

// Battler exposes the trait records relevant to a combat participant.
// The base record is the last element; the rest are modifiers.
type Battler interface {
	TraitRecords() []Tagged
}

// State is the part of a sprite's visual state owned by other effects
type State struct {
	// Appeared is nil when unknown; only an explicit false skips
	Appeared       *bool
	EffectDuration int
}

// Target is a sprite whose opacity is derived each update cycle
type Target interface {
	VisibilityState() State
	Battler() Battler
	SetOpacity(opacity int)
}
