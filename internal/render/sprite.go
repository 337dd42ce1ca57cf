// Package render holds battler sprite state and the per-tick update driver.
package render

import (
	"github.com/KirkDiggler/battler-opacity/internal/entities"
	"github.com/KirkDiggler/battler-opacity/internal/opacity"
)

// EffectType is a timed sprite effect that owns the sprite's opacity while it runs
type EffectType string

const (
	EffectNone      EffectType = ""
	EffectAppear    EffectType = "appear"
	EffectDisappear EffectType = "disappear"
	EffectWhiten    EffectType = "whiten"
	EffectBlink     EffectType = "blink"
	EffectCollapse  EffectType = "collapse"
)

// effectDurations in ticks
var effectDurations = map[EffectType]int{
	EffectAppear:    16,
	EffectDisappear: 32,
	EffectWhiten:    16,
	EffectBlink:     20,
	EffectCollapse:  32,
}

// Sprite is the on-screen representation of a battler
type Sprite struct {
	Opacity int
	Visible bool

	// Appeared is nil for actors; enemies that join mid-battle start false
	Appeared       *bool
	EffectType     EffectType
	EffectDuration int

	battler *entities.Battler
}

// NewSprite creates a fully opaque sprite bound to b. A hidden sprite has not
// appeared yet.
func NewSprite(b *entities.Battler, hidden bool) *Sprite {
	s := &Sprite{
		Opacity: opacity.MaxOpacity,
		battler: b,
	}
	if b != nil && b.Type == entities.BattlerTypeEnemy {
		appeared := !hidden
		s.Appeared = &appeared
	}
	return s
}

// VisibilityState implements opacity.Target
func (s *Sprite) VisibilityState() opacity.State {
	return opacity.State{
		Appeared:       s.Appeared,
		EffectDuration: s.EffectDuration,
	}
}

// Battler implements opacity.Target
func (s *Sprite) Battler() opacity.Battler {
	if s.battler == nil {
		return nil
	}
	return s.battler
}

// SetOpacity implements opacity.Target
func (s *Sprite) SetOpacity(v int) {
	s.Opacity = max(opacity.MinOpacity, min(opacity.MaxOpacity, v))
}

// StartEffect begins a timed effect. Appear and disappear flip the appeared
// flag immediately, collapse clears it once finished.
func (s *Sprite) StartEffect(effect EffectType) {
	duration, ok := effectDurations[effect]
	if !ok {
		return
	}

	switch effect {
	case EffectAppear:
		appeared := true
		s.Appeared = &appeared
		s.Opacity = 0
	case EffectDisappear:
		appeared := false
		s.Appeared = &appeared
	}

	s.EffectType = effect
	s.EffectDuration = duration
}

// updateEffect advances the running effect by one tick
func (s *Sprite) updateEffect() {
	if s.EffectDuration <= 0 {
		return
	}

	s.EffectDuration--
	switch s.EffectType {
	case EffectAppear:
		s.SetOpacity((16 - s.EffectDuration) * 16)
	case EffectDisappear:
		s.SetOpacity(256 - (32-s.EffectDuration)*10)
	case EffectBlink:
		if s.EffectDuration%10 < 5 {
			s.SetOpacity(opacity.MaxOpacity)
		} else {
			s.SetOpacity(opacity.MinOpacity)
		}
	case EffectCollapse:
		s.SetOpacity(s.Opacity * s.EffectDuration / (s.EffectDuration + 1))
	}

	if s.EffectDuration == 0 {
		if s.EffectType == EffectCollapse {
			appeared := false
			s.Appeared = &appeared
		}
		s.EffectType = EffectNone
	}
}

// ApplyOpacity derives the sprite's opacity from its battler's trait records.
// Register it with Driver.AfterVisibility.
func ApplyOpacity(s *Sprite) {
	opacity.Apply(s)
}

// updateVisibility shows bound sprites that have not been hidden
func (s *Sprite) updateVisibility() {
	s.Visible = s.battler != nil && (s.Appeared == nil || *s.Appeared)
}
