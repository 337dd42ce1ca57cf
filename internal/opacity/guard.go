package opacity

// ShouldSkip reports whether another effect currently owns the sprite's opacity,
// e.g. an entrance that has not happened yet or a running flash/collapse effect.
func ShouldSkip(state State) bool {
	if state.Appeared != nil && !*state.Appeared {
		return true
	}
	return state.EffectDuration > 0
}
