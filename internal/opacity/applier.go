package opacity

// Apply derives the target's opacity from its battler's trait records and writes it.
// Targets whose visibility is owned by another effect, or that are not bound to a
// battler yet, are left untouched.
func Apply(target Target) {
	if target == nil || ShouldSkip(target.VisibilityState()) {
		return
	}

	battler := target.Battler()
	if battler == nil {
		return
	}

	target.SetOpacity(Combine(battler.TraitRecords()))
}
