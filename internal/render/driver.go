package render

import (
	"sync"
)

// Step runs after a sprite's visibility update
type Step func(s *Sprite)

// Driver advances sprites once per frame: visibility, every registered
// post-visibility step in registration order, then the running effect. A step
// therefore sees the effect duration left over from the previous frame, and
// the frame an effect finishes on still shows the effect's last opacity.
type Driver struct {
	steps []Step
	mu    sync.RWMutex
}

// NewDriver creates a driver with no post-visibility steps
func NewDriver() *Driver {
	return &Driver{
		steps: make([]Step, 0),
	}
}

// AfterVisibility registers steps to run after each visibility update
func (d *Driver) AfterVisibility(steps ...Step) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, step := range steps {
		if step != nil {
			d.steps = append(d.steps, step)
		}
	}
}

// Tick updates every sprite for one frame
func (d *Driver) Tick(sprites ...*Sprite) {
	d.mu.RLock()
	steps := d.steps
	d.mu.RUnlock()

	for _, s := range sprites {
		if s == nil {
			continue
		}
		s.updateVisibility()
		for _, step := range steps {
			step(s)
		}
		s.updateEffect()
	}
}
