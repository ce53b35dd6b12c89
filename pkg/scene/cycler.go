package scene

import "github.com/matzehuels/prismview/pkg/errors"

// Cycler tracks the current scene of an interactive viewer. Advancing
// past the last scene wraps to the first. A Cycler is not safe for
// concurrent use.
type Cycler struct {
	kinds []Kind
	pos   int
}

// NewCycler returns a cycler over kinds, or over All() when none are
// given. It starts at the first scene.
func NewCycler(kinds ...Kind) *Cycler {
	if len(kinds) == 0 {
		kinds = All()
	}
	return &Cycler{kinds: kinds}
}

// Current returns the current scene.
func (c *Cycler) Current() Kind { return c.kinds[c.pos] }

// Position returns the index of the current scene and the scene count.
func (c *Cycler) Position() (int, int) { return c.pos, len(c.kinds) }

// Advance moves to the next scene and returns it.
func (c *Cycler) Advance() Kind {
	c.pos = (c.pos + 1) % len(c.kinds)
	return c.Current()
}

// Select jumps to the given scene.
func (c *Cycler) Select(k Kind) error {
	for i, kind := range c.kinds {
		if kind == k {
			c.pos = i
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidScene, "scene %q is not in the cycle", k)
}
