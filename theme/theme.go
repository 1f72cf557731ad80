// Package theme resolves and persists the light/dark appearance.
//
// Resolution order at startup is the persisted user choice, then the OS (terminal)
// preference, then light. Once the user has chosen explicitly, OS changes are ignored.
package theme

import (
	"fmt"
	"sync"

	"github.com/pokedex-cli/pokedex/log"
)

// Appearance is the active color scheme.
type Appearance string

const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

// Parse reads an appearance label.
func Parse(s string) (Appearance, error) {
	switch Appearance(s) {
	case Light, Dark:
		return Appearance(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected %q or %q", s, Light, Dark)
	}
}

// Opposite returns the other appearance.
func (a Appearance) Opposite() Appearance {
	if a == Dark {
		return Light
	}
	return Dark
}

func (a Appearance) String() string {
	return string(a)
}

// Store persists the explicit user choice.
type Store interface {
	// Load returns the persisted appearance; ok is false when none was ever saved.
	Load() (a Appearance, ok bool, err error)
	Save(a Appearance) error
}

// Detector reports the OS preference; ok is false when it cannot be determined.
type Detector func() (a Appearance, ok bool)

// Controller is the two-state theme machine.
type Controller struct {
	mu       sync.Mutex
	store    Store
	current  Appearance
	explicit bool
}

// NewController resolves the initial appearance. A failing store is treated as empty.
func NewController(store Store, detect Detector) *Controller {
	c := &Controller{store: store, current: Light}

	saved, ok, err := store.Load()
	switch {
	case err != nil:
		log.Warnf("read theme preference: %v", err)
	case ok:
		c.current = saved
		c.explicit = true
		return c
	}

	if detect != nil {
		if system, ok := detect(); ok {
			c.current = system
		}
	}

	return c
}

// Current returns the active appearance.
func (c *Controller) Current() Appearance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Explicit reports whether a user choice is in effect.
func (c *Controller) Explicit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.explicit
}

// Toggle flips the appearance and persists it. The new state is kept even when
// persisting fails; the error is returned so the caller can report it.
func (c *Controller) Toggle() (Appearance, error) {
	c.mu.Lock()
	next := c.current.Opposite()
	c.mu.Unlock()

	return next, c.Set(next)
}

// Set applies an explicit user choice and persists it.
func (c *Controller) Set(a Appearance) error {
	c.mu.Lock()
	c.current = a
	c.explicit = true
	c.mu.Unlock()

	if err := c.store.Save(a); err != nil {
		log.Warnf("save theme preference: %v", err)
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}

// SystemChanged feeds a live OS preference. It applies only while no explicit
// choice exists and reports whether the appearance changed.
func (c *Controller) SystemChanged(a Appearance) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.explicit || c.current == a {
		return false
	}
	c.current = a
	return true
}
