// Package theme owns the light/dark preference. One Provider is built at
// startup and shared; nothing else keeps its own copy of the flag.
package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/prefs"
)

// Theme is a colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default applies to visitors with no stored preference.
const Default = Light

const prefKey = "theme"

// Parse maps a stored value to a Theme. Anything unknown is Default.
func Parse(v string) Theme {
	switch Theme(v) {
	case Light, Dark:
		return Theme(v)
	default:
		return Default
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// KV is the persistence the Provider needs. *prefs.Store implements it.
type KV interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
}

// Provider reads and toggles each visitor's theme.
type Provider struct {
	kv KV
}

// NewProvider returns a Provider over kv.
func NewProvider(kv KV) *Provider {
	return &Provider{kv: kv}
}

// Get returns visitor's theme, or Default when nothing is stored.
func (p *Provider) Get(ctx context.Context, visitor string) (Theme, error) {
	if visitor == "" {
		return Default, nil
	}
	v, err := p.kv.Get(ctx, visitor, prefKey)
	if errors.Is(err, prefs.ErrNotFound) {
		return Default, nil
	}
	if err != nil {
		return Default, fmt.Errorf("loading theme: %w", err)
	}
	return Parse(v), nil
}

// Toggle flips visitor's theme and writes it back before returning.
func (p *Provider) Toggle(ctx context.Context, visitor string) (Theme, error) {
	current, err := p.Get(ctx, visitor)
	if err != nil {
		return current, err
	}
	next := current.Opposite()
	if visitor == "" {
		return next, nil
	}
	if err := p.kv.Set(ctx, visitor, prefKey, string(next)); err != nil {
		return current, fmt.Errorf("saving theme: %w", err)
	}
	return next, nil
}
