// SPDX-License-Identifier: MIT

// Package mode persists the light or dark color mode and mirrors it to the
// "dark" class on the document root.
package mode

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Key is the store key the mode is saved under
const Key = "__forewind_mode__"

// Mode is light or dark
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ErrInvalidMode is returned for values other than light and dark
var ErrInvalidMode = errors.New("mode must be light or dark")

// ErrNotFound is returned by stores when the key is unset
var ErrNotFound = errors.New("mode not set")

// Parse validates a mode string
func Parse(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Store is the key-value storage behind the toggler
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Manager reads and writes the persisted mode
type Manager struct {
	store    Store
	fallback Mode
}

// NewManager creates a manager. An invalid fallback is treated as light.
func NewManager(store Store, fallback string) *Manager {
	fb, err := Parse(fallback)
	if err != nil {
		fb = Light
	}
	return &Manager{store: store, fallback: fb}
}

// stored returns the persisted mode. ok is false when nothing valid is saved.
func (m *Manager) stored(ctx context.Context) (mode Mode, ok bool, err error) {
	v, err := m.store.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read mode: %w", err)
	}
	mode, err = Parse(v)
	if err != nil {
		return "", false, nil
	}
	return mode, true, nil
}

// Current returns the stored mode, else the fallback
func (m *Manager) Current(ctx context.Context) (Mode, error) {
	mode, ok, err := m.stored(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return m.fallback, nil
	}
	return mode, nil
}

// IsDark reports whether the stored mode is dark. The fallback is ignored.
func (m *Manager) IsDark(ctx context.Context) (bool, error) {
	v, err := m.store.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read mode: %w", err)
	}
	return Mode(v) == Dark, nil
}

// Set persists mode
func (m *Manager) Set(ctx context.Context, mode Mode) error {
	if _, err := Parse(string(mode)); err != nil {
		return err
	}
	if err := m.store.Set(ctx, Key, string(mode)); err != nil {
		return fmt.Errorf("failed to save mode: %w", err)
	}
	return nil
}

// Toggle flips the stored mode and returns the new one. Nothing stored
// counts as light; the fallback is not consulted.
func (m *Manager) Toggle(ctx context.Context) (Mode, error) {
	current, _, err := m.stored(ctx)
	if err != nil {
		return "", err
	}
	next := Dark
	if current == Dark {
		next = Light
	}
	if err := m.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Init persists mode, or the current mode when mode is empty, and returns
// what was saved
func (m *Manager) Init(ctx context.Context, mode Mode) (Mode, error) {
	if mode == "" {
		current, err := m.Current(ctx)
		if err != nil {
			return "", err
		}
		mode = current
	}
	if err := m.Set(ctx, mode); err != nil {
		return "", err
	}
	return mode, nil
}

// Reset removes the stored mode
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.store.Delete(ctx, Key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to reset mode: %w", err)
	}
	return nil
}

// RootClass returns the class for the document root: "dark" or ""
func RootClass(mode Mode) string {
	if mode == Dark {
		return "dark"
	}
	return ""
}
