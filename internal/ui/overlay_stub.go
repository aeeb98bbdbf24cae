//go:build !ebiten

package ui

import "lifebox/pkg/life"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(life.Size, int, int, life.Pattern, bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
