package core

import (
	"slices"
	"testing"
)

func TestFillDensityDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillDensity(NewRNG(7).Source(), a, 0.25)
	FillDensity(NewRNG(7).Source(), b, 0.25)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
}

func TestFillDensityBounds(t *testing.T) {
	buf := make([]uint8, 64)
	for i := range buf {
		buf[i] = 1
	}
	FillDensity(NewRNG(1).Source(), buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("density 0 left cell %d alive", i)
		}
	}
	FillDensity(NewRNG(1).Source(), buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("density 1 left cell %d dead", i)
		}
	}
	FillDensity(NewRNG(1).Source(), buf, -3)
	if slices.Contains(buf, 1) {
		t.Fatal("negative density must clamp to 0")
	}
}

func TestChanceClamps(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(2) {
			t.Fatal("Chance(2) returned false")
		}
	}
}
