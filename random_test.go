package spiro

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestRandomCurve_Bounds(t *testing.T) {
	ext := Extent{HalfWidth: 400, HalfHeight: 300}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 10000; i++ {
		c := RandomCurve(rng, ext)
		p := c.Params

		if p.R < 50 || p.R > 150 {
			t.Fatalf("R = %d, want [50, 150]", p.R)
		}
		if p.Rs < 10 || p.Rs > 9*p.R/10 {
			t.Fatalf("r = %d, want [10, %d]", p.Rs, 9*p.R/10)
		}
		if p.Rs >= p.R {
			t.Fatalf("r = %d >= R = %d", p.Rs, p.R)
		}
		if p.L < 0.1 || p.L > 0.9 {
			t.Fatalf("l = %v, want [0.1, 0.9]", p.L)
		}
		if c.Center.X < -400 || c.Center.X > 400 || c.Center.Y < -300 || c.Center.Y > 300 {
			t.Fatalf("center = %v outside extent", c.Center)
		}
		for _, v := range []float64{c.Color.R, c.Color.G, c.Color.B} {
			if v < 0 || v > 1 {
				t.Fatalf("color = %v outside [0, 1]", c.Color)
			}
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("generated invalid params %+v: %v", p, err)
		}
	}
}

func TestRandomCurve_CoversRange(t *testing.T) {
	ext := Extent{HalfWidth: 120, HalfHeight: 100}
	rng := rand.New(rand.NewPCG(7, 7))

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[RandomCurve(rng, ext).Params.R] = true
	}
	// min(W, H)/2 = 50: R is always exactly 50.
	if len(seen) != 1 || !seen[50] {
		t.Errorf("R values = %v, want only 50", seen)
	}
}

func TestExtent_Validate(t *testing.T) {
	tests := []struct {
		ext     Extent
		wantErr bool
	}{
		{Extent{400, 300}, false},
		{Extent{100, 100}, false},
		{Extent{99, 400}, true},
		{Extent{0, 0}, true},
	}
	for _, tt := range tests {
		err := tt.ext.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%+v.Validate() = %v, wantErr %v", tt.ext, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("%+v.Validate() = %v, want ErrInvalidExtent", tt.ext, err)
		}
	}
}
