package vmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestWrap01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 0.25, 0.25},
		{"one wraps to zero", 1, 0},
		{"above one", 2.5, 0.5},
		{"negative", -0.25, 0.75},
		{"tiny negative", -1e-18, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"neg inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap01(tt.in)
			if !NearlyEqual(got, tt.want, 1e-12) {
				t.Errorf("Wrap01(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("Wrap01(%v) = %v, outside [0,1)", tt.in, got)
			}
		})
	}
}

func TestClampLerp(t *testing.T) {
	if Clamp(-2, -1, 1) != -1 || Clamp(2, -1, 1) != 1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Error("Clamp returned value outside bounds")
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Errorf("Expected Lerp(2,4,0.5)=3, got %v", Lerp(2, 4, 0.5))
	}
}

func TestRayBox(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: 4}, Max: r3.Vec{X: 1, Y: 1, Z: 6}}

	tests := []struct {
		name     string
		origin   r3.Vec
		dir      r3.Vec
		wantHit  bool
		wantNear float64
	}{
		{"straight ahead", r3.Vec{}, r3.Vec{Z: 1}, true, 4},
		{"pointing away", r3.Vec{}, r3.Vec{Z: -1}, false, 0},
		{"parallel outside", r3.Vec{X: 2}, r3.Vec{Z: 1}, false, 0},
		{"miss sideways", r3.Vec{}, r3.Vec{X: 1, Z: 0.1}, false, 0},
		{"origin inside", r3.Vec{Z: 5}, r3.Vec{Z: 1}, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near, far, ok := RayBox(tt.origin, tt.dir, box)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, ok)
			}
			if !ok {
				return
			}
			if !NearlyEqual(near, tt.wantNear, 1e-9) {
				t.Errorf("Expected near=%v, got %v", tt.wantNear, near)
			}
			if far < near {
				t.Errorf("Expected far >= near, got near=%v far=%v", near, far)
			}
		})
	}
}

func TestRayTriangle(t *testing.T) {
	tri := r3.Triangle{
		{X: -1, Y: -1, Z: 3},
		{X: 1, Y: -1, Z: 3},
		{X: 0, Y: 1, Z: 3},
	}

	dist, ok := RayTriangle(r3.Vec{}, r3.Vec{Z: 1}, tri)
	if !ok {
		t.Fatal("Expected front hit")
	}
	if !NearlyEqual(dist, 3, 1e-12) {
		t.Errorf("Expected distance 3, got %v", dist)
	}

	// Double-sided: same triangle from behind
	dist, ok = RayTriangle(r3.Vec{Z: 6}, r3.Vec{Z: -1}, tri)
	if !ok || !NearlyEqual(dist, 3, 1e-12) {
		t.Errorf("Expected back hit at 3, got %v (ok=%v)", dist, ok)
	}

	if _, ok := RayTriangle(r3.Vec{X: 5}, r3.Vec{Z: 1}, tri); ok {
		t.Error("Expected miss outside triangle")
	}
	if _, ok := RayTriangle(r3.Vec{}, r3.Vec{Z: -1}, tri); ok {
		t.Error("Expected miss behind origin")
	}
	if _, ok := RayTriangle(r3.Vec{}, r3.Vec{X: 1}, tri); ok {
		t.Error("Expected miss for ray parallel to plane")
	}
}
