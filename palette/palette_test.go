package palette

import "testing"

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 1, 0.5, RGB{255, 0, 0}},
		{"green", 1.0 / 3, 1, 0.5, RGB{0, 255, 0}},
		{"blue", 2.0 / 3, 1, 0.5, RGB{0, 0, 255}},
		{"negative hue wraps", -1.0 / 3, 1, 0.5, RGB{0, 0, 255}},
		{"gray", 0.3, 0, 0.5, RGB{128, 128, 128}},
		{"white", 0.1, 1, 1, RGB{255, 255, 255}},
		{"black", 0.1, 1, 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHSL(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("FromHSL(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestLerpAndScale(t *testing.T) {
	a := RGB{0, 100, 200}
	b := RGB{200, 100, 0}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Expected Lerp at 0 to return a, got %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Expected Lerp at 1 to return b, got %v", got)
	}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 100, 100}) {
		t.Errorf("Expected midpoint {100 100 100}, got %v", got)
	}

	if got := (RGB{200, 100, 50}).Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half scale {100 50 25}, got %v", got)
	}
	if got := (RGB{200, 200, 200}).Scale(2); got != White {
		t.Errorf("Expected scale to saturate at white, got %v", got)
	}
}
