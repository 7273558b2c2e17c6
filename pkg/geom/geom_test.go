package geom

import (
	"math"
	"testing"
)

// approx is for asserting float results that are exact up to rounding;
// tolerant domain comparisons go through Close instead.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClose(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal", 3.5, 3.5, true},
		{"within tolerance", 1.0, 1.005, true},
		{"outside tolerance", 1.0, 1.02, false},
		{"far apart", 0, 100, false},
		{"equal infinities", math.Inf(1), math.Inf(1), true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), false},
		{"nan never close", math.NaN(), math.NaN(), false},
		{"nan vs finite", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Close(tt.a, tt.b); got != tt.want {
				t.Errorf("Close(%g, %g) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointDistanceTo(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	if got := p.DistanceTo(q); !approx(got, 5) {
		t.Errorf("DistanceTo = %g, want 5", got)
	}
	if got := q.DistanceTo(p); !approx(got, 5) {
		t.Errorf("reversed DistanceTo = %g, want 5", got)
	}
	if got := p.DistanceTo(p); got != 0 {
		t.Errorf("DistanceTo self = %g, want 0", got)
	}
}

func TestPointEqual(t *testing.T) {
	p := Point{X: 1, Y: 1}
	if !p.Equal(Point{X: 1.005, Y: 0.995}) {
		t.Error("points within tolerance should be equal")
	}
	if p.Equal(Point{X: 1.02, Y: 1}) {
		t.Error("points outside tolerance should not be equal")
	}
}

func TestDegenerateInputError(t *testing.T) {
	err := DegenerateInputError{Op: "line through points", At: Point{X: 2, Y: 3}}
	want := "line through points: degenerate input at (2, 3)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
