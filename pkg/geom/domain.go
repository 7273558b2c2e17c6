package geom

import "math"

// Domain is a closed interval of scalar values. Endpoints are kept in
// construction order, so Start may exceed End; Min and Max normalize.
type Domain struct {
	Start float64
	End   float64
}

// Min returns the smaller endpoint.
func (d Domain) Min() float64 {
	return math.Min(d.Start, d.End)
}

// Max returns the larger endpoint.
func (d Domain) Max() float64 {
	return math.Max(d.Start, d.End)
}

// Length returns the extent of the interval.
func (d Domain) Length() float64 {
	return d.Max() - d.Min()
}

// Contains reports whether v lies in the interval or within AbsTol of
// either endpoint.
func (d Domain) Contains(v float64) bool {
	if v >= d.Min() && v <= d.Max() {
		return true
	}
	return Close(v, d.Min()) || Close(v, d.Max())
}

// Position returns v's fractional position measured from Start: 0 at
// Start, 1 at End. A degenerate interval has no finite positions and
// reports +Inf for contained values and -Inf for everything else.
func (d Domain) Position(v float64) float64 {
	if d.End == d.Start {
		if d.Contains(v) {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return (v - d.Start) / (d.End - d.Start)
}
