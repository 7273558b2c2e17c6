package plan

import (
	"testing"

	"github.com/paulmach/orb"
)

// ring builds an orb ring from flat x, y pairs.
func ring(coords ...float64) orb.Ring {
	r := make(orb.Ring, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		r = append(r, orb.Point{coords[i], coords[i+1]})
	}
	return r
}

// Arena IDs in sampleFloor, fixed by build order.
const (
	sampleKitchen = EntityID(0)
	sampleBedroom = EntityID(1)
	sampleLiving  = EntityID(2)
	sampleWall    = EntityID(3)
	sampleDoor    = EntityID(4)
	sampleWindow  = EntityID(5)
	sampleRailing = EntityID(6)
	sampleSink    = EntityID(7)
	sampleCounter = EntityID(8)
	sampleFlight  = EntityID(9)
	sampleWinding = EntityID(10)
)

// sampleFloor builds a three-room plan. Kitchen and bedroom are 10x10
// squares separated by a unit-thick exterior wall carrying a door and a
// window; the living room shares part of the bedroom's right edge
// directly. A railing runs under the kitchen, a sink sits inside it, a
// counter straddles the doorway into the bedroom, and one staircase
// stands apart from everything.
func sampleFloor(t *testing.T) *Floor {
	t.Helper()
	raw := RawFloor{
		Rooms: []RawEntity{
			{Tags: []string{"Kitchen"}, Outline: ring(0, 0, 10, 0, 10, 10, 0, 10)},
			{Tags: []string{"Bedroom"}, Outline: ring(11, 0, 21, 0, 21, 10, 11, 10)},
			{Tags: []string{"LivingRoom"}, Outline: ring(21, 2, 31, 2, 31, 8, 21, 8)},
		},
		Walls: []RawWall{
			{
				Outline:  ring(10, 0, 10, 10, 11, 10, 11, 0),
				Exterior: true,
				Openings: []RawOpening{
					{Tags: []string{"Door"}, Outline: ring(10, 2, 10, 6, 11, 6, 11, 2)},
					{Tags: []string{"Window"}, Outline: ring(10, 7, 10, 9, 11, 9, 11, 7)},
				},
			},
		},
		Railings: []RawEntity{
			{Outline: ring(2, 10, 8, 10, 8, 11, 2, 11)},
		},
		Fixtures: []RawFixture{
			{Tags: []string{"Sink"}, Groups: []RawGroup{{Outline: ring(3, 3, 5, 3, 5, 5, 3, 5)}}},
			{Tags: []string{"CounterTop"}, Groups: []RawGroup{{Outline: ring(8, 4, 12, 4, 12, 6, 8, 6)}}},
		},
		Stairs: []RawStair{
			{
				Flights:  []RawEntity{{Outline: ring(30, 20, 34, 20, 34, 23, 30, 23)}},
				Windings: []RawEntity{{Outline: ring(30, 23, 34, 23, 34, 26, 30, 26)}},
			},
		},
	}
	f, errs := Build(raw)
	if len(errs) != 0 {
		t.Fatalf("Build returned errors: %v", errs)
	}
	return f
}

// gappedFloor builds one room and one wall separated by a 0.5 unit gap,
// under the close-edge tolerance but beyond exact intersection. The
// wall carries a door with nothing on its far side.
func gappedFloor(t *testing.T) *Floor {
	t.Helper()
	raw := RawFloor{
		Rooms: []RawEntity{
			{Tags: []string{"Hall"}, Outline: ring(0, 0, 10, 0, 10, 10, 0, 10)},
		},
		Walls: []RawWall{
			{
				Outline: ring(10.5, 0, 10.5, 10, 11.5, 10, 11.5, 0),
				Openings: []RawOpening{
					{Tags: []string{"Door"}, Outline: ring(10.5, 2, 10.5, 6, 11.5, 6, 11.5, 2)},
				},
			},
		},
	}
	f, errs := Build(raw)
	if len(errs) != 0 {
		t.Fatalf("Build returned errors: %v", errs)
	}
	return f
}

// stackedFloor builds two rooms stacked along the same face of a gapped
// wall, with one door whose opening edge runs close to both rooms.
func stackedFloor(t *testing.T) *Floor {
	t.Helper()
	raw := RawFloor{
		Rooms: []RawEntity{
			{Tags: []string{"Bath"}, Outline: ring(0, 0, 10, 0, 10, 4, 0, 4)},
			{Tags: []string{"Sauna"}, Outline: ring(0, 4, 10, 4, 10, 10, 0, 10)},
		},
		Walls: []RawWall{
			{
				Outline: ring(10.5, 0, 10.5, 10, 11.5, 10, 11.5, 0),
				Openings: []RawOpening{
					{Tags: []string{"Door"}, Outline: ring(10.5, 2, 10.5, 6, 11.5, 6, 11.5, 2)},
				},
			},
		},
	}
	f, errs := Build(raw)
	if len(errs) != 0 {
		t.Fatalf("Build returned errors: %v", errs)
	}
	return f
}

func analyze(t *testing.T, f *Floor) *Floor {
	t.Helper()
	if err := f.Analyze(); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return f
}

func TestEntityKindString(t *testing.T) {
	tests := []struct {
		kind EntityKind
		want string
	}{
		{KindRoom, "room"},
		{KindWall, "wall"},
		{KindRailing, "railing"},
		{KindDoor, "door"},
		{KindWindow, "window"},
		{KindFixture, "fixture"},
		{KindStairFlight, "stair flight"},
		{KindStairWinding, "stair winding"},
		{EntityKind(99), "EntityKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EntityKind.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEntityLabels(t *testing.T) {
	f := sampleFloor(t)

	tests := []struct {
		id   EntityID
		want string
	}{
		{sampleKitchen, "room 0 (Kitchen)"},
		{sampleWall, "wall 3"},
		{sampleDoor, "door 4 in wall 3"},
		{sampleWindow, "window 5 in wall 3"},
		{sampleRailing, "railing 6"},
		{sampleSink, "fixture 7 (Sink)"},
		{sampleFlight, "stair flight 9"},
	}
	for _, tt := range tests {
		if got := f.Entity(tt.id).Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestEligibleEdges(t *testing.T) {
	f := sampleFloor(t)

	room := f.Entity(sampleKitchen)
	if got := len(room.EligibleEdges()); got != 4 {
		t.Errorf("room EligibleEdges() count = %d, want 4", got)
	}

	wall := f.Entity(sampleWall)
	faces := wall.EligibleEdges()
	if len(faces) != 2 {
		t.Fatalf("wall EligibleEdges() count = %d, want 2", len(faces))
	}
	if faces[0].Index != 0 || faces[1].Index != 2 {
		t.Errorf("wall face indices = %d, %d, want 0, 2", faces[0].Index, faces[1].Index)
	}
}

func TestLooseEdges(t *testing.T) {
	f := sampleFloor(t)

	if got := len(LooseEdges(f.Entity(sampleKitchen))); got != 4 {
		t.Errorf("loose edges before analysis = %d, want 4", got)
	}

	analyze(t, f)

	// Edge 2 binds to the railing, edge 1 to the wall face, and edge 0
	// to the wall as well through the shared corner at (10,0). Only the
	// left edge stays loose.
	var indices []int
	for _, e := range LooseEdges(f.Entity(sampleKitchen)) {
		indices = append(indices, e.Index)
	}
	if len(indices) != 1 || indices[0] != 3 {
		t.Errorf("kitchen loose edges after analysis = %v, want [3]", indices)
	}

	if got := len(LooseEdges(f.Entity(sampleWall))); got != 0 {
		t.Errorf("wall loose edges after analysis = %d, want 0", got)
	}
}
