package inspect

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/joist/pkg/plan"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(wall outline :exterior true)`,
			expect: `(wall outline "__kw_exterior" true)`,
		},
		{
			name:   "multiple keywords",
			input:  `(foo :a 1 :b 2)`,
			expect: `(foo "__kw_a" 1 "__kw_b" 2)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(floor-area)`,
			expect: `(floor_area)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:close-tolerance`,
			expect: `"__kw_close-tolerance"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Full floor script
// ---------------------------------------------------------------------------

// testScript declares a kitchen and bedroom joined by a door and a
// window through an exterior wall, plus a railing, a sink, and a stair.
const testScript = `
; declare the envelope
(room (ring 0 0 10 0 10 10 0 10) "Kitchen")
(room (ring 11 0 21 0 21 10 11 10) "Bedroom")
(wall (ring 10 0 10 10 11 10 11 0)
      (door (ring 10 2 10 6 11 6 11 2))
      (window (ring 10 7 10 9 11 9 11 7))
      :exterior true)
(railing (ring 2 10 8 10 8 11 2 11))
(fixture (ring 3 3 5 3 5 5 3 5) "Sink")
(stair (flight (ring 30 20 32 20 32 23 30 23)))
`

func TestFullFloorScript(t *testing.T) {
	con := NewConsole()

	f, evalErrs, err := con.Evaluate(testScript)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if f == nil {
		t.Fatal("expected non-nil floor")
	}
	if !f.Analyzed() {
		t.Fatal("expected floor to be analyzed")
	}

	// 2 rooms + wall + door + window + railing + fixture + flight = 8.
	if f.EntityCount() != 8 {
		t.Fatalf("expected 8 entities, got %d", f.EntityCount())
	}

	wall := f.MustWall(2)
	if !wall.IsExterior() {
		t.Error("expected wall 2 to be exterior")
	}
	if len(wall.Openings()) != 2 {
		t.Errorf("expected 2 openings, got %d", len(wall.Openings()))
	}

	// The door resolves to the kitchen on face 0 and the bedroom on face 2.
	door := f.MustOpening(3)
	rooms := door.Rooms()
	if len(rooms) != 2 || rooms[0] != 0 || rooms[1] != 1 {
		t.Errorf("door rooms = %v, want [0 1]", rooms)
	}

	connected := f.ConnectedRooms(0)
	if len(connected) != 1 || connected[0] != 1 {
		t.Errorf("ConnectedRooms(0) = %v, want [1]", connected)
	}

	kitchen := f.MustRoom(0)
	if len(kitchen.Doors()) != 1 || kitchen.Doors()[0] != 3 {
		t.Errorf("kitchen doors = %v, want [3]", kitchen.Doors())
	}
	if len(kitchen.Windows()) != 1 || kitchen.Windows()[0] != 4 {
		t.Errorf("kitchen windows = %v, want [4]", kitchen.Windows())
	}
	if len(kitchen.Fixtures()) != 1 || kitchen.Fixtures()[0] != 6 {
		t.Errorf("kitchen fixtures = %v, want [6]", kitchen.Fixtures())
	}

	// 100 + 100 room area plus 10 wall area; the railing contributes none.
	if math.Abs(f.Area()-210) > 1e-9 {
		t.Errorf("floor area = %v, want 210", f.Area())
	}
}

// ---------------------------------------------------------------------------
// Query builtins
// ---------------------------------------------------------------------------

func TestQueryBuiltinsRun(t *testing.T) {
	con := NewConsole()

	source := testScript + `
(analyze)
(rooms)
(adjacent 0)
(connected 0)
(describe 3)
(floor-area)
`
	f, evalErrs, err := con.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if f == nil {
		t.Fatal("expected non-nil floor")
	}
	if f.EntityCount() != 8 {
		t.Errorf("expected 8 entities, got %d", f.EntityCount())
	}
}

func TestDescribeEntity(t *testing.T) {
	con := NewConsole()
	f, evalErrs, err := con.Evaluate(testScript)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}

	tests := []struct {
		name string
		id   int
		want string
	}{
		{
			name: "room",
			id:   0,
			want: "room 0 (Kitchen): area 100.00, 2 adjacent, 1 doors, 1 windows, 1 fixtures",
		},
		{
			name: "wall",
			id:   2,
			want: "wall 2 (exterior): 2 openings, 2 adjacent",
		},
		{
			name: "door",
			id:   3,
			want: "door 3 in wall 2: room 0 (Kitchen), room 1 (Bedroom)",
		},
		{
			name: "railing",
			id:   5,
			want: "railing 5: 1 adjacent",
		},
		{
			name: "fixture",
			id:   6,
			want: "fixture 6 (Sink): in room 0 (Kitchen)",
		},
		{
			name: "stair flight",
			id:   7,
			want: "stair flight 7: 0 adjacent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := describeEntity(f, plan.EntityID(tt.id))
			if err != nil {
				t.Fatalf("describeEntity(%d) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("describeEntity(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}

	if _, err := describeEntity(f, 99); err == nil {
		t.Error("describeEntity(99) should fail for a missing entity")
	}
}

// ---------------------------------------------------------------------------
// Variables flow into declarations
// ---------------------------------------------------------------------------

func TestVariableReference(t *testing.T) {
	con := NewConsole()

	source := `
(def w 10)
(room (ring 0 0 w 0 w w 0 w) "Kitchen")
`
	f, evalErrs, err := con.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}

	kitchen := f.MustRoom(0)
	if math.Abs(kitchen.Polygon().Area()-100) > 1e-9 {
		t.Errorf("kitchen area = %v, want 100 (from variable)", kitchen.Polygon().Area())
	}
}

// ---------------------------------------------------------------------------
// Declaration ordering and diagnostics
// ---------------------------------------------------------------------------

func TestDeclarationAfterQueryFails(t *testing.T) {
	con := NewConsole()

	source := `
(room (ring 0 0 10 0 10 10 0 10) "Kitchen")
(analyze)
(room (ring 20 0 30 0 30 10 20 10) "Bedroom")
`
	f, evalErrs, err := con.Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if f != nil {
		t.Fatal("expected nil floor when a declaration follows a query")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	found := false
	for _, e := range evalErrs {
		if strings.Contains(e.Message, "already analyzed") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an 'already analyzed' error, got: %v", evalErrs)
	}
}

func TestBuildDiagnostics(t *testing.T) {
	con := NewConsole()

	// A room with no ring has no boundary; it is skipped with a
	// diagnostic rather than failing the whole script.
	f, evalErrs, err := con.Evaluate(`(room "Ghost")`)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if f == nil {
		t.Fatal("expected non-nil floor")
	}
	if f.EntityCount() != 0 {
		t.Errorf("expected the broken room to be skipped, got %d entities", f.EntityCount())
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected a build diagnostic")
	}
	if !strings.Contains(evalErrs[0].Message, "missing boundary polygon") {
		t.Errorf("diagnostic = %q, want mention of missing boundary polygon", evalErrs[0].Message)
	}
}

func TestRingOddCoordinates(t *testing.T) {
	con := NewConsole()

	f, evalErrs, err := con.Evaluate(`(room (ring 1 2 3) "Broken")`)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if f != nil {
		t.Fatal("expected nil floor on builtin error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
}
