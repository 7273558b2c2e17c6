package plan

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/chazu/joist/pkg/geom"
)

// MissingGeometryError reports a raw record with no boundary polygon.
type MissingGeometryError struct{}

func (MissingGeometryError) Error() string { return "missing boundary polygon" }

// BuildError ties a construction failure to the raw record it came
// from. Entity names the record the way the input orders it, for
// example "fixture 4" or "wall 2 opening 0".
type BuildError struct {
	Entity string
	Err    error
}

func (e BuildError) Error() string { return fmt.Sprintf("%s: %v", e.Entity, e.Err) }

func (e BuildError) Unwrap() error { return e.Err }

// Build classifies raw records into typed entities and assembles the
// floor arena: rooms first, then walls interleaved with their openings,
// railings, fixtures and stair parts, preserving input order
// throughout. A record that cannot be built is reported and skipped;
// its siblings still build.
func Build(raw RawFloor) (*Floor, []BuildError) {
	f := &Floor{}
	var errs []BuildError

	fail := func(err error, format string, args ...any) {
		errs = append(errs, BuildError{Entity: fmt.Sprintf(format, args...), Err: err})
	}

	for i, r := range raw.Rooms {
		poly, err := outlinePolygon(r.Outline)
		if err != nil {
			fail(err, "room %d", i)
			continue
		}
		room := &Room{object: object{kind: KindRoom, tags: cloneTags(r.Tags), polygon: poly}}
		f.rooms = append(f.rooms, f.add(room))
	}

	for i, w := range raw.Walls {
		poly, err := outlinePolygon(w.Outline)
		if err != nil {
			fail(err, "wall %d", i)
			continue
		}
		wall := &Wall{
			divider:  divider{object: object{kind: KindWall, tags: cloneTags(w.Tags), polygon: poly}},
			exterior: w.Exterior,
		}
		wallID := f.add(wall)
		f.walls = append(f.walls, wallID)

		for j, o := range w.Openings {
			opening, err := buildOpening(o, wallID)
			if err != nil {
				fail(err, "wall %d opening %d", i, j)
				continue
			}
			openingID := f.add(opening)
			wall.openings = append(wall.openings, openingID)
			f.openings = append(f.openings, openingID)
		}
	}

	for i, r := range raw.Railings {
		poly, err := outlinePolygon(r.Outline)
		if err != nil {
			fail(err, "railing %d", i)
			continue
		}
		railing := &Railing{divider: divider{object: object{kind: KindRailing, tags: cloneTags(r.Tags), polygon: poly}}}
		f.railings = append(f.railings, f.add(railing))
	}

	for i, x := range raw.Fixtures {
		poly, err := fixturePolygon(x)
		if err != nil {
			fail(err, "fixture %d", i)
			continue
		}
		fixture := &Fixture{object: object{kind: KindFixture, tags: cloneTags(x.Tags), polygon: poly}}
		f.fixtures = append(f.fixtures, f.add(fixture))
	}

	for i, s := range raw.Stairs {
		stair := Stair{}
		for j, part := range s.Flights {
			id, err := f.buildStairPart(part, KindStairFlight)
			if err != nil {
				fail(err, "stair %d flight %d", i, j)
				continue
			}
			stair.Flights = append(stair.Flights, id)
		}
		for j, part := range s.Windings {
			id, err := f.buildStairPart(part, KindStairWinding)
			if err != nil {
				fail(err, "stair %d winding %d", i, j)
				continue
			}
			stair.Windings = append(stair.Windings, id)
		}
		f.stairs = append(f.stairs, stair)
	}

	return f, errs
}

func buildOpening(o RawOpening, wallID EntityID) (*Opening, error) {
	kind, err := openingKind(o.Tags)
	if err != nil {
		return nil, err
	}
	poly, err := outlinePolygon(o.Outline)
	if err != nil {
		return nil, err
	}
	return &Opening{
		object: object{kind: kind, tags: cloneTags(o.Tags), polygon: poly},
		wall:   wallID,
		sides:  [2]EntityID{NoEntity, NoEntity},
	}, nil
}

func openingKind(tags []string) (EntityKind, error) {
	if len(tags) == 0 {
		return 0, fmt.Errorf("untagged opening")
	}
	switch tags[0] {
	case "Door":
		return KindDoor, nil
	case "Window":
		return KindWindow, nil
	}
	return 0, fmt.Errorf("unrecognized opening tag %q", tags[0])
}

func (f *Floor) buildStairPart(raw RawEntity, kind EntityKind) (EntityID, error) {
	poly, err := outlinePolygon(raw.Outline)
	if err != nil {
		return NoEntity, err
	}
	part := &StairPart{object: object{kind: kind, tags: cloneTags(raw.Tags), polygon: poly}}
	return f.add(part), nil
}

func fixturePolygon(x RawFixture) (geom.Polygon, error) {
	if len(x.Groups) == 0 {
		return geom.Polygon{}, MissingGeometryError{}
	}
	return outlinePolygon(x.Groups[0].Outline)
}

func outlinePolygon(ring orb.Ring) (geom.Polygon, error) {
	if len(ring) == 0 {
		return geom.Polygon{}, MissingGeometryError{}
	}
	return geom.FromRing(ring), nil
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}
