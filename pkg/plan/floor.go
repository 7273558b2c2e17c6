package plan

import (
	"errors"
	"fmt"
)

// ErrAlreadyAnalyzed is returned by Analyze after its first call. The
// relationship maps are append-only and populated exactly once.
var ErrAlreadyAnalyzed = errors.New("plan: floor already analyzed")

// Floor is the arena owning one drawing's entities and every
// relationship between them. Build constructs it; Analyze fills in
// adjacencies, opening sides and fixture containment.
type Floor struct {
	entities []Entity

	rooms    []EntityID
	walls    []EntityID
	railings []EntityID
	openings []EntityID
	fixtures []EntityID
	stairs   []Stair

	analyzed bool
}

// add assigns the next arena ID and takes ownership of the entity.
func (f *Floor) add(e Entity) EntityID {
	o := e.base()
	o.id = EntityID(len(f.entities))
	f.entities = append(f.entities, e)
	return o.id
}

// Entity returns the entity with the given ID, or nil when the ID is
// out of range.
func (f *Floor) Entity(id EntityID) Entity {
	if id < 0 || int(id) >= len(f.entities) {
		return nil
	}
	return f.entities[id]
}

// EntityCount returns the arena size.
func (f *Floor) EntityCount() int { return len(f.entities) }

// Rooms returns the room IDs in build order.
func (f *Floor) Rooms() []EntityID { return f.rooms }

// Walls returns the wall IDs in build order.
func (f *Floor) Walls() []EntityID { return f.walls }

// Railings returns the railing IDs in build order.
func (f *Floor) Railings() []EntityID { return f.railings }

// Openings returns every door and window ID in build order.
func (f *Floor) Openings() []EntityID { return f.openings }

// Fixtures returns the fixture IDs in build order.
func (f *Floor) Fixtures() []EntityID { return f.fixtures }

// Stairs returns the floor's staircases.
func (f *Floor) Stairs() []Stair { return f.stairs }

// Room returns the entity as a room when it is one.
func (f *Floor) Room(id EntityID) (*Room, bool) {
	r, ok := f.Entity(id).(*Room)
	return r, ok
}

// Wall returns the entity as a wall when it is one.
func (f *Floor) Wall(id EntityID) (*Wall, bool) {
	w, ok := f.Entity(id).(*Wall)
	return w, ok
}

// Railing returns the entity as a railing when it is one.
func (f *Floor) Railing(id EntityID) (*Railing, bool) {
	r, ok := f.Entity(id).(*Railing)
	return r, ok
}

// Opening returns the entity as a door or window when it is one.
func (f *Floor) Opening(id EntityID) (*Opening, bool) {
	o, ok := f.Entity(id).(*Opening)
	return o, ok
}

// Fixture returns the entity as a fixture when it is one.
func (f *Floor) Fixture(id EntityID) (*Fixture, bool) {
	x, ok := f.Entity(id).(*Fixture)
	return x, ok
}

// MustRoom returns the room with the given ID or panics.
func (f *Floor) MustRoom(id EntityID) *Room {
	r, ok := f.Room(id)
	if !ok {
		panic(fmt.Sprintf("plan: entity %d is not a room", id))
	}
	return r
}

// MustWall returns the wall with the given ID or panics.
func (f *Floor) MustWall(id EntityID) *Wall {
	w, ok := f.Wall(id)
	if !ok {
		panic(fmt.Sprintf("plan: entity %d is not a wall", id))
	}
	return w
}

// MustOpening returns the opening with the given ID or panics.
func (f *Floor) MustOpening(id EntityID) *Opening {
	o, ok := f.Opening(id)
	if !ok {
		panic(fmt.Sprintf("plan: entity %d is not an opening", id))
	}
	return o
}

// MustFixture returns the fixture with the given ID or panics.
func (f *Floor) MustFixture(id EntityID) *Fixture {
	x, ok := f.Fixture(id)
	if !ok {
		panic(fmt.Sprintf("plan: entity %d is not a fixture", id))
	}
	return x
}

// Area returns the floor's covered area: rooms plus walls. Railings,
// openings and fixtures sit inside that footprint and do not add to it.
func (f *Floor) Area() float64 {
	var total float64
	for _, id := range f.rooms {
		total += f.entities[id].Polygon().Area()
	}
	for _, id := range f.walls {
		total += f.entities[id].Polygon().Area()
	}
	return total
}

// Analyzed reports whether Analyze has run.
func (f *Floor) Analyzed() bool { return f.analyzed }

// Analyze runs adjacency detection and fixture containment, exactly
// once. An internal invariant violation surfaces as an error rather
// than a panic so a caller batching many floors can skip the bad one
// and keep going.
func (f *Floor) Analyze() (err error) {
	if f.analyzed {
		return ErrAlreadyAnalyzed
	}
	f.analyzed = true
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plan: floor analysis: %v", r)
		}
	}()
	f.findAdjacencies()
	f.resolveContainment()
	return nil
}

// AdjacentByKind returns the IDs of entities of one kind adjacent to
// id, in first-touch order.
func (f *Floor) AdjacentByKind(id EntityID, kind EntityKind) []EntityID {
	e := f.Entity(id)
	if e == nil {
		return nil
	}
	var out []EntityID
	for _, nid := range e.Adjacencies().IDs() {
		if f.entities[nid].Kind() == kind {
			out = append(out, nid)
		}
	}
	return out
}

// AdjacentWalls returns the walls adjacent to the entity.
func (f *Floor) AdjacentWalls(id EntityID) []EntityID {
	return f.AdjacentByKind(id, KindWall)
}

// AdjacentExteriorWalls returns the adjacent walls flagged exterior.
func (f *Floor) AdjacentExteriorWalls(id EntityID) []EntityID {
	var out []EntityID
	for _, wid := range f.AdjacentWalls(id) {
		if f.MustWall(wid).IsExterior() {
			out = append(out, wid)
		}
	}
	return out
}

// AdjacentRailings returns the railings adjacent to the entity.
func (f *Floor) AdjacentRailings(id EntityID) []EntityID {
	return f.AdjacentByKind(id, KindRailing)
}

// AdjacentRooms returns the rooms adjacent to the entity.
func (f *Floor) AdjacentRooms(id EntityID) []EntityID {
	return f.AdjacentByKind(id, KindRoom)
}

// ConnectedRooms returns the rooms reachable from roomID through its
// doors, one entry per connecting door. Doors with an unresolved side
// face out of the plan and contribute nothing; two rooms joined by two
// doors appear twice.
func (f *Floor) ConnectedRooms(roomID EntityID) []EntityID {
	room, ok := f.Room(roomID)
	if !ok {
		return nil
	}
	var out []EntityID
	for _, doorID := range room.doors {
		if other := f.MustOpening(doorID).OtherRoom(roomID); other != NoEntity {
			out = append(out, other)
		}
	}
	return out
}

// RoomsOpposite returns the rooms adjacent to the far face of a wall or
// railing, given a room touching its near face. The first record shared
// with the room decides which face is near. A divider not adjacent to
// the room returns nil; an empty result means nothing touches the far
// face, which is how a railing on the building edge reads.
func (f *Floor) RoomsOpposite(dividerID, roomID EntityID) []EntityID {
	d := f.Entity(dividerID)
	if d == nil || (d.Kind() != KindWall && d.Kind() != KindRailing) {
		return nil
	}
	first, ok := d.Adjacencies().First(roomID)
	if !ok {
		return nil
	}
	otherSide := 2
	if first.SelfEdge == 2 {
		otherSide = 0
	}
	var out []EntityID
	for _, nid := range d.Adjacencies().IDs() {
		if f.entities[nid].Kind() != KindRoom {
			continue
		}
		for _, rec := range d.Adjacencies().Records(nid) {
			if rec.SelfEdge == otherSide {
				out = append(out, nid)
				break
			}
		}
	}
	return out
}
