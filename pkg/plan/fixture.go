package plan

import (
	"fmt"
	"strings"

	"github.com/chazu/joist/pkg/geom"
)

// Fixture is a fixed furnishing such as a sink, stove or closet.
// Containment resolution associates it with every room holding at least
// one of its polygon vertices and remembers which vertices witnessed
// each room. A fixture straddling a doorway can belong to two rooms.
type Fixture struct {
	object

	roomOrder []EntityID
	witnesses map[EntityID][]geom.Point
}

// SimpleType returns the fixture's base type with placement modifiers
// stripped.
func (x *Fixture) SimpleType() string {
	return simpleFixtureType(x.tags)
}

// FullType returns every tag joined with spaces.
func (x *Fixture) FullType() string {
	return strings.Join(x.tags, " ")
}

func (x *Fixture) Label() string {
	return fmt.Sprintf("fixture %d (%s)", x.id, x.SimpleType())
}

// Rooms returns the containing rooms in the order resolution found them.
func (x *Fixture) Rooms() []EntityID {
	return x.roomOrder
}

// Witnesses returns the fixture vertices that placed it in the room.
func (x *Fixture) Witnesses(roomID EntityID) []geom.Point {
	return x.witnesses[roomID]
}

func (x *Fixture) hasRoom(id EntityID) bool {
	_, ok := x.witnesses[id]
	return ok
}

func (x *Fixture) addRoom(id EntityID, vertex geom.Point) {
	if x.witnesses == nil {
		x.witnesses = make(map[EntityID][]geom.Point)
	}
	if !x.hasRoom(id) {
		x.roomOrder = append(x.roomOrder, id)
	}
	x.witnesses[id] = append(x.witnesses[id], vertex)
}
