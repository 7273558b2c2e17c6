package plan

import "fmt"

// Opening is a door or window carved out of a wall. The opening
// polygon's index-0 and index-2 edges lie along the owning wall's face
// edges 0 and 2, so side 0 of the opening faces whatever meets wall
// face 0 and side 1 faces wall face 2. Sides resolve to rooms during
// analysis; a side that never resolves keeps NoEntity and reads as
// facing out of the plan.
type Opening struct {
	object

	wall  EntityID
	sides [2]EntityID
}

// WallID returns the owning wall.
func (o *Opening) WallID() EntityID { return o.wall }

// Side returns the room resolved on side 0 or 1, or NoEntity.
func (o *Opening) Side(i int) EntityID { return o.sides[i] }

// Rooms returns the resolved rooms in side order.
func (o *Opening) Rooms() []EntityID {
	var rooms []EntityID
	for _, id := range o.sides {
		if id != NoEntity {
			rooms = append(rooms, id)
		}
	}
	return rooms
}

// OtherRoom returns the room across the opening from roomID. An opening
// with an unresolved side connects nothing and returns NoEntity.
func (o *Opening) OtherRoom(roomID EntityID) EntityID {
	if o.sides[0] == NoEntity || o.sides[1] == NoEntity {
		return NoEntity
	}
	if o.sides[0] == roomID {
		return o.sides[1]
	}
	return o.sides[0]
}

func (o *Opening) Label() string {
	return fmt.Sprintf("%s %d in wall %d", o.kind, o.id, o.wall)
}
