package plan

import (
	"fmt"
	"strings"
)

// Room is a floor space bounded by dividers. Its door, window and
// fixture lists fill during analysis, in resolution order.
type Room struct {
	object

	doors    []EntityID
	windows  []EntityID
	fixtures []EntityID
}

// SimpleType returns the room's primary type label: the first tag when
// it belongs to the known vocabulary, Other when it does not, Undefined
// for untagged rooms.
func (r *Room) SimpleType() string {
	return simpleRoomType(r.tags)
}

// FullType returns every tag joined with spaces, the room's verbatim
// classification.
func (r *Room) FullType() string {
	return strings.Join(r.tags, " ")
}

// IsOutdoor reports whether the room is tagged as outdoor space.
func (r *Room) IsOutdoor() bool {
	return len(r.tags) > 0 && r.tags[0] == "Outdoor"
}

func (r *Room) Label() string {
	return fmt.Sprintf("room %d (%s)", r.id, r.SimpleType())
}

// Doors returns the doors that resolved a side to this room.
func (r *Room) Doors() []EntityID { return r.doors }

// Windows returns the windows that resolved a side to this room.
func (r *Room) Windows() []EntityID { return r.windows }

// Fixtures returns the fixtures contained in this room.
func (r *Room) Fixtures() []EntityID { return r.fixtures }
