// Package feature flattens an analyzed floor into per-room descriptors:
// shape measures, adjacency counts and what each room opens to,
// connects to and contains. The output is plain data, ready for JSON
// or tabulation.
package feature

import "github.com/chazu/joist/pkg/plan"

// RoomFeatures describes one room of an analyzed floor.
type RoomFeatures struct {
	RoomID  plan.EntityID `json:"room_id"`
	Type    string        `json:"type"`
	Classes string        `json:"classes"`

	NumSides            int     `json:"num_sides"`
	Area                float64 `json:"area"`
	ProportionFloorArea float64 `json:"proportion_floor_area"`
	Perimeter           float64 `json:"perimeter"`
	Compactness         float64 `json:"compactness"`
	LongestDiagonal     float64 `json:"longest_diagonal"`

	NumAdjacentWalls           int     `json:"num_adjacent_walls"`
	ProportionExteriorWalls    float64 `json:"proportion_exterior_walls"`
	NumAdjacentRailings        int     `json:"num_adjacent_railings"`
	ProportionExteriorRailings float64 `json:"proportion_exterior_railings"`
	NumAdjacentRooms           int     `json:"num_adjacent_rooms"`
	NumConnectedRooms          int     `json:"num_connected_rooms"`
	NumDoors                   int     `json:"num_doors"`
	NumWindows                 int     `json:"num_windows"`
	NumFixtures                int     `json:"num_fixtures"`

	OpenTo   Counter `json:"open_to"`
	DoorTo   Counter `json:"door_to"`
	Contains Counter `json:"contains"`

	OpenToSummary   string `json:"open_to_summary"`
	DoorToSummary   string `json:"door_to_summary"`
	ContainsSummary string `json:"contains_summary"`
}

// Extract computes features for every room of the floor, in build
// order.
func Extract(f *plan.Floor) []RoomFeatures {
	floorArea := f.Area()
	features := make([]RoomFeatures, 0, len(f.Rooms()))
	for _, id := range f.Rooms() {
		features = append(features, extractRoom(f, id, floorArea))
	}
	return features
}

// ExtractRoom computes features for a single room. It panics when
// roomID does not name a room.
func ExtractRoom(f *plan.Floor, roomID plan.EntityID) RoomFeatures {
	return extractRoom(f, roomID, f.Area())
}

func extractRoom(f *plan.Floor, roomID plan.EntityID, floorArea float64) RoomFeatures {
	room := f.MustRoom(roomID)
	poly := room.Polygon()

	var openTo Counter
	for _, id := range f.AdjacentRooms(roomID) {
		openTo.Add(f.MustRoom(id).SimpleType())
	}

	var doorTo Counter
	for _, id := range f.ConnectedRooms(roomID) {
		doorTo.Add(f.MustRoom(id).SimpleType())
	}

	var contains Counter
	for _, id := range room.Fixtures() {
		contains.Add(f.MustFixture(id).SimpleType())
	}

	walls := f.AdjacentWalls(roomID)
	exteriorWalls := f.AdjacentExteriorWalls(roomID)

	railings := f.AdjacentRailings(roomID)
	exteriorRailings := 0
	for _, id := range railings {
		if len(f.RoomsOpposite(id, roomID)) == 0 {
			exteriorRailings++
		}
	}

	area := poly.Area()

	return RoomFeatures{
		RoomID:  roomID,
		Type:    room.SimpleType(),
		Classes: room.FullType(),

		NumSides:            len(poly.Edges()),
		Area:                area,
		ProportionFloorArea: proportion(area, floorArea),
		Perimeter:           poly.Perimeter(),
		Compactness:         poly.Compactness(),
		LongestDiagonal:     poly.LongestDiagonal(),

		NumAdjacentWalls:           len(walls),
		ProportionExteriorWalls:    proportion(float64(len(exteriorWalls)), float64(len(walls))),
		NumAdjacentRailings:        len(railings),
		ProportionExteriorRailings: proportion(float64(exteriorRailings), float64(len(railings))),
		NumAdjacentRooms:           openTo.Total(),
		NumConnectedRooms:          doorTo.Total(),
		NumDoors:                   len(room.Doors()),
		NumWindows:                 len(room.Windows()),
		NumFixtures:                len(room.Fixtures()),

		OpenTo:   openTo,
		DoorTo:   doorTo,
		Contains: contains,

		OpenToSummary:   openTo.Summary(),
		DoorToSummary:   doorTo.Summary(),
		ContainsSummary: contains.Summary(),
	}
}

// proportion guards empty denominators: a room with no adjacent walls
// has no exterior-wall share.
func proportion(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole
}
