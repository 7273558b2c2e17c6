package plan

import "github.com/paulmach/orb"

// The raw model is the ingestion contract. A drawing parser, a test or
// the console fills these plain structs and hands them to Build.
// Outlines are orb rings in drawing coordinates; tag lists start with
// the type label and continue with modifiers.

// RawFloor is one floor's worth of traced geometry.
type RawFloor struct {
	Rooms    []RawEntity
	Walls    []RawWall
	Railings []RawEntity
	Fixtures []RawFixture
	Stairs   []RawStair
}

// RawEntity is a tagged outline, used for rooms, railings and stair
// parts.
type RawEntity struct {
	Tags    []string
	Outline orb.Ring
}

// RawWall is a wall outline with the openings cut into it. Exterior
// marks walls on the building envelope.
type RawWall struct {
	Tags     []string
	Outline  orb.Ring
	Exterior bool
	Openings []RawOpening
}

// RawOpening's first tag must be Door or Window; anything else fails
// the build for that opening.
type RawOpening struct {
	Tags    []string
	Outline orb.Ring
}

// RawFixture keeps the nesting of the source format: the boundary
// polygon lives one level down, in the first sub-group.
type RawFixture struct {
	Tags   []string
	Groups []RawGroup
}

// RawGroup is one nested outline group of a fixture.
type RawGroup struct {
	Outline orb.Ring
}

// RawStair is one staircase, split into straight flights and winding
// corners.
type RawStair struct {
	Flights  []RawEntity
	Windings []RawEntity
}
