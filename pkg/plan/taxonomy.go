package plan

import "regexp"

// Room and fixture vocabularies follow the CubiCasa5K annotation scheme.
// Tags outside the vocabulary classify as Other; the raw tag survives on
// the entity for diagnostics.

var roomTypes = map[string]bool{
	"Alcove":         true,
	"Attic":          true,
	"Basement":       true,
	"Bath":           true,
	"Bedroom":        true,
	"CarPort":        true,
	"Closet":         true,
	"Den":            true,
	"Dining":         true,
	"DraughtLobby":   true,
	"DressingRoom":   true,
	"Elevated":       true,
	"Entry":          true,
	"Garage":         true,
	"Hall":           true,
	"Kitchen":        true,
	"Library":        true,
	"LivingRoom":     true,
	"Office":         true,
	"Other":          true,
	"Outdoor":        true,
	"RecreationRoom": true,
	"Room":           true,
	"Sauna":          true,
	"Storage":        true,
	"TechnicalRoom":  true,
	"Undefined":      true,
	"UserDefined":    true,
	"Utility":        true,
}

var fixtureTypes = map[string]bool{
	"BaseCabinet":         true,
	"Bathtub":             true,
	"Chimney":             true,
	"Closet":              true,
	"CoatCloset":          true,
	"CoatRack":            true,
	"CounterTop":          true,
	"Dishwasher":          true,
	"ElectricalAppliance": true,
	"Fan":                 true,
	"Fireplace":           true,
	"GEA":                 true,
	"Heater":              true,
	"Housing":             true,
	"Jacuzzi":             true,
	"PlaceForFireplace":   true,
	"Refrigerator":        true,
	"SaunaBench":          true,
	"SaunaStove":          true,
	"Shower":              true,
	"ShowerCab":           true,
	"ShowerPlatform":      true,
	"ShowerScreen":        true,
	"Sink":                true,
	"SpaceForAppliance":   true,
	"Stove":               true,
	"Toilet":              true,
	"TumbleDryer":         true,
	"Urinal":              true,
	"WallCabinet":         true,
	"WashingMachine":      true,
	"WaterTap":            true,
}

// Placement and sizing modifiers that attach to fixture type names.
// Each anchored pattern can strip at most one affix.
var (
	fixturePrefixes = regexp.MustCompile(`^(Corner|Double|Integrated|Gas|Wood|High|Round|Side)`)
	fixtureSuffixes = regexp.MustCompile(`(Corner|High|Left|Low|Mid|Right|Round(Left|Right)?|Small|Triangle|2)$`)
)

// simpleRoomType reduces a room's tag list to its primary type label.
func simpleRoomType(tags []string) string {
	if len(tags) == 0 {
		return "Undefined"
	}
	if roomTypes[tags[0]] {
		return tags[0]
	}
	return "Other"
}

// simpleFixtureType reduces a fixture's tag list to a base type.
// ElectricalAppliance defers to its second tag when one exists, then one
// leading and one trailing modifier are stripped, so CornerSink, SinkLeft
// and DoubleSink all reduce to Sink.
func simpleFixtureType(tags []string) string {
	if len(tags) == 0 {
		return "Other"
	}
	t := tags[0]
	if t == "ElectricalAppliance" && len(tags) > 1 {
		t = tags[1]
	}
	t = fixturePrefixes.ReplaceAllString(t, "")
	t = fixtureSuffixes.ReplaceAllString(t, "")
	if fixtureTypes[t] {
		return t
	}
	return "Other"
}
