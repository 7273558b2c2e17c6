package plan

import "fmt"

// ValidationSeverity indicates whether a finding blocks downstream use
// or is merely advisory.
type ValidationSeverity int

const (
	SeverityError ValidationSeverity = iota
	SeverityWarning
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return fmt.Sprintf("ValidationSeverity(%d)", int(s))
}

// ValidationIssue is a single finding about one entity.
type ValidationIssue struct {
	Entity   EntityID
	Message  string
	Severity ValidationSeverity
}

func (i ValidationIssue) Error() string {
	return fmt.Sprintf("[%s] entity %d: %s", i.Severity, i.Entity, i.Message)
}

// ValidationResult splits findings by severity.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// Validate inspects a floor for suspicious geometry and classification.
// It is read-only and its findings never block analysis. Rules about
// resolution outcomes (openings facing no room, fixtures in no room)
// only run once the floor has been analyzed.
func Validate(f *Floor) ValidationResult {
	var issues []ValidationIssue
	issues = append(issues, validateRooms(f)...)
	issues = append(issues, validateDividers(f)...)
	issues = append(issues, validateOpenings(f)...)
	if f.Analyzed() {
		issues = append(issues, validateResolution(f)...)
	}

	var result ValidationResult
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}
	return result
}

func validateRooms(f *Floor) []ValidationIssue {
	var issues []ValidationIssue
	for _, id := range f.rooms {
		room := f.MustRoom(id)
		edges := room.Polygon().Edges()
		switch {
		case len(edges) == 0:
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s has no edges", room.Label()),
			})
		case len(edges) < 3:
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s outline is degenerate (%d edges)", room.Label(), len(edges)),
			})
		}
		if len(room.Tags()) > 0 && !roomTypes[room.Tags()[0]] {
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s tag %q is not a known room type", room.Label(), room.Tags()[0]),
			})
		}
	}
	return issues
}

func validateDividers(f *Floor) []ValidationIssue {
	var issues []ValidationIssue
	for _, pool := range [][]EntityID{f.walls, f.railings} {
		for _, id := range pool {
			d := f.entities[id]
			if len(d.EligibleEdges()) != 0 {
				continue
			}
			severity := SeverityWarning
			message := fmt.Sprintf("%s is degenerate (%d edges, want 4)", d.Label(), len(d.Polygon().Edges()))
			if wall, ok := d.(*Wall); ok && len(wall.openings) > 0 {
				severity = SeverityError
				message = fmt.Sprintf("%s owns %d openings but is degenerate; they can never resolve",
					wall.Label(), len(wall.openings))
			}
			issues = append(issues, ValidationIssue{Entity: id, Severity: severity, Message: message})
		}
	}
	return issues
}

func validateOpenings(f *Floor) []ValidationIssue {
	var issues []ValidationIssue
	for _, id := range f.openings {
		opening := f.MustOpening(id)
		if n := len(opening.Polygon().Edges()); n != 4 {
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s has %d edges, want 4; resolution skips it", opening.Label(), n),
			})
		}
	}
	return issues
}

func validateResolution(f *Floor) []ValidationIssue {
	var issues []ValidationIssue
	for _, id := range f.openings {
		opening := f.MustOpening(id)
		if len(opening.Rooms()) == 0 {
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s resolved to no room", opening.Label()),
			})
		}
	}
	for _, id := range f.fixtures {
		fixture := f.MustFixture(id)
		if len(fixture.Rooms()) == 0 {
			issues = append(issues, ValidationIssue{
				Entity:   id,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%s is contained by no room", fixture.Label()),
			})
		}
	}
	return issues
}
