package plan

// Wall is a divider that may carry door and window openings and may
// belong to the building envelope.
type Wall struct {
	divider

	exterior bool
	openings []EntityID
}

// IsExterior reports whether the wall is part of the building envelope.
func (w *Wall) IsExterior() bool { return w.exterior }

// Openings returns the wall's doors and windows in drawing order.
func (w *Wall) Openings() []EntityID { return w.openings }
