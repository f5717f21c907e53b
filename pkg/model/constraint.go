package model

// Axis indices for per-axis constraint access.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// axisNames maps axis indices to display names.
var axisNames = [3]string{"X", "Y", "Z"}

// AxisName returns the display name of an axis index, or "?" for an
// out-of-range index.
func AxisName(axis int) string {
	if axis < AxisX || axis > AxisZ {
		return "?"
	}
	return axisNames[axis]
}

// TranslationAxis holds the translation bounds of one axis.
// A bound participates only while its use flag is set.
type TranslationAxis struct {
	UseMin bool    `json:"use_min"`
	UseMax bool    `json:"use_max"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Locked reports whether the axis is pinned to a single value: both bounds
// active and equal.
func (a TranslationAxis) Locked() bool {
	return a.UseMin && a.UseMax && a.Min == a.Max
}

// TranslationConstraint limits translation along the three local axes.
type TranslationConstraint struct {
	X TranslationAxis `json:"x"`
	Y TranslationAxis `json:"y"`
	Z TranslationAxis `json:"z"`
}

// Axis returns the constraint entry for the given axis index.
func (c *TranslationConstraint) Axis(axis int) *TranslationAxis {
	switch axis {
	case AxisX:
		return &c.X
	case AxisY:
		return &c.Y
	default:
		return &c.Z
	}
}

// LockedCount returns the number of axes pinned to a single value.
func (c *TranslationConstraint) LockedCount() int {
	n := 0
	for axis := AxisX; axis <= AxisZ; axis++ {
		if c.Axis(axis).Locked() {
			n++
		}
	}
	return n
}

// RotationAxis holds the rotation limit of one axis. The limit participates
// only while UseLimit is set; an axis without an active limit rotates freely.
type RotationAxis struct {
	UseLimit bool    `json:"use_limit"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Limited reports whether the axis carries an active rotation limit.
func (a RotationAxis) Limited() bool {
	return a.UseLimit
}

// NonZero reports whether the axis carries an active limit spanning a
// non-zero range, i.e. the axis still has usable rotational travel.
func (a RotationAxis) NonZero() bool {
	return a.UseLimit && (a.Min != 0 || a.Max != 0)
}

// RotationConstraint limits rotation about the three local axes.
type RotationConstraint struct {
	X RotationAxis `json:"x"`
	Y RotationAxis `json:"y"`
	Z RotationAxis `json:"z"`
}

// Axis returns the constraint entry for the given axis index.
func (c *RotationConstraint) Axis(axis int) *RotationAxis {
	switch axis {
	case AxisX:
		return &c.X
	case AxisY:
		return &c.Y
	default:
		return &c.Z
	}
}

// LimitedCount returns the number of axes with an active limit.
func (c *RotationConstraint) LimitedCount() int {
	n := 0
	for axis := AxisX; axis <= AxisZ; axis++ {
		if c.Axis(axis).Limited() {
			n++
		}
	}
	return n
}

// ConstraintModel captures the full constraint state of one link's bone as
// two typed optional slots. At most one constraint of each kind exists; a nil
// Translation slot is the floating case.
type ConstraintModel struct {
	Translation *TranslationConstraint `json:"translation,omitempty"`
	Rotation    *RotationConstraint    `json:"rotation,omitempty"`
}

// Clear removes both constraint slots.
func (m *ConstraintModel) Clear() {
	m.Translation = nil
	m.Rotation = nil
}
