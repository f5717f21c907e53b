package model

import "errors"

// JointType identifies the kinematic type of a joint.
type JointType string

// Joint types, ordered from fully free to fully locked.
const (
	JointFloating   JointType = "floating"   // Six unconstrained DOF.
	JointPlanar     JointType = "planar"     // Two translational DOF, rotation locked.
	JointPrismatic  JointType = "prismatic"  // One bounded translational DOF.
	JointContinuous JointType = "continuous" // One unbounded rotational DOF.
	JointRevolute   JointType = "revolute"   // One bounded rotational DOF.
	JointFixed      JointType = "fixed"      // Zero DOF.
)

// JointIndeterminate is returned by classification when the constraint state
// matches no row of the decision table. It is not a synthesizable type.
const JointIndeterminate JointType = "indeterminate"

// JointTypes lists the synthesizable joint types for enumeration.
var JointTypes = []JointType{
	JointFloating,
	JointPlanar,
	JointPrismatic,
	JointContinuous,
	JointRevolute,
	JointFixed,
}

// validJointTypes is the set of synthesizable joint type values.
var validJointTypes = map[JointType]bool{
	JointFloating:   true,
	JointPlanar:     true,
	JointPrismatic:  true,
	JointContinuous: true,
	JointRevolute:   true,
	JointFixed:      true,
}

// ValidJointType reports whether jt is a synthesizable joint type.
// JointIndeterminate is a classification result, not a valid input.
func ValidJointType(jt JointType) bool {
	return validJointTypes[jt]
}

// JointRecord holds the joint metadata persisted on a link. Axis and Limits
// are populated only for non-fixed, non-floating types, and are always
// present or absent together.
type JointRecord struct {
	Type        JointType `json:"type"`
	Axis        *Vector3  `json:"axis,omitempty"`
	Limits      []float64 `json:"limits,omitempty"`
	MaxEffort   float64   `json:"max_effort,omitempty"`
	MaxVelocity float64   `json:"max_velocity,omitempty"`
	Passive     bool      `json:"passive,omitempty"`
}

// JointParams carries the operator inputs stamped onto a link alongside a
// synthesized joint.
type JointParams struct {
	Passive     bool
	MaxEffort   float64
	MaxVelocity float64
}

// Core operation errors.
var (
	// ErrUnderDefined is returned by axis/limit extraction when the
	// constraint state does not pin the expected number of axes for the
	// classified joint type.
	ErrUnderDefined = errors.New("under-defined constraints")

	// ErrUnknownJointType is returned by synthesis for a joint type outside
	// the synthesizable set. It marks an operator input error, not an
	// invariant violation; no constraints are installed.
	ErrUnknownJointType = errors.New("unknown joint type")
)
