package model

// Metadata keys written by the joint and motor record writers. Values are
// semantic: enum strings for types, floats for scalars, bools for flags.
const (
	MetaJointType        = "joint/type"
	MetaJointMaxEffort   = "joint/maxeffort"
	MetaJointMaxVelocity = "joint/maxvelocity"
	MetaJointPassive     = "joint/passive"

	MetaMotorType      = "motor/type"
	MetaMotorP         = "motor/p"
	MetaMotorI         = "motor/i"
	MetaMotorD         = "motor/d"
	MetaMotorMaxSpeed  = "motor/maxSpeed"
	MetaMotorMaxEffort = "motor/maxEffort"
)
