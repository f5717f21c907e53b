package joints

import (
	"math"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

// WriteJointRecord stamps operator-provided joint fields onto the link's
// metadata. Fixed joints never receive effort or velocity limits. The
// passive flag is written only when set.
func WriteJointRecord(link *model.Link, jt model.JointType, p model.JointParams) {
	if jt != model.JointFixed {
		link.SetMeta(model.MetaJointMaxEffort, p.MaxEffort)
		link.SetMeta(model.MetaJointMaxVelocity, p.MaxVelocity)
	}
	if p.Passive {
		link.SetMeta(model.MetaJointPassive, true)
	}
	// TODO: decide whether a non-passive joint without explicit motor values
	// gets a default motor here or at export time. Export-time attachment
	// would let model checking flag missing motors.
}

// WriteMotorRecord stamps motor fields onto the link's metadata. The PID
// gains are written for PID motors only. Maximum speed is stored in rad/s,
// converted from the operator's rpm input.
func WriteMotorRecord(link *model.Link, p model.MotorParams) {
	if p.Type == model.MotorPID {
		link.SetMeta(model.MetaMotorP, p.P)
		link.SetMeta(model.MetaMotorI, p.I)
		link.SetMeta(model.MetaMotorD, p.D)
	}
	link.SetMeta(model.MetaMotorMaxSpeed, p.VmaxRPM*2*math.Pi)
	link.SetMeta(model.MetaMotorMaxEffort, p.TaumaxNm)
	link.SetMeta(model.MetaMotorType, p.Type)
}

// DeriveJointRecord classifies the link's live constraints and assembles the
// full joint record: derived type, extracted axis and limits, and the
// effort, velocity and passive fields previously stamped on the link.
func DeriveJointRecord(link *model.Link) (model.JointRecord, error) {
	c := Classify(link.ConstraintModel())
	axis, limits, err := ExtractAxisLimits(link, c)
	if err != nil {
		return model.JointRecord{}, err
	}

	rec := model.JointRecord{
		Type:   c.Type,
		Axis:   axis,
		Limits: limits,
	}
	if c.Type != model.JointFixed {
		rec.MaxEffort = link.MetaFloat(model.MetaJointMaxEffort)
		rec.MaxVelocity = link.MetaFloat(model.MetaJointMaxVelocity)
	}
	if v, ok := link.Meta(model.MetaJointPassive); ok {
		if b, ok := v.(bool); ok {
			rec.Passive = b
		}
	}
	return rec, nil
}
