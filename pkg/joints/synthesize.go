package joints

import "github.com/mesh-robotics/linksmith/pkg/model"

// Synthesize replaces the link's constraint state with the canonical
// constraint set for the declared joint type, then records the type in the
// link's joint/type metadata. Lower and upper are the joint's travel bounds,
// already unit-converted by the caller (radians for rotational types).
//
// The per-type templates fix the free axis by convention: revolute and
// continuous joints rotate about local Y, prismatic joints travel along
// local Y, and planar joints pin local Y as the plane normal. Classification
// accepts planar joints with the normal on any axis; synthesis always picks
// Y. That asymmetry is a deliberate write-path convention.
//
// A joint type outside the synthesizable set returns ErrUnknownJointType and
// leaves the link untouched.
func Synthesize(link *model.Link, jt model.JointType, lower, upper float64) error {
	if !model.ValidJointType(jt) {
		return model.ErrUnknownJointType
	}

	link.Constraints.Clear()

	switch jt {
	case model.JointRevolute:
		link.Constraints.Translation = lockedTranslation()
		link.Constraints.Rotation = &model.RotationConstraint{
			X: zeroRotationAxis(),
			Y: model.RotationAxis{UseLimit: true, Min: lower, Max: upper},
			Z: zeroRotationAxis(),
		}

	case model.JointContinuous:
		link.Constraints.Translation = lockedTranslation()
		// Y carries no limit: unbounded rotation about the bone axis.
		link.Constraints.Rotation = &model.RotationConstraint{
			X: zeroRotationAxis(),
			Z: zeroRotationAxis(),
		}

	case model.JointPrismatic:
		tr := lockedTranslation()
		if lower == upper {
			// A degenerate travel range leaves Y unconstrained.
			tr.Y = model.TranslationAxis{}
		} else {
			tr.Y = model.TranslationAxis{UseMin: true, UseMax: true, Min: lower, Max: upper}
		}
		link.Constraints.Translation = tr
		link.Constraints.Rotation = lockedRotation()

	case model.JointFixed:
		link.Constraints.Translation = lockedTranslation()
		link.Constraints.Rotation = lockedRotation()

	case model.JointPlanar:
		link.Constraints.Translation = &model.TranslationConstraint{
			Y: model.TranslationAxis{UseMin: true, UseMax: true},
		}
		link.Constraints.Rotation = lockedRotation()

	case model.JointFloating:
		// Six DOF: no constraints installed.
	}

	link.SetMeta(model.MetaJointType, string(jt))
	return nil
}

// lockedTranslation pins all three translation axes to their current value.
func lockedTranslation() *model.TranslationConstraint {
	return &model.TranslationConstraint{
		X: model.TranslationAxis{UseMin: true, UseMax: true},
		Y: model.TranslationAxis{UseMin: true, UseMax: true},
		Z: model.TranslationAxis{UseMin: true, UseMax: true},
	}
}

// lockedRotation pins all three rotation axes to zero.
func lockedRotation() *model.RotationConstraint {
	return &model.RotationConstraint{
		X: zeroRotationAxis(),
		Y: zeroRotationAxis(),
		Z: zeroRotationAxis(),
	}
}

// zeroRotationAxis is an active rotation limit with zero range.
func zeroRotationAxis() model.RotationAxis {
	return model.RotationAxis{UseLimit: true}
}
