package joints

import "github.com/mesh-robotics/linksmith/pkg/model"

// Classification is the result of deriving a joint type from a constraint
// model. RotationLocked[i] is true when rotation axis i carries an active
// limit spanning a non-zero range.
type Classification struct {
	Type           model.JointType
	RotationLocked [3]bool
}

// Classify derives the joint type from the given constraint state.
//
// A link without a translation constraint is floating: every joint type but
// floating pins translation in some way. When a translation constraint
// exists, the counts of locked translation axes and actively limited
// rotation axes select a row of the decision table. A combination matching
// no row yields JointIndeterminate.
func Classify(m model.ConstraintModel) Classification {
	var c Classification
	if m.Rotation != nil {
		for axis := model.AxisX; axis <= model.AxisZ; axis++ {
			c.RotationLocked[axis] = m.Rotation.Axis(axis).NonZero()
		}
	}

	if m.Translation == nil {
		c.Type = model.JointFloating
		return c
	}

	nLocT := m.Translation.LockedCount()
	nLimR := 0
	if m.Rotation != nil {
		nLimR = m.Rotation.LimitedCount()
	}

	switch {
	case nLocT == 3 && nLimR == 3:
		if c.RotationLocked[model.AxisX] || c.RotationLocked[model.AxisY] || c.RotationLocked[model.AxisZ] {
			c.Type = model.JointRevolute
		} else {
			c.Type = model.JointFixed
		}
	case nLocT == 3 && nLimR == 2:
		c.Type = model.JointContinuous
	case nLocT == 2:
		// Rotation state is deliberately ignored for prismatic links.
		c.Type = model.JointPrismatic
	case nLocT == 1:
		c.Type = model.JointPlanar
	default:
		c.Type = model.JointIndeterminate
	}
	return c
}

// CheckStoredType classifies the link's live constraints and compares the
// derived type against the joint/type metadata stored on the link. The
// second return value is true when stored metadata exists and disagrees
// with the derived type. Repairing the stored value is the caller's call.
func CheckStoredType(link *model.Link) (Classification, bool) {
	c := Classify(link.ConstraintModel())
	stored := link.MetaString(model.MetaJointType)
	return c, stored != "" && stored != string(c.Type)
}
