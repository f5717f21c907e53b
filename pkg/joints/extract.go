package joints

import (
	"fmt"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

// ExtractAxisLimits derives the free axis and motion limits of the link's
// joint from its constraint state and a prior classification.
//
// For revolute and continuous joints the axis is the normalized bone
// direction and the limits are the (min, max) pair of the single limited
// rotation axis. For prismatic joints the axis is the normalized bone
// direction and the limits come from the one translation axis that is not
// pinned. For planar joints the axis is the unit vector along the single
// pinned translation axis (the plane normal) and the limits are the bound
// pairs of the two in-plane axes, four scalars in ascending axis order.
//
// Fixed and floating joints have neither axis nor limits; both returns are
// nil without error. Any constraint state that does not pin the expected
// number of axes fails with ErrUnderDefined.
func ExtractAxisLimits(link *model.Link, c Classification) (*model.Vector3, []float64, error) {
	switch c.Type {
	case model.JointFixed, model.JointFloating:
		return nil, nil, nil

	case model.JointRevolute, model.JointContinuous:
		rot := link.Constraints.Rotation
		if rot == nil {
			return nil, nil, underDefined(link)
		}
		for axis := model.AxisX; axis <= model.AxisZ; axis++ {
			if c.RotationLocked[axis] {
				a := rot.Axis(axis)
				dir := link.Bone.Direction.Normalized()
				return &dir, []float64{a.Min, a.Max}, nil
			}
		}
		return nil, nil, underDefined(link)

	case model.JointPrismatic:
		tr := link.Constraints.Translation
		if tr == nil {
			return nil, nil, underDefined(link)
		}
		free := -1
		pinned := 0
		for axis := model.AxisX; axis <= model.AxisZ; axis++ {
			if tr.Axis(axis).Locked() {
				pinned++
			} else {
				free = axis
			}
		}
		if pinned != 2 {
			return nil, nil, underDefined(link)
		}
		a := tr.Axis(free)
		dir := link.Bone.Direction.Normalized()
		return &dir, []float64{a.Min, a.Max}, nil

	case model.JointPlanar:
		tr := link.Constraints.Translation
		if tr == nil {
			return nil, nil, underDefined(link)
		}
		normal := -1
		pinned := 0
		for axis := model.AxisX; axis <= model.AxisZ; axis++ {
			if tr.Axis(axis).Locked() {
				pinned++
				normal = axis
			}
		}
		if pinned != 1 {
			return nil, nil, underDefined(link)
		}
		dir := model.UnitAxis(normal)
		limits := make([]float64, 0, 4)
		for axis := model.AxisX; axis <= model.AxisZ; axis++ {
			if axis == normal {
				continue
			}
			a := tr.Axis(axis)
			limits = append(limits, a.Min, a.Max)
		}
		return &dir, limits, nil

	default:
		return nil, nil, underDefined(link)
	}
}

// underDefined wraps ErrUnderDefined with the offending link's name.
func underDefined(link *model.Link) error {
	return fmt.Errorf("link %q: %w", link.Name, model.ErrUnderDefined)
}
