package joints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

// lockedAxis is a translation axis pinned to a single value.
func lockedAxis() model.TranslationAxis {
	return model.TranslationAxis{UseMin: true, UseMax: true}
}

// allLocked pins all three translation axes.
func allLocked() *model.TranslationConstraint {
	return &model.TranslationConstraint{X: lockedAxis(), Y: lockedAxis(), Z: lockedAxis()}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		m         model.ConstraintModel
		wantType  model.JointType
		wantFlags [3]bool
	}{
		{
			name:     "no constraints is floating",
			m:        model.ConstraintModel{},
			wantType: model.JointFloating,
		},
		{
			name: "rotation without translation is floating",
			m: model.ConstraintModel{
				Rotation: &model.RotationConstraint{
					Y: model.RotationAxis{UseLimit: true, Max: 1},
				},
			},
			wantType:  model.JointFloating,
			wantFlags: [3]bool{false, true, false},
		},
		{
			name: "all locked with one non-zero rotation limit is revolute",
			m: model.ConstraintModel{
				Translation: allLocked(),
				Rotation: &model.RotationConstraint{
					X: model.RotationAxis{UseLimit: true},
					Y: model.RotationAxis{UseLimit: true, Min: 0, Max: 1.5708},
					Z: model.RotationAxis{UseLimit: true},
				},
			},
			wantType:  model.JointRevolute,
			wantFlags: [3]bool{false, true, false},
		},
		{
			name: "all locked with all zero-range rotation limits is fixed",
			m: model.ConstraintModel{
				Translation: allLocked(),
				Rotation: &model.RotationConstraint{
					X: model.RotationAxis{UseLimit: true},
					Y: model.RotationAxis{UseLimit: true},
					Z: model.RotationAxis{UseLimit: true},
				},
			},
			wantType: model.JointFixed,
		},
		{
			name: "all locked with two rotation limits is continuous",
			m: model.ConstraintModel{
				Translation: allLocked(),
				Rotation: &model.RotationConstraint{
					X: model.RotationAxis{UseLimit: true},
					Z: model.RotationAxis{UseLimit: true},
				},
			},
			wantType: model.JointContinuous,
		},
		{
			name: "two locked translation axes is prismatic",
			m: model.ConstraintModel{
				Translation: &model.TranslationConstraint{
					X: lockedAxis(),
					Y: model.TranslationAxis{UseMin: true, UseMax: true, Min: -0.1, Max: 0.1},
					Z: lockedAxis(),
				},
			},
			wantType: model.JointPrismatic,
		},
		{
			name: "prismatic ignores rotation state",
			m: model.ConstraintModel{
				Translation: &model.TranslationConstraint{X: lockedAxis(), Z: lockedAxis()},
				Rotation: &model.RotationConstraint{
					Y: model.RotationAxis{UseLimit: true, Max: 2},
				},
			},
			wantType:  model.JointPrismatic,
			wantFlags: [3]bool{false, true, false},
		},
		{
			name: "one locked translation axis is planar",
			m: model.ConstraintModel{
				Translation: &model.TranslationConstraint{Y: lockedAxis()},
			},
			wantType: model.JointPlanar,
		},
		{
			name: "translation constraint with nothing locked is indeterminate",
			m: model.ConstraintModel{
				Translation: &model.TranslationConstraint{
					X: model.TranslationAxis{UseMin: true, Min: -1, Max: 1},
				},
			},
			wantType: model.JointIndeterminate,
		},
		{
			name: "all locked with no rotation constraint is indeterminate",
			m: model.ConstraintModel{
				Translation: allLocked(),
			},
			wantType: model.JointIndeterminate,
		},
		{
			name: "all locked with one rotation limit is indeterminate",
			m: model.ConstraintModel{
				Translation: allLocked(),
				Rotation: &model.RotationConstraint{
					Y: model.RotationAxis{UseLimit: true, Max: 1},
				},
			},
			wantType:  model.JointIndeterminate,
			wantFlags: [3]bool{false, true, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.m)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantFlags, got.RotationLocked)
		})
	}
}

func TestCheckStoredType(t *testing.T) {
	t.Run("no stored type is never a mismatch", func(t *testing.T) {
		link := &model.Link{Name: "base"}
		c, mismatch := CheckStoredType(link)
		assert.Equal(t, model.JointFloating, c.Type)
		assert.False(t, mismatch)
	})

	t.Run("agreeing stored type is not a mismatch", func(t *testing.T) {
		link := &model.Link{Name: "base"}
		link.SetMeta(model.MetaJointType, string(model.JointFloating))
		_, mismatch := CheckStoredType(link)
		assert.False(t, mismatch)
	})

	t.Run("disagreeing stored type is a mismatch", func(t *testing.T) {
		link := &model.Link{Name: "base"}
		link.SetMeta(model.MetaJointType, string(model.JointRevolute))
		c, mismatch := CheckStoredType(link)
		assert.Equal(t, model.JointFloating, c.Type)
		assert.True(t, mismatch)
	})
}
