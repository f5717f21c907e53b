// Package joints implements the kinematic core of linksmith: deriving a
// joint type from a link's per-axis constraint state, extracting the joint's
// free axis and motion limits, and the inverse operation of installing a
// canonical constraint set for a declared type.
//
// All functions are pure, bounded, in-memory transforms of a single link.
// The decision table maps locked translation axes and limited rotation axes
// to the joint taxonomy:
//
//	translation locked  rotation limited  type
//	3                   3 (any non-zero)  revolute
//	3                   3 (all zero)      fixed
//	3                   2                 continuous
//	2                   any               prismatic
//	1                   any               planar
//	none present        -                 floating
//
// Combinations outside the table classify as indeterminate rather than
// guessing a type.
package joints
