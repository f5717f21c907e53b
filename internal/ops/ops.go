// Package ops implements the batch entry points of the linksmith toolkit.
// Each operation iterates a Selection of links, moving the active-link
// pointer immediately before mutating a link so the surrounding editing
// session always sees the link under change. Processing is sequential for
// host-session parity; links are otherwise independent.
package ops

import (
	"math"

	"github.com/mesh-robotics/linksmith/pkg/joints"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

// Selection is the explicit set of links a batch operation acts on. Active
// tracks the link currently under mutation; it is threaded through the batch
// loop as a per-call value rather than ambient shared state.
type Selection struct {
	Links  []*model.Link
	Active *model.Link
}

// Result reports the outcome of one link in a batch operation. A non-nil
// Err aborts that link only; the batch continues with the remaining links.
type Result struct {
	LinkID  string
	Name    string
	Skipped bool
	Err     error
}

// ApplyParams carries the operator inputs for applying joint constraints to
// a selection.
type ApplyParams struct {
	JointType   model.JointType
	Passive     bool
	Degrees     bool // interpret Lower/Upper as degrees
	Lower       float64
	Upper       float64
	MaxEffort   float64
	MaxVelocity float64
}

// ApplyJointConstraints synthesizes the declared joint type on every link in
// the selection and stamps the joint record fields. When Degrees is set the
// travel bounds are converted to radians before synthesis. An unknown joint
// type is an operator error: the link is left untouched, the error lands in
// its Result, and the batch continues.
func ApplyJointConstraints(sel *Selection, p ApplyParams) []Result {
	lower, upper := p.Lower, p.Upper
	if p.Degrees {
		lower = lower * math.Pi / 180
		upper = upper * math.Pi / 180
	}

	results := make([]Result, 0, len(sel.Links))
	for _, link := range sel.Links {
		sel.Active = link
		res := Result{LinkID: link.LinkID, Name: link.Name}
		if err := joints.Synthesize(link, p.JointType, lower, upper); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		joints.WriteJointRecord(link, p.JointType, model.JointParams{
			Passive:     p.Passive,
			MaxEffort:   p.MaxEffort,
			MaxVelocity: p.MaxVelocity,
		})
		results = append(results, res)
	}
	return results
}

// AttachMotors writes the motor record onto every link in the selection
// tagged with the linkage role. Links with other roles are skipped.
func AttachMotors(sel *Selection, p model.MotorParams) []Result {
	results := make([]Result, 0, len(sel.Links))
	for _, link := range sel.Links {
		res := Result{LinkID: link.LinkID, Name: link.Name}
		if link.Role != model.RoleLink {
			res.Skipped = true
			results = append(results, res)
			continue
		}
		sel.Active = link
		joints.WriteMotorRecord(link, p)
		results = append(results, res)
	}
	return results
}

// TypeReport is the outcome of a consistency check for one link.
type TypeReport struct {
	LinkID   string
	Name     string
	Stored   string          // joint/type metadata, "" when absent
	Derived  model.JointType // type re-derived from live constraints
	Mismatch bool
	Adjusted bool
}

// CheckJointTypes re-derives the joint type of every link in the selection
// and compares it against the stored joint/type metadata. A mismatch is
// reported, never fatal. When adjust is set the stored type is overwritten
// with the derived one.
func CheckJointTypes(sel *Selection, adjust bool) []TypeReport {
	reports := make([]TypeReport, 0, len(sel.Links))
	for _, link := range sel.Links {
		c, mismatch := joints.CheckStoredType(link)
		rep := TypeReport{
			LinkID:   link.LinkID,
			Name:     link.Name,
			Stored:   link.MetaString(model.MetaJointType),
			Derived:  c.Type,
			Mismatch: mismatch,
		}
		if mismatch && adjust {
			sel.Active = link
			link.SetMeta(model.MetaJointType, string(c.Type))
			rep.Adjusted = true
		}
		reports = append(reports, rep)
	}
	return reports
}
