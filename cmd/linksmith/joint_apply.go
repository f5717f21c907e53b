// Joint apply command for the linksmith CLI: the batch entry point that
// synthesizes joint constraints on a selection of links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/internal/ops"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

var (
	jointApplyType        string
	jointApplyPassive     bool
	jointApplyDegrees     bool
	jointApplyLower       float64
	jointApplyUpper       float64
	jointApplyMaxEffort   float64
	jointApplyMaxVelocity float64
	jointApplyLinks       string
)

var jointApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply joint constraints to selected links",
	Long: `Replace the constraint state of every selected link with the canonical
constraint set for the declared joint type, then stamp the joint metadata.
With --degrees the travel bounds are interpreted as degrees and converted
to radians before synthesis.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jt := model.JointType(jointApplyType)
		if !model.ValidJointType(jt) {
			fmt.Fprintf(os.Stderr, "invalid joint type %q (valid: %s)\n", jointApplyType, jointTypeList())
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "joint apply:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		selected, err := resolveSelection(backend, jointApplyLinks)
		if err != nil {
			fmt.Fprintln(os.Stderr, "joint apply:", err)
			os.Exit(exitUserError)
		}

		sel := &ops.Selection{Links: selected}
		results := ops.ApplyJointConstraints(sel, ops.ApplyParams{
			JointType:   jt,
			Passive:     jointApplyPassive,
			Degrees:     jointApplyDegrees,
			Lower:       jointApplyLower,
			Upper:       jointApplyUpper,
			MaxEffort:   jointApplyMaxEffort,
			MaxVelocity: jointApplyMaxVelocity,
		})

		failed := 0
		for i, res := range results {
			if res.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "link %s: %s\n", res.Name, res.Err)
				continue
			}
			if err := saveLink(backend, selected[i]); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "save link %s: %s\n", res.Name, err)
				continue
			}
			if !flagJSON {
				fmt.Printf("Applied %s joint to %s\n", jt, res.Name)
			}
		}
		if flagJSON {
			printJSON(results)
		}
		if failed > 0 {
			os.Exit(exitUserError)
		}
		return nil
	},
}

// jointTypeList returns the synthesizable joint types as a comma-separated
// string for error output.
func jointTypeList() string {
	s := ""
	for i, jt := range model.JointTypes {
		if i > 0 {
			s += ", "
		}
		s += string(jt)
	}
	return s
}

func init() {
	jointApplyCmd.Flags().StringVar(&jointApplyType, "type", string(model.JointRevolute), "joint type to synthesize")
	jointApplyCmd.Flags().BoolVar(&jointApplyPassive, "passive", false, "mark the joint passive (no actuation)")
	jointApplyCmd.Flags().BoolVar(&jointApplyDegrees, "degrees", false, "interpret --lower/--upper as degrees")
	jointApplyCmd.Flags().Float64Var(&jointApplyLower, "lower", 0, "lower travel bound of the joint")
	jointApplyCmd.Flags().Float64Var(&jointApplyUpper, "upper", 0, "upper travel bound of the joint")
	jointApplyCmd.Flags().Float64Var(&jointApplyMaxEffort, "max-effort", 0, "maximum effort of the joint (N or Nm)")
	jointApplyCmd.Flags().Float64Var(&jointApplyMaxVelocity, "max-velocity", 0, "maximum velocity of the joint (m/s or rad/s)")
	jointApplyCmd.Flags().StringVar(&jointApplyLinks, "links", "", "comma-separated link names or IDs (default: all)")
}
