// Joint check command for the linksmith CLI: compares stored joint types
// against the types re-derived from live constraints.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/internal/ops"
)

var (
	jointCheckAdjust bool
	jointCheckLinks  string
)

var jointCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check stored joint types against derived ones",
	Long: `Re-derive the joint type of every selected link from its live constraint
state and warn when the stored joint/type metadata disagrees. With --adjust
the stored type is overwritten with the derived one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "joint check:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		selected, err := resolveSelection(backend, jointCheckLinks)
		if err != nil {
			fmt.Fprintln(os.Stderr, "joint check:", err)
			os.Exit(exitUserError)
		}

		sel := &ops.Selection{Links: selected}
		reports := ops.CheckJointTypes(sel, jointCheckAdjust)

		for i, rep := range reports {
			if !rep.Mismatch {
				continue
			}
			fmt.Fprintf(os.Stderr, "warning: type of joint %s does not match constraints (stored %q, derived %q)\n",
				rep.Name, rep.Stored, rep.Derived)
			if rep.Adjusted {
				if err := saveLink(backend, selected[i]); err != nil {
					fmt.Fprintf(os.Stderr, "save link %s: %s\n", rep.Name, err)
					os.Exit(exitSysError)
				}
				fmt.Printf("Changed type of joint %s to %s\n", rep.Name, rep.Derived)
			}
		}

		if flagJSON {
			printJSON(reports)
		}
		return nil
	},
}

func init() {
	jointCheckCmd.Flags().BoolVar(&jointCheckAdjust, "adjust", false, "overwrite mismatched stored types with derived ones")
	jointCheckCmd.Flags().StringVar(&jointCheckLinks, "links", "", "comma-separated link names or IDs (default: all)")
}
