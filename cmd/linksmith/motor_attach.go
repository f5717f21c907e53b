// Motor attach command for the linksmith CLI: the batch entry point that
// stamps motor records onto a selection of links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/internal/ops"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

var (
	motorAttachP      float64
	motorAttachI      float64
	motorAttachD      float64
	motorAttachVmax   float64
	motorAttachTaumax float64
	motorAttachType   string
	motorAttachLinks  string
)

var motorAttachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Attach motor values to selected links",
	Long: `Write the motor record onto every selected link tagged with the linkage
role. The maximum speed is stored in rad/s, converted from the rpm input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidMotorType(motorAttachType) {
			fmt.Fprintf(os.Stderr, "invalid motor type %q (valid: %s, %s)\n",
				motorAttachType, model.MotorPID, model.MotorDC)
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "motor attach:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		selected, err := resolveSelection(backend, motorAttachLinks)
		if err != nil {
			fmt.Fprintln(os.Stderr, "motor attach:", err)
			os.Exit(exitUserError)
		}

		sel := &ops.Selection{Links: selected}
		results := ops.AttachMotors(sel, model.MotorParams{
			Type:     motorAttachType,
			P:        motorAttachP,
			I:        motorAttachI,
			D:        motorAttachD,
			VmaxRPM:  motorAttachVmax,
			TaumaxNm: motorAttachTaumax,
		})

		for i, res := range results {
			if res.Skipped {
				continue
			}
			if err := saveLink(backend, selected[i]); err != nil {
				fmt.Fprintf(os.Stderr, "save link %s: %s\n", res.Name, err)
				os.Exit(exitSysError)
			}
			if !flagJSON {
				fmt.Printf("Attached %s motor to %s\n", motorAttachType, res.Name)
			}
		}
		if flagJSON {
			printJSON(results)
		}
		return nil
	},
}

func init() {
	motorAttachCmd.Flags().Float64Var(&motorAttachP, "p", 1.0, "proportional gain")
	motorAttachCmd.Flags().Float64Var(&motorAttachI, "i", 0, "integral gain")
	motorAttachCmd.Flags().Float64Var(&motorAttachD, "d", 0, "derivative gain")
	motorAttachCmd.Flags().Float64Var(&motorAttachVmax, "vmax", 1.0, "maximum turning velocity of the motor (rpm)")
	motorAttachCmd.Flags().Float64Var(&motorAttachTaumax, "taumax", 1.0, "maximum torque the motor can apply (Nm)")
	motorAttachCmd.Flags().StringVar(&motorAttachType, "type", model.MotorPID, "motor type (PID or DC)")
	motorAttachCmd.Flags().StringVar(&motorAttachLinks, "links", "", "comma-separated link names or IDs (default: all)")
}
