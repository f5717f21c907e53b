// Joint show command for the linksmith CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/joints"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

var jointShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Derive and print the joint record of a link",
	Long: `Classify the link's live constraint state, extract the joint's free axis
and motion limits, and print the assembled joint record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "joint show:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		link, err := findLink(backend, args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "joint show:", err)
			os.Exit(exitSysError)
		}

		rec, err := joints.DeriveJointRecord(link)
		if err != nil {
			if errors.Is(err, model.ErrUnderDefined) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "joint show:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(rec)
			return nil
		}

		fmt.Println("Link:", link.Name)
		fmt.Println("Type:", rec.Type)
		if rec.Axis != nil {
			fmt.Printf("Axis: (%g, %g, %g)\n", rec.Axis.X, rec.Axis.Y, rec.Axis.Z)
		}
		if rec.Limits != nil {
			fmt.Println("Limits:", rec.Limits)
		}
		if rec.Type != model.JointFixed && rec.Type != model.JointFloating {
			fmt.Println("Max effort:", rec.MaxEffort)
			fmt.Println("Max velocity:", rec.MaxVelocity)
		}
		if rec.Passive {
			fmt.Println("Passive: true")
		}
		return nil
	},
}
