// Link get command for the linksmith CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

var linkGetCmd = &cobra.Command{
	Use:   "get <id|name>",
	Short: "Show one link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link get:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		link, err := findLink(backend, args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "link get:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(link)
			return nil
		}

		fmt.Println("ID:  ", link.LinkID)
		fmt.Println("Name:", link.Name)
		fmt.Println("Role:", link.Role)
		d := link.Bone.Direction
		fmt.Printf("Bone: (%g, %g, %g)\n", d.X, d.Y, d.Z)
		if jt := link.MetaString(model.MetaJointType); jt != "" {
			fmt.Println("Type:", jt)
		}
		return nil
	},
}
