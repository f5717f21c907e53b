// Link add command for the linksmith CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

var (
	linkAddName string
	linkAddRole string
	linkAddBone string
)

var linkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a link to the scene store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidRole(linkAddRole) {
			fmt.Fprintf(os.Stderr, "invalid role %q (valid: %s, %s, %s)\n",
				linkAddRole, model.RoleLink, model.RoleVisual, model.RoleSensor)
			os.Exit(exitUserError)
		}

		bone, err := parseVector(linkAddBone)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse bone direction:", err)
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link add:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, err := backend.GetTable(model.LinksTable)
		if err != nil {
			fmt.Fprintln(os.Stderr, "get table:", err)
			os.Exit(exitSysError)
		}

		link := &model.Link{
			Name: linkAddName,
			Role: linkAddRole,
			Bone: model.Bone{Direction: bone},
		}
		id, err := table.Set("", link)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add link:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			result, err := table.Get(id)
			if err != nil {
				fmt.Fprintln(os.Stderr, "get created link:", err)
				os.Exit(exitSysError)
			}
			printJSON(result)
		} else {
			fmt.Printf("Added link %s: %s\n", linkAddName, id)
		}
		return nil
	},
}

func init() {
	linkAddCmd.Flags().StringVar(&linkAddName, "name", "", "link name (required)")
	linkAddCmd.Flags().StringVar(&linkAddRole, "role", model.RoleLink, "scene role (link, visual, sensor)")
	linkAddCmd.Flags().StringVar(&linkAddBone, "bone", "0,1,0", "bone direction in object space as x,y,z")

	linkAddCmd.MarkFlagRequired("name")
}
