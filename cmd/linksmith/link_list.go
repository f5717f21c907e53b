// Link list command for the linksmith CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

var linkListRole string

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List links in the scene store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, err := backend.GetTable(model.LinksTable)
		if err != nil {
			fmt.Fprintln(os.Stderr, "get table:", err)
			os.Exit(exitSysError)
		}

		filter := map[string]any{}
		if linkListRole != "" {
			filter["role"] = linkListRole
		}
		entities, err := table.Fetch(filter)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fetch links:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(entities)
			return nil
		}

		if len(entities) == 0 {
			fmt.Println("No links found.")
			return nil
		}
		for _, e := range entities {
			link, ok := e.(*model.Link)
			if !ok {
				continue
			}
			jt := link.MetaString(model.MetaJointType)
			if jt == "" {
				jt = "-"
			}
			fmt.Printf("%s  %-12s %-8s joint=%s\n", link.LinkID, link.Name, link.Role, jt)
		}
		return nil
	},
}

func init() {
	linkListCmd.Flags().StringVar(&linkListRole, "role", "", "filter by scene role")
}
