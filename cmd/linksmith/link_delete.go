// Link delete command for the linksmith CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/model"
)

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a link from the scene store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "link delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		link, err := findLink(backend, args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "link delete:", err)
			os.Exit(exitSysError)
		}

		table, err := backend.GetTable(model.LinksTable)
		if err != nil {
			fmt.Fprintln(os.Stderr, "get table:", err)
			os.Exit(exitSysError)
		}
		if err := table.Delete(link.LinkID); err != nil {
			fmt.Fprintln(os.Stderr, "delete link:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Deleted link %s: %s\n", link.Name, link.LinkID)
		return nil
	},
}
