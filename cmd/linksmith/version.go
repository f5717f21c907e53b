// Version command for the linksmith CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/pkg/linksmith"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the linksmith version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("linksmith", linksmith.Version)
	},
}
