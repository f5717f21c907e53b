// Package main provides the linksmith CLI: a batch editor for the joint
// constraints and motor records of single-bone links in a scene store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
