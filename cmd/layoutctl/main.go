// Command layoutctl is a thin, exercised adapter around the layout
// package's pure Build function and query surface: it owns the file I/O
// and JSON decoding the core deliberately stays out of.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "layoutctl",
		Short:         "Compile and inspect wide-column table layout descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newDiffCmd())
	return root
}
