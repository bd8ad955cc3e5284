package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcstore/tablelayout"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Build a layout descriptor with no prior layout and report the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			built, err := layout.CreateFromEffectiveJSON(f)
			if err != nil {
				return err
			}
			families := 0
			columns := 0
			for _, lg := range built.LocalityGroups() {
				for _, fam := range lg.Families() {
					families++
					if !fam.IsMapType() {
						columns += len(fam.Columns())
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (layoutId=%s) — %d locality group(s), %d family(-ies), %d column(s)\n",
				built.Name(), built.LayoutID(), len(built.LocalityGroups()), families, columns)
			return nil
		},
	}
}
