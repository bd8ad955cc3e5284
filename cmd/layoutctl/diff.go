package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcstore/tablelayout"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <priorFile> <file>",
		Short: "Build <file> against <priorFile> as prior and report the ID/rename/delete decisions taken",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer pf.Close()
			prior, err := layout.CreateFromEffectiveJSON(pf)
			if err != nil {
				return fmt.Errorf("building prior layout: %w", err)
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			var desc layout.TableLayoutDesc
			if err := decodeJSON(f, &desc); err != nil {
				return err
			}
			next, err := layout.Build(&desc, prior)
			if err != nil {
				return err
			}
			reportLocalityGroupDiff(cmd, prior, next)
			return nil
		},
	}
}

func reportLocalityGroupDiff(cmd *cobra.Command, prior, next layout.TableLayout) {
	out := cmd.OutOrStdout()
	priorByID := make(map[int32]string)
	for _, g := range prior.LocalityGroups() {
		priorByID[g.ID()] = g.PrimaryName()
	}
	seen := make(map[int32]bool)
	for _, g := range next.LocalityGroups() {
		seen[g.ID()] = true
		if oldName, existed := priorByID[g.ID()]; existed {
			if oldName != g.PrimaryName() {
				fmt.Fprintf(out, "locality group renamed: %s -> %s (id=%d)\n", oldName, g.PrimaryName(), g.ID())
			}
		} else {
			fmt.Fprintf(out, "locality group added: %s (id=%d)\n", g.PrimaryName(), g.ID())
		}
		reportFamilyDiff(out, g)
	}
	for id, name := range priorByID {
		if !seen[id] {
			fmt.Fprintf(out, "locality group removed: %s (id=%d)\n", name, id)
		}
	}
	fmt.Fprintf(out, "layoutId: %s -> %s\n", prior.LayoutID(), next.LayoutID())
}

func reportFamilyDiff(out interface{ Write([]byte) (int, error) }, g layout.LocalityGroup) {
	for _, fam := range g.Families() {
		if fam.IsMapType() {
			fmt.Fprintf(out, "  family %s (id=%d, map)\n", fam.PrimaryName(), fam.ID())
			continue
		}
		fmt.Fprintf(out, "  family %s (id=%d, group, %d column(s))\n", fam.PrimaryName(), fam.ID(), len(fam.Columns()))
	}
}
