package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcstore/tablelayout"
)

func newBuildCmd() *cobra.Command {
	var priorPath string
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build a layout descriptor, optionally as an update against a prior concrete layout, and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prior layout.TableLayout
			if priorPath != "" {
				pf, err := os.Open(priorPath)
				if err != nil {
					return err
				}
				defer pf.Close()
				prior, err = layout.CreateFromEffectiveJSON(pf)
				if err != nil {
					return fmt.Errorf("building prior layout: %w", err)
				}
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			var desc layout.TableLayoutDesc
			if err := decodeJSON(f, &desc); err != nil {
				return err
			}
			built, err := layout.Build(&desc, prior)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), built.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&priorPath, "prior", "", "path to a prior concrete layout, as JSON")
	return cmd
}
