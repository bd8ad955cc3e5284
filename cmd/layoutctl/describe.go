package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcstore/tablelayout"
)

func newDescribeCmd() *cobra.Command {
	var column string
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Build a layout descriptor and report on one column via the query surface",
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
			if column == "" {
				fmt.Fprintln(cmd.OutOrStdout(), built.String())
				return nil
			}
			name := parseColumnName(column)
			exists := built.Exists(name)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: exists=%t\n", name, exists)
			if !exists {
				return nil
			}
			schema, err := built.GetCellSchema(name)
			if err != nil {
				return err
			}
			format, err := built.GetCellFormat(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  schema: type=%s value=%s storage=%s (format=%s)\n", schema.Type, schema.Value, schema.Storage, format)
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", "", `column to describe, as "family" or "family:qualifier"`)
	return cmd
}
