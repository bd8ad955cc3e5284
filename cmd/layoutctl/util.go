package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wcstore/tablelayout"
)

func decodeJSON(r io.Reader, v interface{}) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decoding descriptor: %w", err)
	}
	return nil
}

// parseColumnName parses "family" or "family:qualifier" as a layout.ColumnName.
func parseColumnName(s string) layout.ColumnName {
	family, qualifier, ok := strings.Cut(s, ":")
	if !ok {
		return layout.NewFamilyColumnName(family)
	}
	return layout.NewColumnName(family, qualifier)
}
