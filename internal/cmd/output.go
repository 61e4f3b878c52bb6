// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// outputOptions carries the shared --output flag.
type outputOptions struct {
	Format string
}

func (o *outputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", outputTable, "Output format (table, json)")
}

func (o *outputOptions) resolve() error {
	switch o.Format {
	case outputTable, outputJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table or json)", o.Format)
}

func (o *outputOptions) isJSON() bool { return o.Format == outputJSON }

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table is a minimal tabwriter wrapper for aligned CLI output.
type table struct {
	w       *tabwriter.Writer
	columns int
}

func newTable(headers ...string) *table {
	t := &table{
		w:       tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0),
		columns: len(headers),
	}
	t.addRow(toAny(headers)...)
	return t
}

func (t *table) addRow(cells ...any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, c)
	}
	fmt.Fprintln(t.w)
}

func (t *table) render() {
	t.w.Flush()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
