// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newExportCmd(store *library.Store) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as JSON",
		Long: `Export the whole collection as a pretty-printed JSON array.

The default filename embeds today's date, e.g. my-library-2025-03-14.json.
Use --file - to write to stdout instead.

Examples:
  libris export
  libris export --file backup.json
  libris export --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			data, err := store.ExportCollection()
			if err != nil {
				return err
			}

			if outPath == "-" {
				fmt.Println(string(data))
				return nil
			}

			path := outPath
			if path == "" {
				path = library.ExportFilename(time.Now())
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Printf("Exported %d book(s) to %s\n", len(store.Items()), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "file", "f", "", "Output file (default my-library-<date>.json, - for stdout)")
	return cmd
}
