// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newImportCmd(store *library.Store) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a collection from JSON",
		Long: `Import a collection from a JSON file produced by export.

Importing REPLACES the entire current collection; it is not a merge.
The --replace flag is required as confirmation.

Records without a title, author, or id are skipped. The import fails
if the file is not a JSON array or if no record survives filtering.

Examples:
  libris import my-library-2025-03-14.json --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !replace {
				return fmt.Errorf("import replaces the whole collection; re-run with --replace to confirm")
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			dropped := len(store.Items())
			n, err := store.ImportCollection(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d book(s), replacing %d\n", n, dropped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Confirm replacing the current collection")
	return cmd
}
