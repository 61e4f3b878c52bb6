// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package cmd wires the CLI surface. Commands are thin; every write
// goes through the library store.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/config"
	"github.com/mtreilly/libris/internal/library"
)

// NewRootCmd creates the root command for libris.
func NewRootCmd(cfg config.Config, store *library.Store) *cobra.Command {

	root := &cobra.Command{
		Use:   "libris",
		Short: "Manage your personal book collection",
		Long: `Track the books you own, read, and want to read.

libris provides tools to:
- Add, edit, and delete books
- Track reading status, likes, and ratings
- Search, filter, and sort the collection
- Show collection statistics
- Export and import the collection as JSON`,
		SilenceUsage: true,
	}

	root.AddCommand(newAddCmd(store))
	root.AddCommand(newEditCmd(store))
	root.AddCommand(newDeleteCmd(store))
	root.AddCommand(newLikeCmd(store))
	root.AddCommand(newRateCmd(store))
	root.AddCommand(newStatusCmd(store))
	root.AddCommand(newListCmd(store))
	root.AddCommand(newStatsCmd(store))
	root.AddCommand(newExportCmd(store))
	root.AddCommand(newImportCmd(store))
	root.AddCommand(newWatchCmd(cfg, store))
	root.AddCommand(newServeCmd(store))

	return root
}

// ensureLoaded brings the store out of idle before a command runs. A
// failed initial fetch is retried once, then reported.
func ensureLoaded(cmd *cobra.Command, store *library.Store) error {
	ctx := cmd.Context()
	if store.Status() == library.LoadIdle {
		if err := store.Initialize(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "initial load failed: %v, retrying\n", err)
			if err := store.Reload(ctx); err != nil {
				return fmt.Errorf("load collection: %w", err)
			}
		}
	}
	if store.Status() != library.LoadSucceeded {
		return fmt.Errorf("collection not loaded (status %s)", store.Status())
	}
	return nil
}

// resolveID expands a full id or unique prefix to the stored id, so
// the short ids shown by list are usable on the command line.
func resolveID(store *library.Store, arg string) (string, error) {
	var match string
	for _, b := range store.Items() {
		if b.ID == arg {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", arg)
			}
			match = b.ID
		}
	}
	if match == "" {
		return "", &library.NotFoundError{ID: arg}
	}
	return match, nil
}
