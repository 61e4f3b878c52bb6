// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newDeleteCmd(store *library.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a book from the collection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			id, err := resolveID(store, args[0])
			var nf *library.NotFoundError
			if errors.As(err, &nf) {
				// Deleting something already gone is fine.
				fmt.Printf("No book with id %s\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			store.DeleteBook(cmd.Context(), id)
			fmt.Printf("Deleted %s\n", shortID(id))
			return nil
		},
	}
	return cmd
}
