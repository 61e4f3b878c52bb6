// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newAddCmd(store *library.Store) *cobra.Command {
	var out outputOptions
	var draft library.Draft
	var status string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the collection",
		Long: `Add a book to the collection.

Examples:
  libris add "Dune" --author "Frank Herbert"
  libris add "Dune" --author "Frank Herbert" --year 1965 --category "Fiction"
  libris add "Dune" --author "Frank Herbert" --status reading`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.resolve(); err != nil {
				return err
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			draft.Title = args[0]
			draft.Status = library.Status(status)
			book, err := store.AddBook(cmd.Context(), draft)
			if err != nil {
				return err
			}

			if out.isJSON() {
				return printJSON(book)
			}
			fmt.Printf("Added %q by %s (id %s)\n", book.Title, book.Author, shortID(book.ID))
			return nil
		},
	}

	out.addFlags(cmd)
	cmd.Flags().StringVarP(&draft.Author, "author", "a", "", "Book author (required)")
	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "Short description")
	cmd.Flags().StringVarP(&draft.Category, "category", "c", "", "Category (default Fiction)")
	cmd.Flags().IntVarP(&draft.PublishedYear, "year", "y", 0, "Publication year")
	cmd.Flags().StringVar(&draft.ISBN, "isbn", "", "ISBN (10-17 digits, hyphens allowed)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Reading status (to-read, reading, read)")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
