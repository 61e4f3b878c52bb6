// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newEditCmd(store *library.Store) *cobra.Command {
	var out outputOptions
	var title, author, description, category, isbn, status string
	var year int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a book",
		Long: `Edit fields of an existing book. Only flags that are set are
applied; everything else is left as is.

Examples:
  libris edit 3f1a9c2e --title "Dune Messiah"
  libris edit 3f1a9c2e --category "Science Fiction" --year 1969`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.resolve(); err != nil {
				return err
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			var patch library.Patch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("author") {
				patch.Author = &author
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("year") {
				patch.PublishedYear = &year
			}
			if flags.Changed("isbn") {
				patch.ISBN = &isbn
			}
			if flags.Changed("status") {
				s := library.Status(status)
				patch.Status = &s
			}

			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			book, err := store.EditBook(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			if out.isJSON() {
				return printJSON(book)
			}
			fmt.Printf("Updated %q (id %s)\n", book.Title, shortID(book.ID))
			return nil
		},
	}

	out.addFlags(cmd)
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&author, "author", "a", "", "New author")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "New publication year")
	cmd.Flags().StringVar(&isbn, "isbn", "", "New ISBN")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New reading status")

	return cmd
}
