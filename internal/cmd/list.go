// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newListCmd(store *library.Store) *cobra.Command {
	var out outputOptions
	var search string
	var filter string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the collection",
		Long: `List books, optionally searched, filtered, and sorted.

Examples:
  libris list                      # Everything, newest first
  libris list --search orwell      # Match title, author, or category
  libris list --filter reading     # Only books being read
  libris list --sort rating        # Highest rated first`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.resolve(); err != nil {
				return err
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			store.SetSearch(search)
			if err := store.SetFilter(library.Filter(filter)); err != nil {
				return err
			}
			if err := store.SetSortBy(library.SortKey(sortBy)); err != nil {
				return err
			}

			books := store.Visible()
			if len(books) == 0 {
				fmt.Println("No books found.")
				fmt.Println("Use 'libris add <title> --author <author>' to add one.")
				return nil
			}

			if out.isJSON() {
				return printJSON(books)
			}

			table := newTable("ID", "Title", "Author", "Status", "Rating", "Likes")
			for _, b := range books {
				table.addRow(
					shortID(b.ID),
					truncate(b.Title, 40),
					truncate(b.Author, 25),
					string(b.Status),
					fmt.Sprintf("%.1f", b.Rating),
					b.Likes,
				)
			}
			table.render()

			fmt.Printf("\nTotal: %d book(s)\n", len(books))
			return nil
		},
	}

	out.addFlags(cmd)
	cmd.Flags().StringVarP(&search, "search", "q", "", "Search title, author, and category")
	cmd.Flags().StringVarP(&filter, "filter", "f", string(library.FilterAll), "Filter by status (all, to-read, reading, read)")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(library.SortDateAdded), "Sort key (title, author, rating, dateAdded)")

	return cmd
}
