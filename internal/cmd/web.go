// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newServeCmd(store *library.Store) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a read-only web UI",
		Long:  "Start a read-only web interface for browsing the collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			addr := fmt.Sprintf("%s:%d", bind, port)
			mux := http.NewServeMux()
			mux.HandleFunc("/", handleIndex(store))
			mux.HandleFunc("/api/books", handleAPIBooks(store))
			mux.HandleFunc("/api/stats", handleAPIStats(store))

			fmt.Printf("Starting libris web server on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop")
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8877, "Port to listen on")
	cmd.Flags().StringVarP(&bind, "bind", "b", "127.0.0.1", "Address to bind to")

	return cmd
}

// handleAPIBooks serves the visible collection. Query parameters map
// onto the view engine: q (search), filter, sort.
func handleAPIBooks(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := library.Filter(q.Get("filter"))
		if q.Get("filter") == "" {
			filter = library.FilterAll
		}
		sortBy := library.SortKey(q.Get("sort"))
		if q.Get("sort") == "" {
			sortBy = library.SortDateAdded
		}
		if !filter.Valid() || !sortBy.Valid() {
			http.Error(w, "unknown filter or sort", http.StatusBadRequest)
			return
		}

		books := library.VisibleBooks(store.Items(), q.Get("q"), filter, sortBy)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(books)
	}
}

func handleAPIStats(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(store.Stats())
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>libris</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
.stats { color: #555; margin-bottom: 1rem; }
</style>
</head>
<body>
<h1>libris</h1>
<p class="stats">{{.Stats.Total}} books, {{.Stats.Read}} read, {{.Stats.Reading}} reading, {{.Stats.ToRead}} to read. Average rating {{printf "%.1f" .Stats.AverageRating}}.</p>
<form method="get">
<input type="text" name="q" value="{{.Query}}" placeholder="Search title, author, category">
<button type="submit">Search</button>
</form>
<table>
<tr><th>Title</th><th>Author</th><th>Category</th><th>Status</th><th>Rating</th><th>Likes</th></tr>
{{range .Books}}
<tr><td>{{.Title}}</td><td>{{.Author}}</td><td>{{.Category}}</td><td>{{.Status}}</td><td>{{printf "%.1f" .Rating}}</td><td>{{.Likes}}</td></tr>
{{end}}
</table>
</body>
</html>`))

func handleIndex(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query().Get("q")
		data := struct {
			Query string
			Books []library.Book
			Stats library.Stats
		}{
			Query: q,
			Books: library.VisibleBooks(store.Items(), q, library.FilterAll, library.SortDateAdded),
			Stats: store.Stats(),
		}
		if err := indexTemplate.Execute(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
