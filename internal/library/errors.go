// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports that no book carries the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book not found: %s", e.ID)
}

// LoadError reports a failed initial fetch of the collection.
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string { return e.Message }

// ImportError reports rejected import input.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string { return "import: " + e.Reason }

// ValidationErrors maps field names to human-readable problems. A nil
// map means the value passed validation.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range v.Fields() {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the offending field names in sorted order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
