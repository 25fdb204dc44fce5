// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/mortgage-compare/internal/comparison"
)

// FindEntry finds a lender entry by name in the entries slice.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(entries []comparison.LoanEntry, name string) *comparison.LoanEntry {
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i]
		}
	}
	return nil
}
