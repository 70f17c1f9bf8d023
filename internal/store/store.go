// Package store persists the sensor package feed in SQLite.
//
// Only raw packages are stored. Summaries are always recomputed from them.
package store

import "errors"

// ErrNotFound is returned when no live package has the requested ID.
var ErrNotFound = errors.New("package not found")

// PutParams holds parameters for storing a package.
type PutParams struct {
	Type string
	Data []float64
	Note string
}

// ListParams holds parameters for listing packages.
type ListParams struct {
	Type  string
	Limit int
}

// RmParams holds parameters for deleting packages.
// Exactly one of ID and Type must be set; Type removes every package of that type.
type RmParams struct {
	ID   string
	Type string
	Hard bool
}
