// Package model defines the sensor package data types.
package model

import "time"

// Package is one raw sensor reading: a workout type code plus its positional
// fields.
type Package struct {
	ID        string     `json:"id,omitempty"`
	Type      string     `json:"type"`
	Data      []float64  `json:"data"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
