package store

import (
	"context"
	"fmt"

	"github.com/rcliao/workout-tracker/internal/model"
)

// ExportAll returns all live packages in stored order, optionally filtered by type.
func (s *SQLiteStore) ExportAll(ctx context.Context, typ string) ([]model.Package, error) {
	return s.query(ctx, typ, -1)
}

// Import stores packages from a feed in order. IDs in the input are ignored.
func (s *SQLiteStore) Import(ctx context.Context, packages []model.Package) (int, error) {
	imported := 0
	for i, p := range packages {
		_, err := s.Put(ctx, PutParams{
			Type: p.Type,
			Data: p.Data,
			Note: p.Note,
		})
		if err != nil {
			return imported, fmt.Errorf("package %d: %w", i, err)
		}
		imported++
	}
	return imported, nil
}
