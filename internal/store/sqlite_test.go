package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rcliao/workout-tracker/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.Put(ctx, PutParams{Type: "RUN", Data: []float64{15000, 1, 75}, Note: "park loop"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if p.ID == "" {
		t.Error("expected non-empty ID")
	}

	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != "RUN" {
		t.Errorf("expected type RUN, got %q", got.Type)
	}
	if !reflect.DeepEqual(got.Data, []float64{15000, 1, 75}) {
		t.Errorf("unexpected data %v", got.Data)
	}
	if got.Note != "park loop" {
		t.Errorf("expected note 'park loop', got %q", got.Note)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestPutRequiresType(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Put(context.Background(), PutParams{Data: []float64{1}}); err == nil {
		t.Error("expected error for empty type")
	}
}

func TestPutKeepsUnknownType(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.Put(ctx, PutParams{Type: "ERR", Data: []float64{1, 2, 3, 4}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Get(ctx, p.ID); err != nil {
		t.Errorf("get: %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	types := []string{"SWM", "RUN", "WLK", "RUN", "SWM"}
	for _, typ := range types {
		if _, err := s.Put(ctx, PutParams{Type: typ, Data: []float64{1}}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	all, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(types) {
		t.Fatalf("expected %d, got %d", len(types), len(all))
	}
	for i, p := range all {
		if p.Type != types[i] {
			t.Errorf("position %d: expected %s, got %s", i, types[i], p.Type)
		}
	}

	runs, _ := s.List(ctx, ListParams{Type: "RUN"})
	if len(runs) != 2 {
		t.Errorf("expected 2 RUN packages, got %d", len(runs))
	}

	limited, _ := s.List(ctx, ListParams{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected 2 with limit, got %d", len(limited))
	}
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, _ := s.Put(ctx, PutParams{Type: "RUN", Data: []float64{15000, 1, 75}})
	n, err := s.Rm(ctx, RmParams{ID: p.ID})
	if err != nil {
		t.Fatalf("rm: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}

	_, err = s.Get(ctx, p.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after soft delete, got %v", err)
	}

	st, _ := s.Stats(ctx, "")
	if st.TotalPackages != 1 || st.ActivePackages != 0 {
		t.Errorf("expected 1 total / 0 active, got %d / %d", st.TotalPackages, st.ActivePackages)
	}
}

func TestHardDeleteByType(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Type: "RUN", Data: []float64{1, 1, 1}})
	s.Put(ctx, PutParams{Type: "RUN", Data: []float64{2, 1, 1}})
	s.Put(ctx, PutParams{Type: "WLK", Data: []float64{3, 1, 1, 170}})

	n, err := s.Rm(ctx, RmParams{Type: "RUN", Hard: true})
	if err != nil {
		t.Fatalf("rm hard: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}

	st, _ := s.Stats(ctx, "")
	if st.TotalPackages != 1 {
		t.Errorf("expected 1 package left, got %d", st.TotalPackages)
	}
}

func TestRmMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Rm(context.Background(), RmParams{ID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Rm(context.Background(), RmParams{}); err == nil {
		t.Error("expected error without id or type")
	}
}

func TestRmRejectsIDWithType(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	p, err := s.Put(ctx, PutParams{Type: "RUN", Data: []float64{15000, 1, 75}})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, err := s.Rm(ctx, RmParams{ID: p.ID, Type: "WLK"}); err == nil {
		t.Fatal("expected error when both id and type are set")
	}
	if _, err := s.Get(ctx, p.ID); err != nil {
		t.Errorf("package should survive a rejected rm: %v", err)
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.Put(ctx, PutParams{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}})
	src.Put(ctx, PutParams{Type: "RUN", Data: []float64{15000, 1, 75}, Note: "tempo"})

	exported, err := src.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 2 {
		t.Fatalf("expected 2 exported, got %d", len(exported))
	}

	dst := newTestStore(t)
	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}

	got, _ := dst.ExportAll(ctx, "")
	for i := range got {
		if got[i].Type != exported[i].Type || !reflect.DeepEqual(got[i].Data, exported[i].Data) {
			t.Errorf("package %d differs after import: %+v vs %+v", i, got[i], exported[i])
		}
		if got[i].ID == exported[i].ID {
			t.Errorf("package %d: expected a fresh ID", i)
		}
	}
}

func TestImportStopsOnInvalidPackage(t *testing.T) {
	s := newTestStore(t)
	n, err := s.Import(context.Background(), []model.Package{
		{Type: "RUN", Data: []float64{1, 1, 1}},
		{Type: "", Data: []float64{1}},
	})
	if err == nil {
		t.Fatal("expected error for package without type")
	}
	if n != 1 {
		t.Errorf("expected 1 imported before failure, got %d", n)
	}
}

func TestStatsByType(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	s.Put(ctx, PutParams{Type: "RUN", Data: []float64{1, 1, 1}})
	s.Put(ctx, PutParams{Type: "RUN", Data: []float64{2, 1, 1}})
	s.Put(ctx, PutParams{Type: "SWM", Data: []float64{1, 1, 1, 25, 4}})

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.DBPath != dbPath {
		t.Errorf("expected db path %q, got %q", dbPath, st.DBPath)
	}
	if len(st.Types) != 2 || st.Types[0].Type != "RUN" || st.Types[0].Count != 2 {
		t.Errorf("unexpected type stats: %+v", st.Types)
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestStatsOnClosedStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := s.Stats(context.Background(), ""); err == nil {
		t.Error("expected error from stats on a closed store")
	}
}
