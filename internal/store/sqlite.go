package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/workout-tracker/internal/model"
)

const defaultListLimit = 20

// SQLiteStore stores sensor packages in SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns a ULID that sorts after every ID issued before it by this
// store, so ordering by id replays packages in insertion order.
func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS packages (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		data        TEXT NOT NULL,
		note        TEXT,
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_packages_type ON packages(type);
	CREATE INDEX IF NOT EXISTS idx_packages_deleted ON packages(deleted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Package, error) {
	if strings.TrimSpace(p.Type) == "" {
		return nil, fmt.Errorf("package type is required")
	}

	now := time.Now().UTC()
	id := s.newID(now)

	data := p.Data
	if data == nil {
		data = []float64{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}

	var notePtr *string
	if p.Note != "" {
		notePtr = &p.Note
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO packages (id, type, data, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, p.Type, string(dataJSON), notePtr, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert package: %w", err)
	}

	return &model.Package{
		ID:        id,
		Type:      p.Type,
		Data:      data,
		Note:      p.Note,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Package, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, type, data, note, created_at, deleted_at
		 FROM packages WHERE id = ? AND deleted_at IS NULL`, id)
	p, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Package, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.query(ctx, p.Type, limit)
}

// query returns live packages in id order. A negative limit means no limit.
func (s *SQLiteStore) query(ctx context.Context, typ string, limit int) ([]model.Package, error) {
	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if typ != "" {
		where = append(where, "type = ?")
		args = append(args, typ)
	}

	query := `SELECT id, type, data, note, created_at, deleted_at
	          FROM packages WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []model.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) (int, error) {
	var where string
	var arg string
	switch {
	case p.ID != "" && p.Type != "":
		return 0, fmt.Errorf("rm: id and type are mutually exclusive")
	case p.ID != "":
		where, arg = "id = ?", p.ID
	case p.Type != "":
		where, arg = "type = ?", p.Type
	default:
		return 0, fmt.Errorf("rm: id or type is required")
	}

	var res sql.Result
	var err error
	if p.Hard {
		res, err = s.db.ExecContext(ctx, `DELETE FROM packages WHERE `+where, arg)
	} else {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		res, err = s.db.ExecContext(ctx,
			`UPDATE packages SET deleted_at = ? WHERE deleted_at IS NULL AND `+where, now, arg)
	}
	if err != nil {
		return 0, err
	}

	n, _ := res.RowsAffected()
	if n == 0 && p.ID != "" {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return int(n), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row scanner) (model.Package, error) {
	var p model.Package
	var dataJSON, createdAt string
	var note, deletedAt sql.NullString

	if err := row.Scan(&p.ID, &p.Type, &dataJSON, &note, &createdAt, &deletedAt); err != nil {
		return p, err
	}

	if err := json.Unmarshal([]byte(dataJSON), &p.Data); err != nil {
		return p, fmt.Errorf("decode data of %s: %w", p.ID, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if note.Valid {
		p.Note = note.String
	}
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339Nano, deletedAt.String)
		p.DeletedAt = &t
	}

	return p, nil
}
