// Package store persists command run history in a local SQLite
// database. One row is written per dispatched command.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/store/migrations"
)

// Store wraps a SQLite database connection for run history.
// It implements the domain.RunStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new Store with the given database path.
// Runs migrations automatically.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
// Use sparingly - prefer using Store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and
// its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record adds a run to the store.
func (s *Store) Record(run domain.RunRecord) error {
	args, err := json.Marshal(run.Args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, command, args, exit_code, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Command,
		string(args),
		run.ExitCode,
		run.Duration.Milliseconds(),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// List returns runs matching the given filter, newest first.
func (s *Store) List(filter domain.RunFilter) ([]domain.RunRecord, error) {
	base := `
		SELECT
			id,
			command,
			args,
			exit_code,
			duration_ms,
			started_at
		FROM runs
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, filter.Command)
	}

	if filter.FailedOnly {
		clauses = append(clauses, "exit_code != 0")
	}

	if filter.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339Nano))
	}

	query := base
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.RunRecord

	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Prune deletes runs started before the given time and returns how many
// rows were removed.
func (s *Store) Prune(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM runs WHERE started_at < ?",
		olderThan.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanRun(rows *sql.Rows) (domain.RunRecord, error) {
	var (
		r          domain.RunRecord
		rawArgs    string
		durationMs int64
		startedAt  string
	)

	if err := rows.Scan(&r.ID, &r.Command, &rawArgs, &r.ExitCode, &durationMs, &startedAt); err != nil {
		return domain.RunRecord{}, err
	}

	if err := json.Unmarshal([]byte(rawArgs), &r.Args); err != nil {
		return domain.RunRecord{}, fmt.Errorf("decode args: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("parse started_at: %w", err)
	}

	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.StartedAt = t
	return r, nil
}

// Verify Store implements domain.RunStore.
var _ domain.RunStore = (*Store)(nil)
