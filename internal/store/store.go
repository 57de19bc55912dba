package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/log"
	"github.com/footprint-tools/cmdext/internal/store/migrations"
)

// timeLayout sorts lexically in UTC.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Store wraps a SQLite database holding the dispatch history.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and runs migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	res, err := migrations.Apply(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if len(res.Applied) > 0 {
		log.Info("store: schema upgraded from %d to %d", res.From, res.To)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
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

// configureSQLite enables WAL for file databases so the console and a
// one-shot run can share the history.
func configureSQLite(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if path == ":memory:" {
		return nil
	}
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert records one dispatch.
func (s *Store) Insert(entry domain.HistoryEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO dispatch_history
		 (dispatch_id, text, path, outcome_id, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.DispatchID,
		entry.Text,
		entry.Path,
		int(entry.Outcome),
		entry.Message,
		createdAt.UTC().Format(timeLayout),
	)
	return err
}

// List returns entries matching the filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	query := `
		SELECT
			id,
			dispatch_id,
			text,
			path,
			outcome_id,
			message,
			created_at
		FROM dispatch_history
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Outcome != nil {
		clauses = append(clauses, "outcome_id = ?")
		args = append(args, int(*filter.Outcome))
	}

	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Count returns the number of recorded entries.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM dispatch_history").Scan(&n)
	return n, err
}

// Clear deletes every entry.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM dispatch_history")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e         domain.HistoryEntry
		outcomeID int
		ts        string
	)

	if err := rows.Scan(
		&e.ID,
		&e.DispatchID,
		&e.Text,
		&e.Path,
		&outcomeID,
		&e.Message,
		&ts,
	); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	e.Outcome = domain.Outcome(outcomeID)
	e.CreatedAt = t

	return e, nil
}

var _ domain.HistoryStore = (*Store)(nil)
