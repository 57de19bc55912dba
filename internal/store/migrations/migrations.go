// Package migrations creates and upgrades the dispatch history schema.
//
// Schema steps live in sql/NNN_name.sql, numbered from 1 without gaps.
// Apply runs every pending step and then rewrites dispatch_outcome from
// domain.Outcomes inside the same transaction, so adding an outcome needs no
// new step.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdext/internal/domain"
)

//go:embed sql/*.sql
var scripts embed.FS

// Step is one numbered schema change.
type Step struct {
	Version int
	Name    string
	SQL     string
}

// Result reports what Apply did.
type Result struct {
	From    int
	To      int
	Applied []Step
}

const versionTable = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Steps returns the embedded steps in version order.
func Steps() ([]Step, error) {
	// fs.Glob returns names in lexical order; versions are zero padded.
	names, err := fs.Glob(scripts, "sql/*.sql")
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(names))
	for i, name := range names {
		version, label, err := parseName(path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		if version != i+1 {
			return nil, fmt.Errorf("migration %s: expected version %d", name, i+1)
		}

		body, err := scripts.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}

		steps = append(steps, Step{Version: version, Name: label, SQL: string(body)})
	}
	return steps, nil
}

func parseName(base string) (int, string, error) {
	num, label, ok := strings.Cut(strings.TrimSuffix(base, ".sql"), "_")
	if !ok || label == "" {
		return 0, "", fmt.Errorf("want NNN_name.sql")
	}

	version, err := strconv.Atoi(num)
	if err != nil || version < 1 {
		return 0, "", fmt.Errorf("bad version %q", num)
	}
	return version, label, nil
}

// Version returns the schema version of db, 0 for an empty database.
func Version(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("create schema_version: %w", err)
	}

	var v sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(v.Int64), nil
}

// Apply brings db up to the latest schema. Steps and the outcome table are
// written in one transaction; on error nothing is changed.
func Apply(db *sql.DB) (Result, error) {
	steps, err := Steps()
	if err != nil {
		return Result{}, err
	}

	current, err := Version(db)
	if err != nil {
		return Result{}, err
	}
	if current > len(steps) {
		return Result{}, fmt.Errorf("schema version %d is newer than this build (%d)", current, len(steps))
	}

	res := Result{From: current, To: current}

	tx, err := db.Begin()
	if err != nil {
		return Result{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps[current:] {
		if _, err := tx.Exec(step.SQL); err != nil {
			return Result{}, fmt.Errorf("migration %03d_%s: %w", step.Version, step.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, name) VALUES (?, ?)", step.Version, step.Name); err != nil {
			return Result{}, fmt.Errorf("record migration %d: %w", step.Version, err)
		}
		res.Applied = append(res.Applied, step)
		res.To = step.Version
	}

	if err := syncOutcomes(tx); err != nil {
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

func syncOutcomes(tx *sql.Tx) error {
	for _, o := range domain.Outcomes {
		_, err := tx.Exec(
			`INSERT INTO dispatch_outcome (id, name) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			int(o), o.String(),
		)
		if err != nil {
			return fmt.Errorf("sync outcome %s: %w", o, err)
		}
	}
	return nil
}
