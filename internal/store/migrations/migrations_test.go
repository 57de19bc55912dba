package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdext/internal/domain"
	"github.com/footprint-tools/cmdext/internal/store/migrations"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSteps_NumberedWithoutGaps(t *testing.T) {
	steps, err := migrations.Steps()
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	for i, s := range steps {
		assert.Equal(t, i+1, s.Version)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.SQL)
	}
}

func TestApply_FreshThenIdempotent(t *testing.T) {
	db := openDB(t)
	steps, err := migrations.Steps()
	require.NoError(t, err)

	first, err := migrations.Apply(db)
	require.NoError(t, err)
	assert.Equal(t, 0, first.From)
	assert.Equal(t, len(steps), first.To)
	assert.Len(t, first.Applied, len(steps))

	second, err := migrations.Apply(db)
	require.NoError(t, err)
	assert.Equal(t, len(steps), second.From)
	assert.Equal(t, len(steps), second.To)
	assert.Empty(t, second.Applied)

	v, err := migrations.Version(db)
	require.NoError(t, err)
	assert.Equal(t, len(steps), v)
}

func TestApply_OutcomesMatchDomain(t *testing.T) {
	db := openDB(t)
	_, err := migrations.Apply(db)
	require.NoError(t, err)

	// A renamed row is restored on the next run.
	_, err = db.Exec("UPDATE dispatch_outcome SET name = 'gone' WHERE id = ?", int(domain.OutcomeFailed))
	require.NoError(t, err)
	_, err = migrations.Apply(db)
	require.NoError(t, err)

	rows, err := db.Query("SELECT id, name FROM dispatch_outcome ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		var (
			id   int
			name string
		)
		require.NoError(t, rows.Scan(&id, &name))
		assert.Equal(t, domain.Outcome(id).String(), name)
		got = append(got, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"ok", "not_found", "disabled", "failed"}, got)
}

func TestApply_HistoryTablesCreated(t *testing.T) {
	db := openDB(t)
	_, err := migrations.Apply(db)
	require.NoError(t, err)

	for _, table := range []string{"schema_version", "dispatch_outcome", "dispatch_history"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}

	var index string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_dispatch_history_created_at'").Scan(&index)
	assert.NoError(t, err)
}

func TestApply_RejectsNewerSchema(t *testing.T) {
	db := openDB(t)
	_, err := migrations.Apply(db)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO schema_version (version, name) VALUES (999, 'future')")
	require.NoError(t, err)

	_, err = migrations.Apply(db)
	assert.ErrorContains(t, err, "newer than this build")
}
