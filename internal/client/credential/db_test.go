package credential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:initdb?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES('k', x'01')`)
	require.NoError(t, err, "metadata table must exist after migrations")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:initdb2?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
}
