package repository

import (
	"path/filepath"
	"testing"

	"github.com/alp-turan/sugarbyte/internal/config"
	"github.com/alp-turan/sugarbyte/internal/database"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(config.DBConfig{
		Path: filepath.Join(t.TempDir(), "sugarbyte_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
