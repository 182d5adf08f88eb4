package app

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-composer/migrations"
	"github.com/m04kA/wedding-composer/pkg/logger"
)

func TestNewMigrator(t *testing.T) {
	mg, err := NewMigrator(nil, migrations.FS, ".", logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ".", mg.dir)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		text := string(body)
		assert.True(t, strings.HasPrefix(text, "-- +goose Up"), name)
		assert.Contains(t, text, "-- +goose Down", name)
	}

	composers, err := fs.ReadFile(migrations.FS, "00002_create_composers.sql")
	require.NoError(t, err)
	// один оплаченный композер на пару дата/слот
	assert.Contains(t, string(composers), "UNIQUE INDEX")
}
