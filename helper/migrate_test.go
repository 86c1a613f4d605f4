package helper

import (
	"io/fs"
	"poolhire/config"
	"poolhire/migrations"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Username = "pool"
	cfg.DB.Postgres.Write.Password = "p@ss:word"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "poolhire"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	got := migrationURL(cfg)

	assert.True(t, strings.HasPrefix(got, "postgres://pool:p%40ss%3Aword@db:5432/test_poolhire?"))
	assert.Contains(t, got, "sslmode=disable")
	assert.Contains(t, got, "x-migrations-table=schema_migrations")
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.Postgres, "postgres/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"

		_, err := fs.Stat(migrations.Postgres, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestRunnerRejectsUnknownAction(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Host = "127.0.0.1"
	cfg.DB.Postgres.Write.Port = "1"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	err := Runner(cfg, "sideways")
	require.Error(t, err)
}
