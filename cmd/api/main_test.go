package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntapi/internal/config"
	"huntapi/internal/testutil"
)

func TestNewApp(t *testing.T) {
	db, dialect := testutil.OpenSQLite(t)
	testutil.Seed(t, db, testutil.DefaultFixture())

	cfg := config.Default()
	cfg.APIPrefix = "/api"

	app, err := newApp(cfg, db, dialect, zerolog.Nop())
	require.NoError(t, err)

	t.Run("data route under prefix with cors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sites/names", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("metrics include pool stats", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(b), "go_sql_open_connections")
		assert.Contains(t, string(b), "http_requests_total")
	})

	t.Run("health", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huntil.db")
	t.Setenv("HUNTIL_DB_DRIVER", "sqlite")
	t.Setenv("HUNTIL_DB_PATH", path)
	t.Setenv("HUNTIL_LOG_LEVEL", "error")

	cmd := rootCommand()
	cmd.SetArgs([]string{"migrate"})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, path)
}
