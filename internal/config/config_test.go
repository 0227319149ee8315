package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "pdf-export-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 200, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Empty(t, cfg.Style.PrimaryColor)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
		"server": {"port": 9090},
		"rate_limit": {"enabled": false},
		"style": {"primary_color": "#004488", "logo_path": "assets/logo.png"},
		"cors": {"allowed_origins": ["http://localhost:5173"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.RateLimit.Enabled)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 200, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "#004488", cfg.Style.PrimaryColor)
	assert.Equal(t, "assets/logo.png", cfg.Style.LogoPath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigInvalidFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "3001")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RATE_LIMIT_RPM", "50")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://portal.utn.edu.ar")
	t.Setenv("PDF_PRIMARY_COLOR", "#1F3864")
	t.Setenv("PDF_LOGO_PATH", "/srv/assets/logo.png")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"http://localhost:5173", "https://portal.utn.edu.ar"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "#1F3864", cfg.Style.PrimaryColor)
	assert.Equal(t, "/srv/assets/logo.png", cfg.Style.LogoPath)
}

func TestLoadConfigIgnoresInvalidNumericEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("RATE_LIMIT_RPM", "fast")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 200, cfg.RateLimit.RequestsPerMinute)
}

func TestGetServerAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestSplitOriginsTrimsAndDropsEmpty(t *testing.T) {
	origins := splitOrigins(" http://a.example.com , http://b.example.com ,, ")
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, origins)
}
