package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "golnavaz_test")
	t.Setenv("CORS_ORIGINS", "https://golnavaz.af, http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "golnavaz_test", cfg.MongoDB.Database)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "/api", cfg.Server.APIPrefix)
	require.Equal(t, []string{"https://golnavaz.af", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.MinIO.Enabled())
}

func TestLoadConfig_TeacherStyleAliases(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("MONGODB_DATABASE", "shop")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://mongo:27017", cfg.MongoDB.URI)
	require.Equal(t, "shop", cfg.MongoDB.Database)
}

func TestLoadConfig_MissingConnection(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("DB_NAME", "x")

	_, err := LoadConfig()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingEnv))
}

func TestLoadConfig_MissingDatabase(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")
	t.Setenv("MONGODB_DATABASE", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingEnv)
}

func TestParseOrigins(t *testing.T) {
	require.Equal(t, []string{"*"}, ParseOrigins(""))
	require.Equal(t, []string{"*"}, ParseOrigins(" , "))
	require.Equal(t, []string{"a", "b"}, ParseOrigins("a,b"))
}
