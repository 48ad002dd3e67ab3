package logging

import (
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/venue-booking/internal/config"
)

func TestErrorsGoToErrorLog(t *testing.T) {
    path := filepath.Join(t.TempDir(), "error.log")
    logger, closer, err := New(config.Config{Env: "production", ErrorLogPath: path})
    require.NoError(t, err)

    logger.Info().Msg("routine")
    logger.Warn().Msg("odd")
    logger.Error().Str("path", "/venues/1").Msg("boom")
    require.NoError(t, closer.Close())

    data, err := os.ReadFile(path)
    require.NoError(t, err)
    lines := strings.Split(strings.TrimSpace(string(data)), "\n")
    require.Len(t, lines, 1)
    assert.Contains(t, lines[0], `"level":"error"`)
    assert.Contains(t, lines[0], `"message":"boom"`)
    assert.Contains(t, lines[0], `"path":"/venues/1"`)
}

func TestNoErrorLog(t *testing.T) {
    _, closer, err := New(config.Config{Env: "dev"})
    require.NoError(t, err)
    assert.NoError(t, closer.Close())
}

func TestUnwritableErrorLog(t *testing.T) {
    _, _, err := New(config.Config{Env: "dev", ErrorLogPath: filepath.Join(t.TempDir(), "missing", "error.log")})
    assert.Error(t, err)
}

func TestLevelFollowsEnv(t *testing.T) {
    logger, closer, err := New(config.Config{Env: "dev"})
    require.NoError(t, err)
    defer closer.Close()
    assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

    logger, closer2, err := New(config.Config{Env: "prod"})
    require.NoError(t, err)
    defer closer2.Close()
    assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
