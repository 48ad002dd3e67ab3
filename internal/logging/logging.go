// Package logging configures the process-wide zerolog logger.
package logging

import (
    "fmt"
    "io"
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/venue-booking/internal/config"
)

// New builds the application logger and installs it as log.Logger and as
// the fallback for log.Ctx.  Outside production stderr gets the console
// writer.  When cfg.ErrorLogPath is set, entries at error level and above
// are also appended to that file as JSON lines.  The returned closer
// releases the file.
func New(cfg config.Config) (zerolog.Logger, io.Closer, error) {
    zerolog.TimeFieldFormat = time.RFC3339
    errorLogPath := cfg.ErrorLogPath

    var console io.Writer = os.Stderr
    if !cfg.IsProduction() {
        console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
    }

    writers := []io.Writer{console}
    var closer io.Closer = nopCloser{}
    if errorLogPath != "" {
        f, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
        if err != nil {
            return zerolog.Nop(), nil, fmt.Errorf("logging: open %s: %w", errorLogPath, err)
        }
        writers = append(writers, &zerolog.FilteredLevelWriter{
            Writer: zerolog.LevelWriterAdapter{Writer: f},
            Level:  zerolog.ErrorLevel,
        })
        closer = f
    }

    level := zerolog.InfoLevel
    if cfg.IsDevelopment() {
        level = zerolog.DebugLevel
    }

    logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
        Level(level).
        With().Timestamp().Str("service", "fyyur").
        Logger()

    log.Logger = logger
    zerolog.DefaultContextLogger = &log.Logger
    return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
