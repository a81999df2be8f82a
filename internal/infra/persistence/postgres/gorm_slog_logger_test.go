package postgres

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"venmito/config"
	deliverycontext "venmito/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_TraceIgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: "23505"})
	l.Trace(context.Background(), time.Now(), sqlFn, driver.ErrBadConn)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "SELECT 1", lines[1]["sql"])
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true)

	reqLogger := l.logger.With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-1", lines[0]["request_id"])
	assert.Equal(t, "GORM query", lines[0]["msg"])
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "GORM slow query", lines[0]["msg"])
}
