package postgres

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPoolWait(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prev := sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}

	t.Run("no new waits", func(t *testing.T) {
		buf.Reset()
		next := logPoolWait(t.Context(), logger, prev, prev)
		assert.Equal(t, prev, next)
		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		buf.Reset()
		cur := sql.DBStats{WaitCount: 4, WaitDuration: 20 * time.Millisecond}
		next := logPoolWait(t.Context(), logger, prev, cur)
		assert.Equal(t, cur, next)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "waited=2")
		assert.Contains(t, buf.String(), "avg_wait=5ms")
	})

	t.Run("long waits are warnings", func(t *testing.T) {
		buf.Reset()
		cur := sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond}
		logPoolWait(t.Context(), logger, prev, cur)
		assert.Contains(t, buf.String(), "level=WARN")
	})
}
