package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func selectClock() (string, int64) {
	return "SELECT opening_time FROM companies WHERE id = 1", 1
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("query logs at debug with sql and rows", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Info)

		gl.Trace(ctx, time.Now(), selectClock, nil)

		entries := logs.FilterMessage("query").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "SELECT opening_time FROM companies WHERE id = 1", fields["sql"])
		assert.EqualValues(t, 1, fields["rows"])
	})

	t.Run("request id is carried from the context", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Info)

		gl.Trace(WithRequestID(ctx, "req-9"), time.Now(), selectClock, nil)

		entries := logs.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
	})

	t.Run("failed query logs at error", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), selectClock, assert.AnError)

		entries := logs.FilterMessage("query failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})

	t.Run("record not found stays silent", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), selectClock, gormlogger.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Warn)

		gl.Trace(ctx, time.Now().Add(-time.Second), selectClock, nil)

		entries := logs.FilterMessage("slow query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})

	t.Run("silent level suppresses everything", func(t *testing.T) {
		gl, logs := observedGormLogger(gormlogger.Silent)

		gl.Trace(ctx, time.Now(), selectClock, assert.AnError)

		assert.Zero(t, logs.Len())
	})
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Silent)

	raised := gl.LogMode(gormlogger.Info)
	raised.Info(context.Background(), "migrations applied: %d", 3)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "migrations applied: 3", logs.All()[0].Message)

	// the original keeps its level
	gl.Info(context.Background(), "ignored")
	assert.Equal(t, 1, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
		"debug":  gormlogger.Info,
		"other":  gormlogger.Warn,
	}
	for input, want := range cases {
		assert.Equal(t, want, MapGormLogLevel(input), input)
	}
}
