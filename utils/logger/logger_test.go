package logger_test

import (
	"testing"

	"github.com/muhammadheryan/warehouse/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestComponent(t *testing.T) {
	// declared before the logger is replaced, like a package-level var
	scoped := logger.Component("storage")

	core, logs := observer.New(zapcore.DebugLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(zap.NewNop()) })

	scoped.Error("[PlaceProduct] error txRepo.BeginTx", zap.String("error", "connection reset"))
	scoped.Info("[PlaceProduct] product placed")
	logger.Warn("unscoped")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "storage", entries[0].ContextMap()["component"])
	assert.Equal(t, "connection reset", entries[0].ContextMap()["error"])
	assert.Equal(t, "storage", entries[1].ContextMap()["component"])
	assert.NotContains(t, entries[2].ContextMap(), "component")
}

func TestInit(t *testing.T) {
	require.NoError(t, logger.Init("development", "api"))
	assert.NotNil(t, logger.Get())
	require.NoError(t, logger.Init("production", "consumer"))
	assert.NotNil(t, logger.Get())
	logger.Replace(zap.NewNop())
}
