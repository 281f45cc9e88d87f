package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpkit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, c config.LoggingConfig, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	Replace(zap.New(core), c)
	t.Cleanup(func() { Replace(nil, config.LoggingConfig{}) })
	return logs
}

func TestGet_TagsCategory(t *testing.T) {
	logs := observe(t, config.LoggingConfig{}, zapcore.DebugLevel)

	Get(CategoryJudge).Info("solved %d cases", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "solved 3 cases", entries[0].Message)
	assert.Equal(t, "judge", entries[0].ContextMap()["category"])
}

func TestGet_DisabledCategoryIsNoop(t *testing.T) {
	logs := observe(t, config.LoggingConfig{
		Categories: map[string]bool{"battery": false},
	}, zapcore.DebugLevel)

	l := Get(CategoryBattery)
	assert.False(t, l.Enabled())
	l.Error("dropped")
	l.With("k", "v").Warn("also dropped")

	Get(CategoryHistory).Warn("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestGet_Cached(t *testing.T) {
	observe(t, config.LoggingConfig{}, zapcore.InfoLevel)
	assert.Same(t, Get(CategoryBoot), Get(CategoryBoot))
}

func TestLogger_LevelFilter(t *testing.T) {
	logs := observe(t, config.LoggingConfig{}, zapcore.WarnLevel)

	l := Get(CategoryConfig)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.With("path", "x.yaml").Error("shown too")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "x.yaml", logs.All()[1].ContextMap()["path"])
}

func TestInitialize_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpkit.log")
	t.Cleanup(func() { Replace(nil, config.LoggingConfig{}) })

	err := Initialize(config.LoggingConfig{Level: "info", Format: "json", File: path}, false)
	require.NoError(t, err)

	Get(CategoryBoot).Info("hello from boot")
	Get(CategoryBoot).Debug("not at info level")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "hello from boot")
	assert.Contains(t, out, `"category":"boot"`)
	assert.False(t, strings.Contains(out, "not at info level"))
}

func TestInitialize_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpkit.log")
	t.Cleanup(func() { Replace(nil, config.LoggingConfig{}) })

	require.NoError(t, Initialize(config.LoggingConfig{Level: "error", Format: "text", File: path}, true))
	Get(CategoryJudge).Debug("debug visible")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug visible")
}

func TestInitialize_BadLevel(t *testing.T) {
	err := Initialize(config.LoggingConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}
