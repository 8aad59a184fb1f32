package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

type postedRecord struct {
	tag  string
	data port.Fields
}

type fakePoster struct {
	records []postedRecord
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.records = append(f.records, postedRecord{tag: tag, data: message.(port.Fields)})
	return nil
}

func TestSlogAdapter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"service_name": "realestate-front"}).
		Error("Request failed", errors.New("boom"), port.Fields{"status": 502, "cause": errors.New("upstream")})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "Request failed", line["msg"])
	assert.Equal(t, "realestate-front", line["service_name"])
	assert.Equal(t, "upstream", line["cause"])
	assert.Equal(t, "boom", line["err"])
	assert.EqualValues(t, 502, line["status"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("visible", port.Fields{"k": "v"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "k=v")
}

func TestFluentAdapter_PostsLevelTaggedRecords(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)
	adapter.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

	logger := adapter.WithFields(port.Fields{"trace_id": "t-1"})
	logger.Debug("skipped", nil)
	logger.Info("Request finished", port.Fields{"status": 200})
	logger.Error("Submit failed", errors.New("boom"), port.Fields{"cause": errors.New("io")})

	require.Len(t, poster.records, 2)

	info := poster.records[0]
	assert.Equal(t, "info", info.tag)
	assert.Equal(t, "Request finished", info.data["message"])
	assert.Equal(t, "t-1", info.data["trace_id"])
	assert.Equal(t, 200, info.data["status"])
	assert.Equal(t, "2024-03-09T12:00:00Z", info.data["timestamp"])

	failure := poster.records[1]
	assert.Equal(t, "error", failure.tag)
	assert.Equal(t, "boom", failure.data["error"])
	assert.Equal(t, "io", failure.data["cause"])
}

func TestFluentAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultilogger(t *testing.T) {
	_, err := NewMultiloggerAdapter(nil)
	require.Error(t, err)

	var buf bytes.Buffer
	single := NewSlogAdapter(SlogConfig{Writer: &buf})
	got, err := NewMultiloggerAdapter(single, nil)
	require.NoError(t, err)
	assert.Same(t, single, got)

	poster := &fakePoster{}
	fluent, err := NewFluentLoggerAdapter(poster, slog.LevelDebug)
	require.NoError(t, err)
	multi, err := NewMultiloggerAdapter(single, fluent)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "test"}).Warn("fan out", nil)

	assert.True(t, strings.Contains(buf.String(), "fan out"))
	require.Len(t, poster.records, 1)
	assert.Equal(t, "test", poster.records[0].data["component"])
}
