package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Writer: &buf}))
	Info("hidden")
	assert.Zero(t, buf.Len())
}

func TestInit_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelWarn, Writer: &buf}))
	defer Init(Options{})

	Info("dropped")
	Warn("kept", "file", "a.adt")
	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "file=a.adt")
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Format: "json", Level: slog.LevelDebug, Writer: &buf}))
	defer Init(Options{})

	Debug("parsed", "bytes", 42)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "parsed", rec["msg"])
	assert.InDelta(t, 42, rec["bytes"], 0)
}

func TestInit_UnknownFormat(t *testing.T) {
	err := Init(Options{Enabled: true, Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adtctl.log")
	require.NoError(t, Init(Options{Enabled: true, File: path}))
	Error("boom")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=boom")
}

func TestInit_DirCreatesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Options{Enabled: true, Dir: dir}))
	Info("hello")
	Close()

	name := logPrefix + time.Now().Format(time.DateOnly) + logSuffix
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	files := map[string]bool{
		"adtctl-2024-01-01.log": false, // older than 30 days
		"adtctl-2024-02-20.log": true,
		"adtctl-garbage.log":    true,
		"other-2020-01-01.log":  true,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	for name, keep := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.Equal(t, keep, err == nil, name)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
