package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelInfo, Format: "json", Output: &buf})

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug line written at info level")

	log.With("session", "abc").Info("stepped", "generation", 3)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "stepped", entry["msg"])
	assert.Equal(t, "abc", entry["session"])
	assert.EqualValues(t, 3, entry["generation"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: LevelDebug, Format: "text", Output: &buf}).Debug("cleared")
	assert.Contains(t, buf.String(), "msg=cleared")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop().With("k", "v")
	log.Info("nothing")
	log.Error("still nothing")
}
