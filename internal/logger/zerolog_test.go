package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Editor", "file saved", map[string]interface{}{"path": "notes.txt"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Editor", entry["component"])
	assert.Equal(t, "file saved", entry["message"])
	assert.Equal(t, "notes.txt", entry["path"])
}

func TestZerologAdapter_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Storage", errors.New("disk full"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
}

func TestZerologAdapter_FieldHandling(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Debug("Editor", "font applied", map[string]interface{}{
		"size":      12,
		"bold":      true,
		"family":    "Courier New",
		"message":   "shadowed",
		"component": "shadowed",
		"missing":   nil,
	})

	line := buf.String()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Editor", entry["component"])
	assert.Equal(t, "font applied", entry["message"])
	assert.Equal(t, "shadowed", entry["field_message"])
	assert.Equal(t, "shadowed", entry["field_component"])
	assert.Equal(t, float64(12), entry["size"])
	assert.Equal(t, true, entry["bold"])
	assert.NotContains(t, entry, "missing")

	bold := strings.Index(line, `"bold"`)
	family := strings.Index(line, `"family"`)
	size := strings.Index(line, `"size"`)
	assert.True(t, bold < family && family < size, line)
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Editor", "hidden", nil)
	log.Info("Editor", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Warning("Editor", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"off", zerolog.Disabled, false},
		{"verbose", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
