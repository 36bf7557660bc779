// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/medication-extractor/pkg/types"
)

func TestNew_ConsoleLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, closer, err := New(types.LoggingConfig{Verbose: tt.verbose}, &buf)
			require.NoError(t, err)
			require.NotNil(t, closer)
			defer closer.Close()

			logger.Debug("unknown medicine", "name", "ibuprofen")
			logger.Info("document extracted", "matched", 2)

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "unknown medicine"))
			assert.Contains(t, buf.String(), "document extracted")
		})
	}
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "medextract.log")

	var console bytes.Buffer
	logger, closer, err := New(types.LoggingConfig{LogFile: path}, &console)
	require.NoError(t, err)

	logger.With("source", "input1.data").Debug("unknown medicine", "name", "ibuprofen")
	logger.Info("document extracted", "matched", 4)
	require.NoError(t, closer.Close())

	// Console stays at Info; the file records everything.
	assert.NotContains(t, console.String(), "unknown medicine")
	assert.Contains(t, console.String(), "document extracted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "unknown medicine", first["msg"])
	assert.Equal(t, "input1.data", first["source"])
	assert.Equal(t, "ibuprofen", first["name"])
}

func TestNew_LogFileDirectoryError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := New(types.LoggingConfig{LogFile: filepath.Join(blocker, "sub", "app.log")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating log directory")
}
