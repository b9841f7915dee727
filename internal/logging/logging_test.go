package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestSetup_WritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	_, closer, err := Setup(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	logger := New("pixabay")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"pixabay"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestSetup_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shutter.log")
	logger, closer, err := Setup(Options{Level: "info", Path: path})
	require.NoError(t, err)

	logger.Info().Msg("written")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
