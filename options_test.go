// FILE: lixenwraith/dconf/options_test.go
package dconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadOptions tests option files in every supported format
func TestLoadOptions(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"TOML", "opts.toml", "tool = \"dconf-shim\"\ntimeout = \"2s\"\nlog_level = \"debug\"\n"},
		{"YAML", "opts.yaml", "tool: dconf-shim\ntimeout: 2s\nlog_level: debug\n"},
		{"JSON", "opts.json", `{"tool": "dconf-shim", "timeout": "2s", "log_level": "debug"}`},
		{"JSONC", "opts.jsonc", "{\n  // shim for tests\n  \"tool\": \"dconf-shim\",\n  \"timeout\": \"2s\",\n  \"log_level\": \"debug\",\n}\n"},
		{"SniffedJSON", "opts", `{"tool": "dconf-shim", "timeout": "2s", "log_level": "debug"}`},
		{"SniffedTOML", "opts.conf", "tool = \"dconf-shim\"\ntimeout = \"2s\"\nlog_level = \"debug\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.file, tt.content)
			opts, err := LoadOptions(path)
			require.NoError(t, err)
			assert.Equal(t, Options{Tool: "dconf-shim", Timeout: 2 * time.Second, LogLevel: "debug"}, opts)
		})
	}

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeFile(t, tmpDir, "partial.toml", "timeout = \"500ms\"\n")
		opts, err := LoadOptions(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultTool, opts.Tool)
		assert.Empty(t, opts.LogLevel)
		assert.Equal(t, 500*time.Millisecond, opts.Timeout)
	})

	t.Run("Missing", func(t *testing.T) {
		opts, err := LoadOptions(filepath.Join(tmpDir, "absent.toml"))
		assert.ErrorIs(t, err, ErrOptionsNotFound)
		assert.Equal(t, DefaultOptions(), opts)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, tmpDir, "broken.toml", "tool = [unterminated")
		_, err := LoadOptions(path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrOptionsNotFound)
		assert.Contains(t, err.Error(), "invalid TOML")
	})

	t.Run("BadDuration", func(t *testing.T) {
		path := writeFile(t, tmpDir, "baddur.yaml", "timeout: soon\n")
		_, err := LoadOptions(path)
		assert.Error(t, err)
	})
}

// TestOptionsValidate tests option validation rules
func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Tool: "  "}.Validate())
	assert.Error(t, Options{Tool: "dconf", Timeout: -time.Second}.Validate())
}

// TestEnvOptions tests prefixed environment overrides
func TestEnvOptions(t *testing.T) {
	t.Setenv("DCONF_TOOL", "env-tool")
	t.Setenv("DCONF_TIMEOUT", "3s")
	t.Setenv("APP_LOG_LEVEL", "error")

	opts := DefaultOptions()
	require.NoError(t, opts.loadEnv(defaultEnvTransform(DefaultEnvPrefix)))
	assert.Equal(t, "env-tool", opts.Tool)
	assert.Equal(t, 3*time.Second, opts.Timeout)
	assert.Empty(t, opts.LogLevel)

	require.NoError(t, opts.loadEnv(defaultEnvTransform("APP_")))
	assert.Equal(t, "error", opts.LogLevel)

	assert.Equal(t, "LOG_LEVEL", defaultEnvTransform("")("log_level"))
}

// TestDetectFormat tests extension and content based format detection
func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "toml", detectFileFormat("a.TOML"))
	assert.Equal(t, "toml", detectFileFormat("a.tml"))
	assert.Equal(t, "yaml", detectFileFormat("a.yml"))
	assert.Equal(t, "json", detectFileFormat("/x/a.json"))
	assert.Equal(t, "json", detectFileFormat("a.jsonc"))
	assert.Empty(t, detectFileFormat("a.ini"))

	assert.Equal(t, "json", detectFormatFromContent([]byte(`{"a": 1}`)))
	assert.Equal(t, "toml", detectFormatFromContent([]byte("a = 1")))
	assert.Equal(t, "yaml", detectFormatFromContent([]byte("a: 1\nb:\n  c: 2\n")))
}
