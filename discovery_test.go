// FILE: lixenwraith/dconf/discovery_test.go
package dconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileDiscovery tests options file lookup order
func TestFileDiscovery(t *testing.T) {
	isolated := func(name string) FileDiscoveryOptions {
		opts := DefaultDiscoveryOptions(name)
		opts.UseXDG = false
		opts.UseCurrentDir = false
		return opts
	}

	t.Run("Defaults", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("myapp")
		assert.Equal(t, "myapp", opts.Name)
		assert.Equal(t, "MYAPP_CONFIG", opts.EnvVar)
		assert.Equal(t, "--config", opts.CLIFlag)
		assert.Equal(t, []string{".toml", ".yaml", ".yml", ".json"}, opts.Extensions)
	})

	t.Run("CLIFlag", func(t *testing.T) {
		opts := isolated("myapp")
		assert.Equal(t, "/a.toml", discoverFile(opts, []string{"-v", "--config", "/a.toml"}))
		assert.Equal(t, "/b.yaml", discoverFile(opts, []string{"--config=/b.yaml"}))
		assert.Empty(t, discoverFile(opts, []string{"--config"}))

		opts.CLIFlag = ""
		assert.Empty(t, discoverFile(opts, []string{"--config", "/a.toml"}))
	})

	t.Run("EnvVarAfterFlag", func(t *testing.T) {
		t.Setenv("MYAPP_CONFIG", "/from/env.toml")
		opts := isolated("myapp")
		assert.Equal(t, "/from/env.toml", discoverFile(opts, nil))
		assert.Equal(t, "/flag.toml", discoverFile(opts, []string{"--config", "/flag.toml"}))
	})

	t.Run("SearchPathsByExtension", func(t *testing.T) {
		first, second := t.TempDir(), t.TempDir()
		writeFile(t, second, "myapp.yaml", "tool: x\n")
		writeFile(t, second, "myapp.toml", "tool = \"x\"\n")

		opts := isolated("myapp")
		opts.Paths = []string{first, second}
		assert.Equal(t, filepath.Join(second, "myapp.toml"), discoverFile(opts, nil))
	})

	t.Run("SkipsDirectories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "myapp.toml"), 0755))
		writeFile(t, dir, "myapp.json", "{}")

		opts := isolated("myapp")
		opts.Paths = []string{dir}
		assert.Equal(t, filepath.Join(dir, "myapp.json"), discoverFile(opts, nil))
	})

	t.Run("XDGConfigHome", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(home, "myapp"), 0755))
		writeFile(t, filepath.Join(home, "myapp"), "myapp.toml", "tool = \"xdg\"\n")
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("XDG_CONFIG_DIRS", "")

		opts := isolated("myapp")
		opts.UseXDG = true
		assert.Equal(t, filepath.Join(home, "myapp", "myapp.toml"), discoverFile(opts, nil))
	})

	t.Run("XDGPaths", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/u")
		t.Setenv("XDG_CONFIG_DIRS", "/opt/a"+string(filepath.ListSeparator)+"/opt/b")
		assert.Equal(t, []string{"/home/u/.config/x", "/opt/a/x", "/opt/b/x"}, xdgConfigDirs("x"))

		t.Setenv("XDG_CONFIG_DIRS", "")
		assert.Equal(t, []string{"/home/u/.config/x", "/etc/xdg/x", "/etc/x"}, xdgConfigDirs("x"))
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Empty(t, discoverFile(isolated("dconf-test-nothing"), nil))
	})

	t.Run("BuilderIntegration", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "myapp.toml", "tool = \"discovered\"\n")

		c, err := NewBuilder().
			WithArgs([]string{"--config", path}).
			WithFileDiscovery(isolated("myapp")).
			WithRunner(newFakeDconf()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "discovered", c.Tool())
	})
}
