// FILE: lixenwraith/dconf/discovery.go
package dconf

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions controls where the Builder looks for an options file
type FileDiscoveryOptions struct {
	Name       string   // file name without extension
	Extensions []string // tried in order within each directory
	Paths      []string // directories searched before cwd and XDG

	EnvVar  string // variable holding an explicit file path
	CLIFlag string // argument holding an explicit file path, "" to skip

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions looks for <appName>.{toml,yaml,yml,json} via --config,
// <APPNAME>_CONFIG, the working directory and the XDG config directories
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery sets the options file to the first one opts locates.
// An explicit path from the flag or variable is used even if it does not exist yet,
// so Build reports ErrOptionsNotFound for it. Finding nothing leaves the file unset.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path := discoverFile(opts, b.args); path != "" {
		b.file = path
	}
	return b
}

// discoverFile returns the options file located by opts, or ""
func discoverFile(opts FileDiscoveryOptions, args []string) string {
	if path := flagValue(args, opts.CLIFlag); path != "" {
		return path
	}
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	for _, dir := range opts.searchDirs() {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate
			}
		}
	}
	return ""
}

// flagValue extracts the value of "--flag value" or "--flag=value" from args
func flagValue(args []string, flag string) string {
	if flag == "" {
		return ""
	}
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, flag+"="); ok {
			return value
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// searchDirs lists the directories to probe, in priority order
func (opts FileDiscoveryOptions) searchDirs() []string {
	dirs := append([]string(nil), opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG {
		dirs = append(dirs, xdgConfigDirs(opts.Name)...)
	}
	return dirs
}

// xdgConfigDirs returns <dir>/<appName> for the user config home, then each system
// config dir (/etc/xdg and /etc when XDG_CONFIG_DIRS is unset)
func xdgConfigDirs(appName string) []string {
	var dirs []string

	switch home := os.Getenv("XDG_CONFIG_HOME"); {
	case home != "":
		dirs = append(dirs, filepath.Join(home, appName))
	case os.Getenv("HOME") != "":
		dirs = append(dirs, filepath.Join(os.Getenv("HOME"), ".config", appName))
	}

	system := filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS"))
	if len(system) == 0 {
		system = []string{"/etc/xdg", "/etc"}
	}
	for _, dir := range system {
		dirs = append(dirs, filepath.Join(dir, appName))
	}
	return dirs
}
