// FILE: lixenwraith/dconf/options.go
package dconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is prepended to option names when reading the environment
const DefaultEnvPrefix = "DCONF_"

// Options configures a Client
type Options struct {
	// Tool is the configuration tool binary, resolved on PATH
	Tool string `toml:"tool" yaml:"tool" json:"tool"`

	// Timeout bounds each invocation; zero means no timeout
	Timeout time.Duration `toml:"timeout" yaml:"timeout" json:"timeout"`

	// LogLevel is a zerolog level name used by the command-line tool.
	// Empty defers to LOG_LEVEL, then warn.
	LogLevel string `toml:"log_level" yaml:"log_level" json:"log_level"`
}

// optionPaths lists the option names that may be set from the environment
var optionPaths = []string{"tool", "timeout", "log_level"}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		Tool: DefaultTool,
	}
}

// Validate checks that opts can produce a working Client
func (o Options) Validate() error {
	if strings.TrimSpace(o.Tool) == "" {
		return fmt.Errorf("tool cannot be empty")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", o.Timeout)
	}
	return nil
}

// EnvTransformFunc converts an option name to an environment variable name
type EnvTransformFunc func(path string) string

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ToUpper(path)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// LoadOptions reads options from a TOML, YAML or JSON file over the defaults
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if err := opts.loadFile(path); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadFile merges values from the file at path into o
func (o *Options) loadFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrOptionsNotFound
		}
		return fmt.Errorf("failed to read options file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
	}

	fileConfig, err := parseDocument(fileData, format)
	if err != nil {
		return fmt.Errorf("failed to parse options file '%s': %w", path, err)
	}

	return o.decode(fileConfig)
}

// loadEnv merges values from prefixed environment variables into o
func (o *Options) loadEnv(transform EnvTransformFunc) error {
	found := make(map[string]any)
	for _, path := range optionPaths {
		if value, exists := os.LookupEnv(transform(path)); exists {
			found[path] = value
		}
	}

	if len(found) == 0 {
		return nil
	}
	if err := o.decode(found); err != nil {
		return fmt.Errorf("failed to apply environment options: %w", err)
	}
	return nil
}

// decode applies a loosely typed map onto o, leaving absent fields untouched
func (o *Options) decode(data map[string]any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           o,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// parseDocument parses data in the given format into a nested map.
// JSON may carry // and /* */ comments and trailing commas.
func parseDocument(data []byte, format string) (map[string]any, error) {
	doc := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.UseNumber() // Preserve integer precision
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to determine document format")
	}
	return doc, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json", ".jsonc":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
