// Package config loads logger options from a config file and the
// environment. Precedence: environment > file > built-in defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/EmbeddedOS/logger"
)

// EnvPrefix scopes the environment overrides, e.g. LOG_MIN_LEVEL,
// LOG_OUTPUT_FILE, LOG_BATCH_WRITE.
const EnvPrefix = "LOG_"

// fileConfig mirrors logger.Options with the severity as a name so
// config files and env vars can say "info" instead of a number.
type fileConfig struct {
	MinLevel     string `koanf:"min_level"`
	OutputFile   string `koanf:"output_file"`
	BatchWrite   int    `koanf:"batch_write"`
	RingSize     int    `koanf:"ring_size"`
	DropOnFull   bool   `koanf:"drop_on_full"`
	MaxLogRate   int    `koanf:"max_log_rate"`
	EnableCaller bool   `koanf:"enable_caller"`
	Color        bool   `koanf:"color"`
}

func defaults() fileConfig {
	return fileConfig{
		MinLevel:   "trace",
		OutputFile: logger.SinkStderr,
		BatchWrite: 256,
		RingSize:   1024,
	}
}

// Load builds logger options from the optional config file at path
// (YAML or JSON, by extension) layered under LOG_* environment
// overrides. An empty path skips the file layer.
func Load(path string) (logger.Options, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return logger.Options{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return logger.Options{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return logger.Options{}, fmt.Errorf("load environment: %w", err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return logger.Options{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return fc.toOptions()
}

// parserFor picks the file parser by extension. YAML is the default.
func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return jsonParser{}
	}
	return yaml.Parser()
}

// envTransform maps LOG_MIN_LEVEL to min_level and so on. Unprefixed
// variables never reach here; koanf filters on EnvPrefix first.
func envTransform(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

func (fc fileConfig) toOptions() (logger.Options, error) {
	lvl, err := logger.ParseLevel(fc.MinLevel)
	if err != nil {
		return logger.Options{}, err
	}

	opts := logger.Options{
		MinLevel:     lvl,
		OutputFile:   fc.OutputFile,
		BatchWrite:   fc.BatchWrite,
		RingSize:     fc.RingSize,
		DropOnFull:   fc.DropOnFull,
		MaxLogRate:   fc.MaxLogRate,
		EnableCaller: fc.EnableCaller,
		Color:        fc.Color,
	}
	if err := opts.Validate(); err != nil {
		return logger.Options{}, fmt.Errorf("invalid config: %w", err)
	}
	return opts, nil
}
