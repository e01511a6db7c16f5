// Package config loads the optional corpus configuration file.
//
// A corpus config names the directories to scan, the filename pattern to
// select, and the hemistich count above which a file is flagged as
// unusually long. The file may be JSON, JSONC (JSON with comments, parsed
// via github.com/tidwall/jsonc before the standard decoder), or YAML;
// the format is chosen by file extension.
//
// Without a config file the defaults apply: the hafiz-1 and hafiz-2
// directories, *.txt files, and a warning threshold of 28 hemistichs.
// Fields omitted from a config file fall back to those same defaults, so
// a config never has to restate them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/theodore-s-beers/hemistich/internal/counting"
	"github.com/theodore-s-beers/hemistich/internal/model"
)

// Config describes one corpus scan.
type Config struct {
	// Directories are the corpus directories to scan, in order.
	// Each must exist at scan time.
	Directories []string `json:"directories" yaml:"directories"`

	// Pattern is the filename glob selecting poem files within each
	// directory.
	Pattern string `json:"pattern" yaml:"pattern"`

	// WarnThreshold is the non-empty line count above which a file is
	// flagged as unusually long.
	WarnThreshold int `json:"warnThreshold" yaml:"warnThreshold"`
}

// Default returns the built-in corpus configuration: the historical
// hafiz-1 and hafiz-2 directories of *.txt files.
func Default() *Config {
	return &Config{
		Directories:   []string{"hafiz-1", "hafiz-2"},
		Pattern:       "*.txt",
		WarnThreshold: counting.DefaultWarnThreshold,
	}
}

// Load reads and parses the config file at path, filling omitted fields
// from Default. The parser is chosen by extension: .yaml/.yml use YAML,
// .json/.jsonc use JSONC (plain JSON is valid JSONC).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to parse YAML config %s", path), err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to parse JSON config %s", path), err)
		}
	default:
		return nil, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("unsupported config format %q (want .json, .jsonc, .yaml, or .yml)",
				filepath.Ext(path)))
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills zero-valued fields of cfg from Default.
func applyDefaults(cfg *Config) {
	def := Default()
	if len(cfg.Directories) == 0 {
		cfg.Directories = def.Directories
	}
	if cfg.Pattern == "" {
		cfg.Pattern = def.Pattern
	}
	if cfg.WarnThreshold == 0 {
		cfg.WarnThreshold = def.WarnThreshold
	}
}
