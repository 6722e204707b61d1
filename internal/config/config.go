// Package config loads mazegen settings from files and the environment.
//
// Settings are layered, later layers winning:
//
//	built-in defaults < config file < .env / environment < CLI flags
//
// Config files may be YAML (parsed with gopkg.in/yaml.v3) or JSON with
// comments (stripped with github.com/tidwall/jsonc, then parsed with
// encoding/json). The CLI layer applies flags on top of the result.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// Default maze dimensions used when nothing else is configured.
const (
	DefaultWidth  = 21
	DefaultHeight = 11
)

// Config holds every setting the generate command needs.
type Config struct {
	// Width and Height are the requested maze dimensions. Even values are
	// bumped to the next odd value by the generator.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// Seed fixes the random sequence. Zero means "pick one from the clock".
	Seed int64 `yaml:"seed" json:"seed"`

	// Charset controls how the maze is drawn.
	Charset Charset `yaml:"charset" json:"charset"`
}

// Charset holds one-character glyphs for each cell state.
type Charset struct {
	Wall   string `yaml:"wall" json:"wall"`
	Path   string `yaml:"path" json:"path"`
	Marked string `yaml:"marked" json:"marked"`
}

// Set assigns glyph to the cell state called name ("wall", "path" or
// "marked", any case). The glyph itself is checked later by Validate.
func (cs *Charset) Set(name, glyph string) error {
	cell, err := model.ParseCell(name)
	if err != nil {
		return err
	}
	switch cell {
	case model.Wall:
		cs.Wall = glyph
	case model.Path:
		cs.Path = glyph
	case model.Marked:
		cs.Marked = glyph
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Charset: Charset{
			Wall:   "#",
			Path:   " ",
			Marked: ".",
		},
	}
}

// candidateNames are the config files FindConfigFile looks for, in
// priority order.
var candidateNames = []string{
	"mazegen.yaml",
	"mazegen.yml",
	"mazegen.json",
	".mazegen.yaml",
	".mazegen.jsonc",
}

// FindConfigFile returns the first candidate config file present in dir,
// or "" when there is none. A missing config file is not an error: the
// defaults are complete.
func FindConfigFile(dir string) string {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the config file at path on top of the defaults. The format is
// chosen by extension: .yaml/.yml for YAML, .json/.jsonc for JSONC.
// Fields absent from the file keep their default values.
//
// Returns a CLIError with ExitConfigError if the file is missing or malformed.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".json", ".jsonc":
		err = decodeJSONC(data, cfg)
	default:
		return nil, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext))
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	return cfg, nil
}

// decodeYAML decodes strictly: unknown keys are reported instead of being
// silently dropped. An empty document leaves cfg untouched.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// decodeJSONC strips comments and trailing commas, then decodes strictly.
func decodeJSONC(data []byte, cfg *Config) error {
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
