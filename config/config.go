// Package config loads the TOML file describing one analyser run.
package config

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/output"
	"github.com/ostafen/mathsets/source"
	"github.com/ostafen/mathsets/util"
)

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("not supplied or invalid")
	ErrDataFileNotFound  = errors.New("data file not found")
	ErrOutputDirNotFound = errors.New("directory for output file not found")
)

type Mode string

const (
	// ModeIntersection only computes the intersection of the sets.
	ModeIntersection Mode = "INTS"
	// ModeAffiliation also locates a point against the intersection.
	ModeAffiliation Mode = "AFFL"
)

var modeAliases = map[string]Mode{
	"ints":                    ModeIntersection,
	"intersection":            ModeIntersection,
	"intersection-only":       ModeIntersection,
	"affl":                    ModeAffiliation,
	"affiliation":             ModeAffiliation,
	"intersection-plus-point": ModeAffiliation,
}

func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", errors.Wrap(ErrInvalidConfig, `"mode" in the section [general]`)
}

type General struct {
	Mode string `toml:"mode"`
	// Point is a TOML integer, float or string.
	Point interface{} `toml:"point,omitempty"`
}

type Input struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

type Output struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Config mirrors the file layout. Resolved values are available after Validate.
type Config struct {
	General General `toml:"general"`
	Input   Input   `toml:"input"`
	Output  Output  `toml:"output"`

	mode         Mode
	point        float64
	inputFormat  source.Format
	outputFormat output.Format
}

func (c *Config) Mode() Mode { return c.mode }
func (c *Config) Point() float64 { return c.point }
func (c *Config) InputFormat() source.Format { return c.inputFormat }
func (c *Config) OutputFormat() output.Format { return c.outputFormat }

var sections = []string{"general", "input", "output"}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
	}

	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
	}
	for _, section := range sections {
		if !md.IsDefined(section) {
			return nil, errors.Wrapf(ErrInvalidConfig, "section [%s]", section)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func invalid(key, section string) error {
	return errors.Wrapf(ErrInvalidConfig, "%q in the section [%s]", key, section)
}

// Validate checks every setting, in file order, and resolves the typed values.
func (c *Config) Validate() error {
	mode, err := ParseMode(c.General.Mode)
	if err != nil {
		return err
	}
	c.mode = mode

	c.point = 0
	if mode == ModeAffiliation {
		point, ok := util.ParseFloat(c.General.Point)
		if !ok || math.IsInf(point, 0) || math.IsNaN(point) {
			return invalid("point", "general")
		}
		c.point = point
	}

	if err := c.validateInput(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateInput() error {
	format, err := source.ParseFormat(c.Input.Format)
	if err != nil {
		return invalid("format", "input")
	}
	c.inputFormat = format

	if ext := filepath.Ext(c.Input.Path); ext != "" && !strings.EqualFold(ext[1:], format.Ext()) {
		return errors.Wrap(ErrInvalidConfig, `"format" and "path" in the section [input]`)
	}
	if c.Input.Path == "" {
		return invalid("path", "input")
	}
	if info, err := os.Stat(filepath.Clean(c.Input.Path)); err != nil || info.IsDir() {
		return errors.Wrapf(ErrDataFileNotFound, "%s", c.Input.Path)
	}
	return nil
}

func (c *Config) validateOutput() error {
	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return invalid("format", "output")
	}
	c.outputFormat = format

	if c.Output.Path == "" {
		return invalid("path", "output")
	}
	dir := filepath.Dir(filepath.Clean(c.Output.Path))
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.Wrapf(ErrOutputDirNotFound, "%s", dir)
	}

	if format.IsStore() {
		return nil
	}
	if ext := filepath.Ext(c.Output.Path); ext != "" && !strings.EqualFold(ext[1:], string(format)) {
		return errors.Wrap(ErrInvalidConfig, `"format" and "path" in the section [output]`)
	}
	return nil
}

// Encode writes c in the file layout read by Load.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
