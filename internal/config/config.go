// SPDX-License-Identifier: MIT

// Package config loads the optional mcgs configuration file. The same keys
// are accepted in YAML (.yaml/.yml) and HCL (.hcl) form:
//
//	maxIterations    = 2000
//	tolerance        = 1e-10
//	relaxationFactor = 0.8
//	coloringStrategy = "conflictDetectRecolor"
//	randomSeed       = 7
//
// Every key is optional; absent keys keep the solver defaults and
// command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcgs/coloring"
	"github.com/katalvlaran/mcgs/solver"
)

// EnvConfigPath names the environment variable holding an explicit path.
const EnvConfigPath = "MCGS_CONFIG"

// Search order after $MCGS_CONFIG.
var defaultNames = []string{"mcgs.yaml", "mcgs.yml", "mcgs.hcl"}

// ErrUnknownFormat indicates a config file with an unsupported extension.
var ErrUnknownFormat = errors.New("config: unknown config file format")

// File mirrors the config file. Pointer fields distinguish "absent" from
// zero values.
type File struct {
	MaxIterations    *int     `yaml:"maxIterations" hcl:"maxIterations,optional"`
	Tolerance        *float64 `yaml:"tolerance" hcl:"tolerance,optional"`
	RelaxationFactor *float64 `yaml:"relaxationFactor" hcl:"relaxationFactor,optional"`
	ColoringStrategy *string  `yaml:"coloringStrategy" hcl:"coloringStrategy,optional"`
	RandomSeed       *int64   `yaml:"randomSeed" hcl:"randomSeed,optional"`
	Workers          *int     `yaml:"workers" hcl:"workers,optional"`
	MaxColorRounds   *int     `yaml:"maxColorRounds" hcl:"maxColorRounds,optional"`
	DivergenceFactor *float64 `yaml:"divergenceFactor" hcl:"divergenceFactor,optional"`
	ZeroRHS          *bool    `yaml:"zeroRHS" hcl:"zeroRHS,optional"`

	HistoryPath *string `yaml:"historyPath" hcl:"historyPath,optional"`
	LogLevel    *string `yaml:"logLevel" hcl:"logLevel,optional"`
	LogFormat   *string `yaml:"logFormat" hcl:"logFormat,optional"`
}

// FindConfigPath returns $MCGS_CONFIG when it names an existing file,
// otherwise the first default name present in dir, otherwise "".
func FindConfigPath(dir string) string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	for _, name := range defaultNames {
		if path := filepath.Join(dir, name); fileExists(path) {
			return path
		}
	}
	return ""
}

// Load reads path, choosing the decoder by extension.
func Load(path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".hcl":
		return loadHCL(path)
	default:
		return nil, fmt.Errorf("load config %s: %w", path, ErrUnknownFormat)
	}
}

func loadYAML(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	var cfg File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func loadHCL(path string) (*File, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var cfg File
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return &cfg, nil
}

// Apply overlays every key present in f onto cfg.
func (f *File) Apply(cfg *solver.Config) error {
	if f == nil {
		return nil
	}
	if f.MaxIterations != nil {
		cfg.MaxIterations = *f.MaxIterations
	}
	if f.Tolerance != nil {
		cfg.Tolerance = *f.Tolerance
	}
	if f.RelaxationFactor != nil {
		cfg.Relaxation = *f.RelaxationFactor
	}
	if f.ColoringStrategy != nil {
		s, err := coloring.ParseStrategy(*f.ColoringStrategy)
		if err != nil {
			return fmt.Errorf("config: coloringStrategy: %w", err)
		}
		cfg.Strategy = s
	}
	if f.RandomSeed != nil {
		cfg.Seed = *f.RandomSeed
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.MaxColorRounds != nil {
		cfg.MaxColorRounds = *f.MaxColorRounds
	}
	if f.DivergenceFactor != nil {
		cfg.DivergenceFactor = *f.DivergenceFactor
	}
	if f.ZeroRHS != nil {
		cfg.ZeroRHS = *f.ZeroRHS
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
