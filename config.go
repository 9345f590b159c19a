// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repsim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Config is a method name with its options, which can be saved to
// and opened from a TOML or YAML file.
type Config struct {

	// Method is the name of the method (case insensitive).
	// If empty, the [DefaultMethod] is used.
	Method string `toml:"method" yaml:"method"`

	// Options are passed to the comparator.
	Options Options `toml:"options" yaml:"options"`
}

// Parse returns the method of the config.
func (c *Config) Parse() (Methods, error) {
	if c.Method == "" {
		return DefaultMethod, nil
	}
	return ParseMethod(c.Method)
}

// Compare compares x and y using the method and options of the config.
func (c *Config) Compare(x, y mat.Matrix) (float64, error) {
	m, err := c.Parse()
	if err != nil {
		return 0, err
	}
	return m.Compare(x, y, &c.Options)
}

// Open reads the config from the given file, which must have
// a .toml, .yaml or .yml extension. The method and kernel type
// names are checked.
func (c *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := decode(filename, b, c); err != nil {
		return err
	}
	// the generated UnmarshalText only logs invalid names,
	// so the kernel type is decoded again as a string and set strictly.
	var names struct {
		Options struct {
			Kernel struct {
				Type string `toml:"type" yaml:"type"`
			} `toml:"kernel" yaml:"kernel"`
		} `toml:"options" yaml:"options"`
	}
	if err := decode(filename, b, &names); err != nil {
		return err
	}
	if kt := names.Options.Kernel.Type; kt != "" {
		if err := c.Options.Kernel.Type.SetString(kt); err != nil {
			return fmt.Errorf("repsim.Config.Open %q: %w", filename, err)
		}
	}
	_, err = c.Parse()
	return err
}

// decode unmarshals b into v according to the extension of filename.
func decode(filename string, b []byte, v any) error {
	var err error
	switch format(filename) {
	case "toml":
		err = toml.Unmarshal(b, v)
	case "yaml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("repsim.Config.Open: unsupported file type for %q", filename)
	}
	if err != nil {
		return fmt.Errorf("repsim.Config.Open %q: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given file, which must have
// a .toml, .yaml or .yml extension.
func (c *Config) Save(filename string) error {
	var b []byte
	var err error
	switch format(filename) {
	case "toml":
		b, err = toml.Marshal(c)
	case "yaml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("repsim.Config.Save: unsupported file type for %q", filename)
	}
	if err != nil {
		return fmt.Errorf("repsim.Config.Save %q: %w", filename, err)
	}
	return os.WriteFile(filename, b, 0666)
}

// format returns the file format for the extension of filename.
func format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
