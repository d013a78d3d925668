// Released under an MIT license. See LICENSE.

// Package config loads alc's YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alc-lisp/alc/internal/type/frame"
	"gopkg.in/yaml.v3"
)

// Name is the file name of the configuration file in the home directory.
const Name = ".alc.yaml"

// T (config) holds the settings read from a configuration file.
type T struct {
	History      string `yaml:"history"`
	MaxDepth     int    `yaml:"max_depth"`
	Prompt       string `yaml:"prompt"`
	ShowComments bool   `yaml:"show_comments"`
}

type config = T

// Default returns the settings used when there is no configuration file.
func Default() *T {
	return &config{
		History:  "~/.alc_history",
		MaxDepth: frame.DefaultDepth,
		Prompt:   "> ",
	}
}

// Load reads the configuration file at path over the defaults.
// If path is empty, ~/.alc.yaml is read if it exists.
func Load(path string) (*T, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join("~", Name)
	}

	b, err := os.ReadFile(Expand(path))
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, err
	}

	if err := c.decode(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// HistoryPath returns the expanded path of the history file.
func (c *config) HistoryPath() string {
	return Expand(c.History)
}

func (c *config) decode(b []byte) error {
	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)

	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}

	return nil
}

// Expand replaces a leading ~ in path with the user's home directory.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
