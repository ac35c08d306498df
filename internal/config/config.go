// Package config parses the simulation's flat key/value parameter file
// (spec §6, modeled on AMReX's ParmParse format: "prefix.key = value"
// lines, blank lines and "#" comments ignored). No example repo in the
// corpus parses this particular wire format, so this parser is built
// directly on the standard library (bufio/strings) rather than adapted
// from a third-party flag or config library — the one ambient concern in
// this module without a corpus-grounded dependency.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the flat key -> raw string value map read from a
// parameter file, plus command-line overrides applied on top of it.
type Config struct {
	values map[string]string
}

// Load reads a ParmParse-style file from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	c := &Config{values: make(map[string]string)}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: %s:%d: missing '=' in %q", path, lineNo, line)
		}
		c.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return c, nil
}

// Set applies a command-line override (spec §6: overrides take the form
// key=value and are applied after the file is loaded).
func (c *Config) Set(key, value string) {
	c.values[key] = value
}

// String returns the raw string value for key, or an error if absent.
func (c *Config) String(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("config: missing required key %q", key)
	}
	return v, nil
}

// StringOr returns the value for key, or def if the key is absent.
func (c *Config) StringOr(key, def string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// Int parses key as an integer.
func (c *Config) Int(key string) (int, error) {
	v, err := c.String(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: key %q: %w", key, err)
	}
	return n, nil
}

// IntOr parses key as an integer, or returns def if absent.
func (c *Config) IntOr(key string, def int) int {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float64 parses key as a float64.
func (c *Config) Float64(key string) (float64, error) {
	v, err := c.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: key %q: %w", key, err)
	}
	return f, nil
}

// Float64Or parses key as a float64, or returns def if absent.
func (c *Config) Float64Or(key string, def float64) float64 {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Bool parses key as "true"/"false"/"1"/"0".
func (c *Config) Bool(key string) (bool, error) {
	v, err := c.String(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: key %q: %w", key, err)
	}
	return b, nil
}

// BoolOr parses key as a bool, or returns def if absent.
func (c *Config) BoolOr(key string, def bool) bool {
	v, ok := c.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// FloatSlice parses key as a comma- or whitespace-separated list of
// float64s (used for per-strain and per-age-group parameter arrays).
func (c *Config) FloatSlice(key string) ([]float64, error) {
	v, err := c.String(key)
	if err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("config: key %q: element %q: %w", key, f, err)
		}
		out = append(out, x)
	}
	return out, nil
}
