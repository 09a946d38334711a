// Package config provides TOML and YAML configuration for copilot-face.
package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration in config files. Values are Go duration
// strings ("120ms", "2.4s"); a bare integer is taken as milliseconds, the
// unit the face timings are tuned in.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	return d.parse(string(text))
}

// MarshalText implements encoding.TextMarshaler. Durations are always
// written as strings.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalTOML implements toml.Unmarshaler for string and integer values.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return d.parse(v)
	case int64:
		return d.millis(v)
	default:
		return fmt.Errorf("invalid duration %v: want a string or integer milliseconds, got %T", v, v)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar values.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d: want a scalar", n.Line)
	}
	if ms, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
		return d.millis(ms)
	}
	return d.parse(n.Value)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

func (d *Duration) millis(ms int64) error {
	if ms < 0 {
		return fmt.Errorf("negative duration %dms not allowed", ms)
	}
	d.Duration = time.Duration(ms) * time.Millisecond
	return nil
}
