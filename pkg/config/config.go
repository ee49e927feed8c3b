// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antgroup/levdiff/modules/levenshtein/color"
)

const (
	DefaultMaxSize int64 = 100 << 20 // 100M
)

// ErrBadConfigKey reports an unknown key.
type ErrBadConfigKey struct {
	key string
}

func (err *ErrBadConfigKey) Error() string {
	return fmt.Sprintf("bad levdiff config key '%s'", err.key)
}

func IsErrBadConfigKey(err error) bool {
	var e *ErrBadConfigKey
	return errors.As(err, &e)
}

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

func overwrite(a, b string) string {
	if len(b) != 0 {
		return b
	}
	return a
}

type Diff struct {
	Color    ColorMode `toml:"color,omitempty"`
	Renumber Boolean   `toml:"renumber,omitempty"`
	Trace    Boolean   `toml:"trace,omitempty"`
	MaxSize  Size      `toml:"maxSize,omitempty"`
	Encoding string    `toml:"encoding,omitempty"`
	Pager    *string   `toml:"pager,omitempty"` // empty string disables the pager
}

func (d *Diff) Overwrite(o *Diff) {
	if len(o.Color) != 0 {
		d.Color = o.Color
	}
	d.Renumber.Merge(&o.Renumber)
	d.Trace.Merge(&o.Trace)
	if o.MaxSize.Size != 0 {
		d.MaxSize = o.MaxSize
	}
	d.Encoding = overwrite(d.Encoding, o.Encoding)
	if o.Pager != nil {
		d.Pager = o.Pager
	}
}

// ColorMode returns the configured mode, auto when unset.
func (d *Diff) ColorMode() ColorMode {
	if len(d.Color) == 0 {
		return ColorAuto
	}
	return d.Color
}

// Limit returns the input size limit; negative sizes disable it.
func (d *Diff) Limit() int64 {
	if d.MaxSize.Size == 0 {
		return DefaultMaxSize
	}
	return d.MaxSize.Size
}

// Color holds color specs per key, see color.ParseColor.
type Color map[string]string

func (c Color) Overwrite(o Color) {
	for k, v := range o {
		c[k] = v
	}
}

// Options turns the specs into color config options.
func (c Color) Options() ([]color.ColorConfigOption, error) {
	opts := make([]color.ColorConfigOption, 0, len(c))
	for k, v := range c {
		key, ok := lookupColorKey(k)
		if !ok {
			return nil, &ErrBadConfigKey{key: "color." + k}
		}
		code, err := color.ParseColor(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, color.WithColor(key, code))
	}
	return opts, nil
}

func lookupColorKey(k string) (color.ColorKey, bool) {
	for _, key := range color.Keys() {
		if strings.EqualFold(string(key), k) {
			return key, true
		}
	}
	return "", false
}

type Config struct {
	Diff  Diff  `toml:"diff,omitempty"`
	Color Color `toml:"color,omitempty"`
}

// Overwrite: use co to overwrite config
func (c *Config) Overwrite(co *Config) {
	c.Diff.Overwrite(&co.Diff)
	if c.Color == nil {
		c.Color = make(Color)
	}
	c.Color.Overwrite(co.Color)
}

// Set applies a single "section.key" value.
func (c *Config) Set(key, value string) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return &ErrBadConfigKey{key: key}
	}
	switch strings.ToLower(section) {
	case "diff":
		return c.Diff.set(key, name, value)
	case "color":
		if _, ok := lookupColorKey(name); !ok {
			return &ErrBadConfigKey{key: key}
		}
		if _, err := color.ParseColor(value); err != nil {
			return err
		}
		if c.Color == nil {
			c.Color = make(Color)
		}
		c.Color[name] = value
		return nil
	}
	return &ErrBadConfigKey{key: key}
}

func (d *Diff) set(key, name, value string) error {
	switch strings.ToLower(name) {
	case "color":
		return d.Color.UnmarshalText([]byte(value))
	case "renumber":
		return d.Renumber.UnmarshalText([]byte(value))
	case "trace":
		return d.Trace.UnmarshalText([]byte(value))
	case "maxsize":
		return d.MaxSize.UnmarshalText([]byte(value))
	case "encoding":
		d.Encoding = value
		return nil
	case "pager":
		d.Pager = &value
		return nil
	}
	return &ErrBadConfigKey{key: key}
}

// SetValues applies "key=value" overrides in order.
func (c *Config) SetValues(values []string) error {
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("override '%s' is not <key>=<value>: %w", v, ErrInvalidArgument)
		}
		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}
