// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/antgroup/levdiff/modules/strengthen"
)

const (
	BOOLEAN_UNSET = 0
	BOOLEAN_TRUE  = 1
	BOOLEAN_FALSE = 2
)

// Boolean distinguishes an unset value from false so that a later config file
// can leave an earlier setting alone.
type Boolean struct {
	val int
}

var (
	True  = Boolean{val: BOOLEAN_TRUE}
	False = Boolean{val: BOOLEAN_FALSE}
)

func (b *Boolean) UnmarshalTOML(a any) error {
	switch v := a.(type) {
	case bool:
		b.Set(v)
		return nil
	case int64:
		b.Set(v != 0)
		return nil
	case string:
		return b.UnmarshalText([]byte(v))
	}
	return fmt.Errorf("unexpected type %T for boolean", a)
}

func (b *Boolean) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "true", "yes", "on", "1":
		b.val = BOOLEAN_TRUE
	case "false", "no", "off", "0":
		b.val = BOOLEAN_FALSE
	default:
		return fmt.Errorf("bad boolean '%s': %w", text, ErrInvalidArgument)
	}
	return nil
}

func (b *Boolean) IsUnset() bool {
	return b.val == BOOLEAN_UNSET
}

// Merge takes other's value when other is set.
func (b *Boolean) Merge(other *Boolean) {
	if other.val != BOOLEAN_UNSET {
		b.val = other.val
	}
}

func (b *Boolean) True() bool {
	return b.val == BOOLEAN_TRUE
}

func (b *Boolean) Set(v bool) bool {
	if v {
		b.val = BOOLEAN_TRUE
		return true
	}
	b.val = BOOLEAN_FALSE
	return false
}

type Size struct {
	Size int64
}

func (s *Size) UnmarshalText(text []byte) error {
	sz, err := strengthen.ParseSize(string(text))
	if err != nil {
		return err
	}
	s.Size = sz
	return nil
}

func (s *Size) UnmarshalTOML(a any) error {
	switch v := a.(type) {
	case int64:
		s.Size = v
		return nil
	case string:
		return s.UnmarshalText([]byte(v))
	}
	return fmt.Errorf("unexpected type %T for size", a)
}

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "never", "false", "off":
		return ColorNever, nil
	}
	return "", fmt.Errorf("color mode '%s': %w", s, ErrInvalidArgument)
}

func (m *ColorMode) UnmarshalText(text []byte) error {
	v, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
