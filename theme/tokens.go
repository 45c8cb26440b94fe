// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Standard token names used by the slider and other value controls.
const (
	TokenAccent               = "accent"
	TokenControlFillDefault   = "controlFillColorDefault"
	TokenControlFillSecondary = "controlFillColorSecondary"
	TokenControlFillTertiary  = "controlFillColorTertiary"
	TokenControlStrokeDefault = "controlStrokeColorDefault"
	TokenTextFillPrimary      = "textFillColorPrimary"
	TokenTextFillSecondary    = "textFillColorSecondary"
	TokenFocusStroke          = "focusStrokeColorOuter"
)

// Default returns the default light theme.
func Default() *Theme {
	return &Theme{
		Tokens: map[string]color.RGBA{
			TokenAccent:               {R: 0x00, G: 0x78, B: 0xD4, A: 0xFF},
			TokenControlFillDefault:   {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			TokenControlFillSecondary: {R: 0xF9, G: 0xF9, B: 0xF9, A: 0xFF},
			TokenControlFillTertiary:  {R: 0xF3, G: 0xF3, B: 0xF3, A: 0xFF},
			TokenControlStrokeDefault: {R: 0xD1, G: 0xD1, B: 0xD1, A: 0xFF},
			TokenTextFillPrimary:      {R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF},
			TokenTextFillSecondary:    {R: 0x5E, G: 0x5E, B: 0x5E, A: 0xFF},
			TokenFocusStroke:          {R: 0x00, G: 0x78, B: 0xD4, A: 0xFF},
		},
		HighContrast: map[string]color.RGBA{
			TokenAccent:               {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
			TokenControlStrokeDefault: {A: 0xFF},
			TokenTextFillPrimary:      {A: 0xFF},
			TokenTextFillSecondary:    {A: 0xFF},
			TokenFocusStroke:          {A: 0xFF},
		},
		Disabled: map[string]color.RGBA{
			TokenAccent: {R: 0xA6, G: 0xA6, B: 0xA6, A: 0xFF},
		},
		Fonts: map[string]Font{
			"body":    {Family: "Segoe UI", Size: 14, Weight: 400},
			"caption": {Family: "Segoe UI", Size: 12, Weight: 400},
		},
	}
}

// tokenFile is the on-disk TOML schema for token overrides.
type tokenFile struct {
	Tokens       map[string]string `toml:"tokens"`
	HighContrast map[string]string `toml:"highcontrast"`
	Disabled     map[string]string `toml:"disabled"`
}

// OpenTokens reads token overrides from the given TOML file and merges
// them into the theme. Colors are #RRGGBB or #RRGGBBAA hex strings.
func (t *Theme) OpenTokens(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("theme.OpenTokens: %w", err)
	}
	var tf tokenFile
	if err := toml.Unmarshal(b, &tf); err != nil {
		return fmt.Errorf("theme.OpenTokens: %s: %w", filename, err)
	}
	for dst, src := range map[*map[string]color.RGBA]map[string]string{
		&t.Tokens:       tf.Tokens,
		&t.HighContrast: tf.HighContrast,
		&t.Disabled:     tf.Disabled,
	} {
		if len(src) == 0 {
			continue
		}
		if *dst == nil {
			*dst = make(map[string]color.RGBA, len(src))
		}
		for name, hex := range src {
			c, err := FromHex(hex)
			if err != nil {
				return fmt.Errorf("theme.OpenTokens: token %s: %w", name, err)
			}
			(*dst)[name] = c
		}
	}
	return nil
}
