// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the color-token and font lookup service
// consumed by controls. A Theme is injected into each control at
// construction rather than accessed as a global, preserving
// one-theme-per-application semantics without hidden state.
package theme

import (
	"fmt"
	"image/color"

	"github.com/fluentkit/fluent/states"
)

// Font is a font specification for a named role.
type Font struct {
	// Family is the font family name.
	Family string

	// Size is the font size in dp.
	Size float32

	// Weight is the font weight (400 regular, 600 semibold).
	Weight int
}

// Theme holds named color tokens and font roles, with separate
// high-contrast and disabled-state override tables.
type Theme struct {
	// Tokens maps token names to colors for the normal state.
	Tokens map[string]color.RGBA

	// HighContrast maps token names to colors used when high-contrast
	// mode is requested; tokens not present fall back to Tokens.
	HighContrast map[string]color.RGBA

	// Disabled maps token names to colors used for disabled elements;
	// tokens not present fall back with reduced alpha.
	Disabled map[string]color.RGBA

	// Fonts maps role names (body, caption) to font specifications.
	Fonts map[string]Font
}

// Color returns the color for the given token name, resolved for the
// given control state and contrast preference. Disabled state takes
// precedence over high contrast. Unknown tokens resolve to an opaque
// magenta so that missing tokens are visible rather than invisible.
func (t *Theme) Color(token string, st states.States, highContrast bool) color.RGBA {
	if st.Is(states.Disabled) {
		if c, ok := t.Disabled[token]; ok {
			return c
		}
		if c, ok := t.Tokens[token]; ok {
			return fade(c)
		}
		return missingToken
	}
	if highContrast {
		if c, ok := t.HighContrast[token]; ok {
			return c
		}
	}
	if c, ok := t.Tokens[token]; ok {
		return c
	}
	return missingToken
}

// Font returns the font for the given role name, falling back to the
// body role when the role is not defined.
func (t *Theme) Font(role string) Font {
	if f, ok := t.Fonts[role]; ok {
		return f
	}
	return t.Fonts["body"]
}

var missingToken = color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}

// fade returns the disabled rendition of a color: same hue at 36% alpha.
func fade(c color.RGBA) color.RGBA {
	const a = 0x5C
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xFF),
		G: uint8(uint16(c.G) * a / 0xFF),
		B: uint8(uint16(c.B) * a / 0xFF),
		A: a,
	}
}

// FromHex parses a #RRGGBB or #RRGGBBAA hex color string.
func FromHex(hex string) (color.RGBA, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b, a uint8
	a = 0xFF
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("theme.FromHex: invalid color %q: %w", hex, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("theme.FromHex: invalid color %q: %w", hex, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("theme.FromHex: invalid color length %q", hex)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
