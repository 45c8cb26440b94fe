// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines key codes and modifier flags for keyboard events.
package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	Control Modifiers = 1 << iota
	Meta               // called Command on macOS, Windows on Windows
	Alt
	Shift
)

// HasFlag returns whether these modifiers have the given modifier set.
func (mo Modifiers) HasFlag(f Modifiers) bool {
	return mo&f != 0
}

// SetFlag sets the given modifier flags to the given state.
func (mo *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*mo |= fl
		} else {
			*mo &^= fl
		}
	}
}

// HasAnyModifier returns whether any of the given modifiers are set.
func (mo Modifiers) HasAnyModifier(f ...Modifiers) bool {
	for _, fl := range f {
		if mo&fl != 0 {
			return true
		}
	}
	return false
}

func (mo Modifiers) String() string {
	var sb strings.Builder
	for _, m := range []struct {
		flag Modifiers
		name string
	}{{Control, "Control"}, {Meta, "Meta"}, {Alt, "Alt"}, {Shift, "Shift"}} {
		if mo.HasFlag(m.flag) {
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(m.name)
		}
	}
	return sb.String()
}

// Codes is the identity of a key, independent of modifier state.
// Only the codes relevant to value controls are defined.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
)

var codeNames = map[Codes]string{
	CodeUnknown:    "Unknown",
	CodeLeftArrow:  "LeftArrow",
	CodeRightArrow: "RightArrow",
	CodeUpArrow:    "UpArrow",
	CodeDownArrow:  "DownArrow",
	CodeHome:       "Home",
	CodeEnd:        "End",
	CodePageUp:     "PageUp",
	CodePageDown:   "PageDown",
}

func (c Codes) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Unknown"
}
