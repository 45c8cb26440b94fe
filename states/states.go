// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the GUI states of controls that are relevant
// for styling and interaction, based on
// [CSS Pseudo-classes](https://developer.mozilla.org/en-US/docs/Web/CSS/Pseudo-classes)
package states

import "strings"

// States are GUI states of elements, used as bitflags.
type States int64

const (
	// Disabled elements cannot be interacted with or selected, but do display.
	Disabled States = 1 << iota

	// ReadOnly elements cannot be changed.
	ReadOnly

	// Active elements are currently being interacted with,
	// e.g. a handle being pressed.
	Active

	// Focused elements receive keyboard input.
	Focused

	// Hovered indicates that a pointer is over an element, but it is
	// not Active.
	Hovered

	// Sliding indicates a slider handle that is currently being dragged.
	Sliding
)

// Is returns whether the state has the given flag set.
func (st States) Is(flag States) bool {
	return st&flag != 0
}

// SetFlag sets the given flags to the given state.
func (st *States) SetFlag(on bool, flags ...States) {
	for _, f := range flags {
		if on {
			*st |= f
		} else {
			*st &^= f
		}
	}
}

var stateNames = []struct {
	flag States
	name string
}{
	{Disabled, "Disabled"},
	{ReadOnly, "ReadOnly"},
	{Active, "Active"},
	{Focused, "Focused"},
	{Hovered, "Hovered"},
	{Sliding, "Sliding"},
}

func (st States) String() string {
	var sb strings.Builder
	for _, s := range stateNames {
		if st.Is(s.flag) {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(s.name)
		}
	}
	return sb.String()
}
