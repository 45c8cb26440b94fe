// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of GUI event, and also the level at which
// one can select which events to listen to. The type includes both the
// source of the event and its action (MouseDown and MouseUp are separate
// types). Input events carry position, button, key, or scroll data;
// Input and Change are notification events emitted by controls.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving with no button down.
	MouseMove

	// MouseDrag is sent when the mouse is moving with a button down.
	MouseDrag

	// Scroll is for scroll wheel or other scrolling events.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// Focus is sent when a focusable element receives keyboard focus.
	Focus

	// FocusLost is sent when a focusable element loses keyboard focus.
	FocusLost

	// Input is emitted by a control when the value represented by the
	// element has changed transiently, e.g. on every slider drag step.
	Input

	// Change is emitted by a control when the value represented by the
	// element has been committed.
	Change
)

var typeNames = map[Types]string{
	UnknownType: "UnknownType",
	MouseDown:   "MouseDown",
	MouseUp:     "MouseUp",
	MouseMove:   "MouseMove",
	MouseDrag:   "MouseDrag",
	Scroll:      "Scroll",
	KeyDown:     "KeyDown",
	Focus:       "Focus",
	FocusLost:   "FocusLost",
	Input:       "Input",
	Change:      "Change",
}

func (t Types) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "UnknownType"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)
