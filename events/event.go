// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input and notification events consumed
// and emitted by controls, as a tagged union over one Base type.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/fluentkit/fluent/events/key"
)

// Event is the interface for all events, implemented by [Base].
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// Pos returns the position of the event in control-local pixel
	// coordinates, for events that have a position.
	Pos() image.Point

	// Button returns the mouse button for mouse events.
	Button() Buttons

	// Modifiers returns the modifier keys held during the event.
	Modifiers() key.Modifiers

	// KeyCode returns the key code for key events.
	KeyCode() key.Codes

	// ScrollDelta returns the scroll amount along the scrolling axis,
	// in wheel notches; positive scrolls up / away from the user.
	ScrollDelta() float32

	// Time returns the time when the event was generated.
	Time() time.Time

	// IsHandled returns whether the event has already been handled.
	IsHandled() bool

	// SetHandled marks the event as handled, stopping further dispatch.
	SetHandled()
}

// Base is the common event implementation. All event constructors
// return a *Base with the relevant fields set.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Where is the event position in control-local pixel coordinates.
	Where image.Point

	// Btn is the mouse button involved, for mouse events.
	Btn Buttons

	// Mods are the modifier keys held during the event.
	Mods key.Modifiers

	// Code is the key code, for key events.
	Code key.Codes

	// Delta is the scroll amount in wheel notches, for scroll events.
	Delta float32

	// GenTime is the time when the event was generated.
	GenTime time.Time

	handled bool
}

func (ev *Base) Type() Types              { return ev.Typ }
func (ev *Base) Pos() image.Point         { return ev.Where }
func (ev *Base) Button() Buttons          { return ev.Btn }
func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }
func (ev *Base) KeyCode() key.Codes       { return ev.Code }
func (ev *Base) ScrollDelta() float32     { return ev.Delta }
func (ev *Base) IsHandled() bool          { return ev.handled }
func (ev *Base) SetHandled()              { ev.handled = true }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) String() string {
	switch ev.Typ {
	case KeyDown:
		return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Typ, ev.Code, ev.Mods)
	case Scroll:
		return fmt.Sprintf("%v{Delta: %g, Pos: %v, Mods: %v}", ev.Typ, ev.Delta, ev.Where, ev.Mods)
	default:
		return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Btn, ev.Where, ev.Mods)
	}
}

func newBase(typ Types) *Base {
	return &Base{Typ: typ, GenTime: time.Now()}
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Base {
	ev := newBase(typ)
	ev.Btn = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseDown returns a new MouseDown event for the left button.
func NewMouseDown(where image.Point, mods key.Modifiers) *Base {
	return NewMouse(MouseDown, Left, where, mods)
}

// NewMouseUp returns a new MouseUp event for the left button.
func NewMouseUp(where image.Point, mods key.Modifiers) *Base {
	return NewMouse(MouseUp, Left, where, mods)
}

// NewMouseMove returns a new MouseMove event.
func NewMouseMove(where image.Point, mods key.Modifiers) *Base {
	return NewMouse(MouseMove, NoButton, where, mods)
}

// NewMouseDrag returns a new MouseDrag event for the left button.
func NewMouseDrag(where image.Point, mods key.Modifiers) *Base {
	return NewMouse(MouseDrag, Left, where, mods)
}

// NewKey returns a new KeyDown event.
func NewKey(code key.Codes, mods key.Modifiers) *Base {
	ev := newBase(KeyDown)
	ev.Code = code
	ev.Mods = mods
	return ev
}

// NewScroll returns a new Scroll event. delta is in wheel notches;
// positive scrolls up / away from the user.
func NewScroll(where image.Point, delta float32, mods key.Modifiers) *Base {
	ev := newBase(Scroll)
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

// NewFocus returns a new Focus or FocusLost event.
func NewFocus(typ Types) *Base {
	return newBase(typ)
}
