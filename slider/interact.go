// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/fluentkit/fluent/events"
	"github.com/fluentkit/fluent/events/key"
	"github.com/fluentkit/fluent/states"
)

// dragSession is the transient state of one handle drag. It exists
// only between a press on a handle and the matching release; track
// clicks never create one.
type dragSession struct {
	activeHandle handleIndex

	// snapshot at drag start; values are recomputed from the live
	// pointer position each move, so these serve relative-drag
	// features only
	startPos   image.Point
	startLower float32
	startUpper float32
}

// Dragging reports whether a handle drag is in progress.
func (sl *Slider) Dragging() bool { return sl.drag != nil }

// HandleEvent dispatches one input event into the slider's state
// machine. A disabled slider ignores all input.
func (sl *Slider) HandleEvent(e events.Event) {
	sl.trace(e)
	if sl.state.Is(states.Disabled) {
		return
	}
	switch e.Type() {
	case events.MouseDown:
		sl.press(e)
	case events.MouseMove, events.MouseDrag:
		sl.move(e)
	case events.MouseUp:
		sl.release(e)
	case events.KeyDown:
		sl.keyDown(e)
	case events.Scroll:
		sl.wheel(e)
	case events.Focus:
		sl.setState(true, states.Focused)
	case events.FocusLost:
		sl.setState(false, states.Focused)
	}
}

// handleAt hit-tests the pointer position against the handle(s),
// using a hit radius larger than the visual handle. When both handles
// of a range slider are in range, the closer one wins; an exact tie
// goes to the lower handle.
func (sl *Slider) handleAt(p image.Point) handleIndex {
	sl.updateLayout()
	ld := manhattan(p, sl.PositionFromValue(sl.lower))
	if sl.Mode != Range {
		if ld <= hitRadius {
			return handleLower
		}
		return handleNone
	}
	ud := manhattan(p, sl.PositionFromValue(sl.upper))
	switch {
	case ld <= hitRadius && ld <= ud:
		return handleLower
	case ud <= hitRadius:
		return handleUpper
	}
	return handleNone
}

// closerHandle returns the handle whose value is numerically closer to
// v; a tie goes to the lower handle.
func (sl *Slider) closerHandle(v float32) handleIndex {
	if math32.Abs(v-sl.lower) <= math32.Abs(v-sl.upper) {
		return handleLower
	}
	return handleUpper
}

// commitTo applies an already-constrained value to the given handle
// through the value model, returning whether it changed.
func (sl *Slider) commitTo(h handleIndex, v float32) bool {
	if sl.Mode != Range {
		return sl.commitSingle(v)
	}
	if h == handleUpper {
		return sl.commitUpper(v)
	}
	return sl.commitLower(v)
}

// handleValue returns the current value of the given handle.
func (sl *Slider) handleValue(h handleIndex) float32 {
	if h == handleUpper {
		return sl.upper
	}
	return sl.lower
}

func (sl *Slider) press(e events.Event) {
	if e.Button() != events.Left || sl.state.Is(states.ReadOnly) {
		return
	}
	if h := sl.handleAt(e.Pos()); h != handleNone {
		// live input wins over any in-flight animation
		sl.stopAnimations()
		sl.drag = &dragSession{
			activeHandle: h,
			startPos:     e.Pos(),
			startLower:   sl.lower,
			startUpper:   sl.upper,
		}
		sl.setState(true, states.Sliding, states.Active)
		sl.an.pressed()
	} else {
		sl.trackClick(e.Pos())
	}
	e.SetHandled()
}

// trackClick moves the nearest handle directly to the clicked
// position: a single discrete move, not a drag.
func (sl *Slider) trackClick(p image.Point) {
	v := sl.ValueFromPosition(p)
	target := handleLower
	if sl.Mode == Range {
		target = sl.closerHandle(v)
	}
	if sl.Animated && sl.Animator != nil {
		if sl.Mode == Range {
			if target == handleUpper {
				sl.AnimateToValues(sl.lower, v, defaultAnimDuration)
			} else {
				sl.AnimateToValues(v, sl.upper, defaultAnimDuration)
			}
		} else {
			sl.AnimateToValue(v, defaultAnimDuration)
		}
		return // announced on animation completion
	}
	if sl.commitTo(target, sl.applyConstraints(v)) {
		sl.an.commit()
	}
}

func (sl *Slider) move(e events.Event) {
	if sl.drag == nil {
		h := sl.handleAt(e.Pos())
		if h != sl.hovered {
			sl.hovered = h
			sl.setState(h != handleNone, states.Hovered)
		}
		return
	}
	// dragging tracks the pointer directly; no animation
	v := sl.applyConstraints(sl.ValueFromPosition(e.Pos()))
	sl.commitTo(sl.drag.activeHandle, v)
	sl.Send(events.Input)
	e.SetHandled()
}

func (sl *Slider) release(e events.Event) {
	if sl.drag == nil {
		return
	}
	v := sl.applyConstraints(sl.ValueFromPosition(e.Pos()))
	sl.commitTo(sl.drag.activeHandle, v)
	sl.drag = nil
	sl.setState(false, states.Sliding, states.Active)
	sl.an.released()
	e.SetHandled()
}

// nudgeAmount returns the keyboard nudge for the given modifiers:
// Shift pages, Control divides the step by 10 for fine adjustment.
// Shift is checked before Control when both are held.
func (sl *Slider) nudgeAmount(mods key.Modifiers) float32 {
	switch {
	case mods.HasFlag(key.Shift):
		return sl.pageStep()
	case mods.HasFlag(key.Control):
		return sl.Step / 10
	}
	return sl.Step
}

// pageStep returns the effective page step, at least as big as Step.
func (sl *Slider) pageStep() float32 {
	return math32.Max(sl.PageStep, sl.Step)
}

// nudgeTarget returns the handle an unmodified range-mode nudge
// applies to: Alt redirects to the upper handle; otherwise the handle
// whose value is closer to the midpoint of the range receives it,
// with a tie going to the lower handle.
func (sl *Slider) nudgeTarget(mods key.Modifiers) handleIndex {
	if mods.HasFlag(key.Alt) {
		return handleUpper
	}
	mid := (sl.Min + sl.Max) / 2
	if math32.Abs(sl.lower-mid) <= math32.Abs(sl.upper-mid) {
		return handleLower
	}
	return handleUpper
}

func (sl *Slider) keyDown(e events.Event) {
	if !sl.state.Is(states.Focused) || sl.state.Is(states.ReadOnly) {
		return
	}
	mods := e.Modifiers()
	var delta float32
	changed := false
	handled := true
	switch e.KeyCode() {
	case key.CodeLeftArrow, key.CodeDownArrow:
		// down decreases on vertical sliders too: up is more
		delta = -sl.nudgeAmount(mods)
	case key.CodeRightArrow, key.CodeUpArrow:
		delta = sl.nudgeAmount(mods)
	case key.CodePageDown:
		delta = -sl.pageStep()
	case key.CodePageUp:
		delta = sl.pageStep()
	case key.CodeHome:
		changed = sl.jumpToExtreme(true, mods)
	case key.CodeEnd:
		changed = sl.jumpToExtreme(false, mods)
	default:
		handled = false
	}
	if delta != 0 {
		target := handleLower
		if sl.Mode == Range {
			target = sl.nudgeTarget(mods)
		}
		changed = sl.commitTo(target, sl.applyConstraints(sl.handleValue(target)+delta))
	}
	if changed {
		// a key press clamped to a no-op never announces
		sl.an.commit()
	}
	if handled {
		e.SetHandled()
	}
}

// jumpToExtreme implements Home/End: in Single mode the value jumps to
// the extreme; in Range mode, Control moves only the adjacent handle
// (lower for Home, upper for End) while a plain press collapses both
// handles onto the extreme.
func (sl *Slider) jumpToExtreme(toMin bool, mods key.Modifiers) bool {
	v := sl.Max
	if toMin {
		v = sl.Min
	}
	v = sl.applyConstraints(v)
	if sl.Mode != Range {
		return sl.commitSingle(v)
	}
	if mods.HasFlag(key.Control) {
		if toMin {
			return sl.commitLower(v)
		}
		return sl.commitUpper(v)
	}
	if toMin {
		// collapse downward: lower first so upper can follow
		c := sl.commitLower(v)
		return sl.commitUpper(v) || c
	}
	c := sl.commitUpper(v)
	return sl.commitLower(v) || c
}

func (sl *Slider) wheel(e events.Event) {
	// wheel edits require keyboard focus so scrolling past the
	// control in a larger view cannot change it
	if !sl.state.Is(states.Focused) || sl.state.Is(states.ReadOnly) {
		return
	}
	delta := e.ScrollDelta() * sl.Step
	if delta == 0 {
		return
	}
	target := handleLower
	if sl.Mode == Range {
		target = sl.closerHandle(sl.ValueFromPosition(e.Pos()))
	}
	if sl.commitTo(target, sl.applyConstraints(sl.handleValue(target)+delta)) {
		sl.an.commit()
	}
	e.SetHandled()
}
