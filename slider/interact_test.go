// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentkit/fluent/events"
	"github.com/fluentkit/fluent/events/key"
	"github.com/fluentkit/fluent/states"
)

// at returns the pixel center of the given value on a sized slider.
func at(sl *Slider, v float32) image.Point {
	return sl.PositionFromValue(v)
}

func focus(sl *Slider) {
	sl.HandleEvent(events.NewFocus(events.Focus))
}

func TestDragMovesValue(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	inputs := 0
	sl.OnInput(func(e events.Event) { inputs++ })

	sl.HandleEvent(events.NewMouseDown(at(sl, 50), 0))
	assert.True(t, sl.Dragging())
	assert.True(t, sl.StateIs(states.Sliding))
	assert.True(t, sl.StateIs(states.Active))

	sl.HandleEvent(events.NewMouseDrag(image.Pt(150, 20), 0))
	assert.Equal(t, float32(70), sl.Value())
	assert.Equal(t, 1, inputs)

	sl.HandleEvent(events.NewMouseUp(image.Pt(170, 20), 0))
	assert.Equal(t, float32(80), sl.Value())
	assert.False(t, sl.Dragging())
	assert.False(t, sl.StateIs(states.Sliding))
}

func TestDragOutsideTrackClamps(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	sl.HandleEvent(events.NewMouseDown(at(sl, 50), 0))
	sl.HandleEvent(events.NewMouseDrag(image.Pt(9999, -50), 0))
	assert.Equal(t, float32(100), sl.Value())
	sl.HandleEvent(events.NewMouseUp(image.Pt(-9999, 80), 0))
	assert.Equal(t, float32(0), sl.Value())
}

func TestPressNearHandleStartsDrag(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	// within the hit radius but outside the visual handle
	p := at(sl, 50).Add(image.Pt(11, 0))
	sl.HandleEvent(events.NewMouseDown(p, 0))
	assert.True(t, sl.Dragging())
}

func TestTrackClickMovesDiscrete(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(20)
	sl.HandleEvent(events.NewMouseDown(at(sl, 80), 0))
	assert.Equal(t, float32(80), sl.Value())
	assert.False(t, sl.Dragging(), "a track click is not a drag")
}

func TestNonLeftButtonIgnored(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	sl.HandleEvent(events.NewMouse(events.MouseDown, events.Right, at(sl, 80), 0))
	assert.Equal(t, float32(50), sl.Value())
	assert.False(t, sl.Dragging())
}

func TestDisabledIgnoresInput(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50).SetDisabled(true)
	sl.HandleEvent(events.NewMouseDown(at(sl, 80), 0))
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(50), sl.Value())
	assert.False(t, sl.StateIs(states.Focused))
}

func TestReadOnlyFocusableButImmutable(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50).SetReadOnly(true)
	focus(sl)
	assert.True(t, sl.StateIs(states.Focused))
	sl.HandleEvent(events.NewMouseDown(at(sl, 80), 0))
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	sl.HandleEvent(events.NewScroll(at(sl, 50), 1, 0))
	assert.Equal(t, float32(50), sl.Value())
}

func TestHoverState(t *testing.T) {
	sl := sized().SetValue(50)
	sl.HandleEvent(events.NewMouseMove(at(sl, 50), 0))
	assert.True(t, sl.StateIs(states.Hovered))
	sl.HandleEvent(events.NewMouseMove(image.Pt(30, 20), 0))
	assert.False(t, sl.StateIs(states.Hovered))
}

func TestKeyboardNudges(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	focus(sl)

	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(51), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodeLeftArrow, 0))
	assert.Equal(t, float32(50), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodeUpArrow, 0))
	assert.Equal(t, float32(51), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodeDownArrow, 0))
	assert.Equal(t, float32(50), sl.Value())

	sl.HandleEvent(events.NewKey(key.CodeRightArrow, key.Shift))
	assert.Equal(t, float32(60), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, key.Control))
	assert.InDelta(t, 60.1, sl.Value(), 1e-4)
	// Shift wins when both are held
	sl.HandleEvent(events.NewKey(key.CodeLeftArrow, key.Shift|key.Control))
	assert.InDelta(t, 50.1, sl.Value(), 1e-4)
}

func TestKeyboardPaging(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodePageUp, 0))
	assert.Equal(t, float32(60), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodePageDown, 0))
	assert.Equal(t, float32(50), sl.Value())
}

func TestHomeEndSingle(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeHome, 0))
	assert.Equal(t, float32(0), sl.Value())
	sl.HandleEvent(events.NewKey(key.CodeEnd, 0))
	assert.Equal(t, float32(100), sl.Value())
}

func TestKeyboardRequiresFocus(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(50), sl.Value())
}

func TestKeyboardClampsAtExtremes(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(100)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(100), sl.Value())
}

func TestWheelRequiresFocus(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	sl.HandleEvent(events.NewScroll(at(sl, 50), 1, 0))
	assert.Equal(t, float32(50), sl.Value(), "wheel without focus must not change the value")
	focus(sl)
	sl.HandleEvent(events.NewScroll(at(sl, 50), 2, 0))
	assert.Equal(t, float32(52), sl.Value())
	sl.HandleEvent(events.NewScroll(at(sl, 50), -1, 0))
	assert.Equal(t, float32(51), sl.Value())
}

func TestRangeDragLowerHandle(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	sl.HandleEvent(events.NewMouseDown(at(sl, 20), 0))
	assert.True(t, sl.Dragging())
	sl.HandleEvent(events.NewMouseDrag(at(sl, 40), 0))
	assert.Equal(t, float32(40), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())
	sl.HandleEvent(events.NewMouseUp(at(sl, 40), 0))
}

func TestRangeHandlesNeverCross(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	sl.HandleEvent(events.NewMouseDown(at(sl, 20), 0))
	sl.HandleEvent(events.NewMouseDrag(at(sl, 95), 0))
	assert.Equal(t, float32(80), sl.LowerValue(), "lower handle stops at the upper value")
	sl.HandleEvent(events.NewMouseUp(at(sl, 95), 0))
	assert.Equal(t, float32(80), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())
}

func TestRangeHitTieGoesToLower(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(50, 50)
	sl.HandleEvent(events.NewMouseDown(at(sl, 50), 0))
	sl.HandleEvent(events.NewMouseDrag(at(sl, 30), 0))
	assert.Equal(t, float32(30), sl.LowerValue())
	assert.Equal(t, float32(50), sl.UpperValue())
	sl.HandleEvent(events.NewMouseUp(at(sl, 30), 0))
}

func TestRangeTrackClickMovesCloserHandle(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	sl.HandleEvent(events.NewMouseDown(at(sl, 35), 0))
	assert.Equal(t, float32(35), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())

	sl.HandleEvent(events.NewMouseDown(at(sl, 95), 0))
	assert.Equal(t, float32(35), sl.LowerValue())
	assert.Equal(t, float32(95), sl.UpperValue())
}

func TestRangeNudgeTargetsMidpointCloser(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(45, 80)
	focus(sl)
	// lower (45) is closer to the midpoint (50) than upper (80)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(46), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())

	sl.SetValues(10, 55)
	// upper (55) is closer to the midpoint now
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(10), sl.LowerValue())
	assert.Equal(t, float32(56), sl.UpperValue())
}

func TestRangeNudgeTieGoesToLower(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, 0))
	assert.Equal(t, float32(21), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())
}

func TestRangeAltNudgesUpper(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(45, 80)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeRightArrow, key.Alt))
	assert.Equal(t, float32(45), sl.LowerValue())
	assert.Equal(t, float32(81), sl.UpperValue())
}

func TestRangeHomeEndCollapses(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeEnd, 0))
	assert.Equal(t, float32(100), sl.LowerValue())
	assert.Equal(t, float32(100), sl.UpperValue())
	sl.HandleEvent(events.NewKey(key.CodeHome, 0))
	assert.Equal(t, float32(0), sl.LowerValue())
	assert.Equal(t, float32(0), sl.UpperValue())
}

func TestRangeControlHomeEndMovesOneHandle(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	focus(sl)
	sl.HandleEvent(events.NewKey(key.CodeHome, key.Control))
	assert.Equal(t, float32(0), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())
	sl.HandleEvent(events.NewKey(key.CodeEnd, key.Control))
	assert.Equal(t, float32(0), sl.LowerValue())
	assert.Equal(t, float32(100), sl.UpperValue())
}

func TestRangeWheelMovesCloserHandleToPointer(t *testing.T) {
	sl := sized().SetAnimated(false).SetMode(Range).SetValues(20, 80)
	focus(sl)
	sl.HandleEvent(events.NewScroll(at(sl, 25), 1, 0))
	assert.Equal(t, float32(21), sl.LowerValue())
	assert.Equal(t, float32(80), sl.UpperValue())
	sl.HandleEvent(events.NewScroll(at(sl, 90), -1, 0))
	assert.Equal(t, float32(21), sl.LowerValue())
	assert.Equal(t, float32(79), sl.UpperValue())
}

func TestDragSnapsWhenEnabled(t *testing.T) {
	sl := sized().SetValue(0).SetAnimated(false)
	sl.TickInterval = 10
	sl.SnapToTicks = true
	sl.HandleEvent(events.NewMouseDown(at(sl, 0), 0))
	sl.HandleEvent(events.NewMouseDrag(at(sl, 44), 0))
	assert.Equal(t, float32(40), sl.Value())
	sl.HandleEvent(events.NewMouseUp(at(sl, 44), 0))
	assert.Equal(t, float32(40), sl.Value())
}

func TestEventsMarkedHandled(t *testing.T) {
	sl := sized().SetAnimated(false).SetValue(50)
	down := events.NewMouseDown(at(sl, 50), 0)
	sl.HandleEvent(down)
	assert.True(t, down.IsHandled())

	drag := events.NewMouseDrag(at(sl, 60), 0)
	sl.HandleEvent(drag)
	assert.True(t, drag.IsHandled())

	up := events.NewMouseUp(at(sl, 60), 0)
	sl.HandleEvent(up)
	assert.True(t, up.IsHandled())

	focus(sl)
	k := events.NewKey(key.CodeRightArrow, 0)
	sl.HandleEvent(k)
	assert.True(t, k.IsHandled())

	unk := events.NewKey(key.CodeUnknown, 0)
	sl.HandleEvent(unk)
	assert.False(t, unk.IsHandled(), "unused keys pass through")
}
