// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slider implements the dual-mode slider control: a draggable
// single handle or a lower/upper handle pair on a track, with tick
// snapping, keyboard, wheel, and pointer input, animated value moves,
// and assistive-technology announcements.
package slider

import (
	"image"
	"image/color"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/fluentkit/fluent/anim"
	"github.com/fluentkit/fluent/events"
	"github.com/fluentkit/fluent/logx"
	"github.com/fluentkit/fluent/states"
	"github.com/fluentkit/fluent/theme"
)

// TraceEvents enables debug logging of every event dispatched to a
// slider, through [logx].
var TraceEvents bool

// Orientations are the axis orientations of a slider.
type Orientations int32

const (
	// Horizontal sliders slide along the X axis, minimum at the left.
	Horizontal Orientations = iota

	// Vertical sliders slide along the Y axis, minimum at the bottom.
	Vertical
)

func (o Orientations) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Modes are the value modes of a slider.
type Modes int32

const (
	// Single is a one-handle slider representing one value.
	Single Modes = iota

	// Range is a two-handle slider representing a lower/upper pair.
	Range
)

func (m Modes) String() string {
	if m == Range {
		return "Range"
	}
	return "Single"
}

// TickPositions are the sides of the track that tick marks and labels
// are painted on. A paint hint only; tick generation and snapping are
// independent of it.
type TickPositions int32

const (
	// TicksNone hides tick marks.
	TicksNone TickPositions = iota

	// TicksAbove paints ticks above a horizontal track, or left of a
	// vertical one.
	TicksAbove

	// TicksBelow paints ticks below a horizontal track, or right of a
	// vertical one.
	TicksBelow

	// TicksBothSides paints ticks on both sides of the track.
	TicksBothSides
)

func (tp TickPositions) String() string {
	switch tp {
	case TicksAbove:
		return "TicksAbove"
	case TicksBelow:
		return "TicksBelow"
	case TicksBothSides:
		return "TicksBothSides"
	}
	return "TicksNone"
}

// handleIndex identifies which handle an interaction targets.
type handleIndex int32

const (
	handleNone handleIndex = iota - 1
	handleLower
	handleUpper
)

// Geometry constants, in pixels.
const (
	// edgePad is the fixed space reserved at each end of the track so
	// handles never clip at the control edge.
	edgePad = 10

	// handleRadius is the visual radius of a handle.
	handleRadius = 8

	// hitRadius is the pointer hit-test radius around a handle center,
	// larger than the visual handle to aid imprecise pointing.
	hitRadius = 12

	// trackThickness is the thickness of the track groove.
	trackThickness = 4
)

// Slider is a dual-mode slider control. Configuration fields may be
// set directly before first use or through the Set methods at any
// time; values and range must go through their setters, which clamp
// and reorder rather than erroring.
type Slider struct {

	// Orientation is the sliding axis. Defaults to [Horizontal].
	Orientation Orientations

	// Mode selects a single handle or a lower/upper pair.
	// Change it via [Slider.SetMode].
	Mode Modes

	// Min is the minimum possible value. It defaults to 0.
	Min float32

	// Max is the maximum possible value. It defaults to 100.
	Max float32

	// Step is the amount that arrow keys and wheel notches
	// increment/decrement the value by. It defaults to 1.
	Step float32

	// PageStep is the amount that PageUp/PageDown and Shift-modified
	// nudges move the value by. It defaults to 10 and is used as at
	// least [Slider.Step].
	PageStep float32

	// TickInterval generates ticks at Min, Min+TickInterval, … up to
	// Max when positive. Auto ticks are generated on demand, never
	// stored.
	TickInterval float32

	// TickPosition is where tick marks are painted relative to the
	// track. A paint hint for the embedding painter; it does not
	// affect tick generation or snapping.
	TickPosition TickPositions

	// ShowLabels is whether tick labels are painted.
	ShowLabels bool

	// ShowTooltip is whether a value tooltip is shown while dragging.
	// Defaults to on. A paint hint for the embedding painter.
	ShowTooltip bool

	// SnapToTicks quantizes values to the nearest tick (or step
	// multiple when no ticks exist) on every mutation.
	SnapToTicks bool

	// Animated is whether track clicks and AnimateTo calls animate the
	// value; live dragging is never animated.
	Animated bool

	// ShowFocusIndicator is whether to render a focus ring around the
	// focused handle.
	ShowFocusIndicator bool

	// HighContrast requests high-contrast theme tokens.
	HighContrast bool

	// RespectMotionPreference selects a gentler easing curve when the
	// user prefers reduced motion. Defaults to on.
	RespectMotionPreference bool

	// ReducedMotion is the user's reduced-motion preference, supplied
	// by the embedding application.
	ReducedMotion bool

	// Precision is the number of significant decimal digits used to
	// truncate values mapped from pixel positions, removing small
	// floating point noise. It defaults to 9.
	Precision int

	// Format formats a value for labels and announcements. When nil,
	// whole numbers render without decimals and others with one.
	Format func(v float32) string

	// ValueText, if non-empty, entirely replaces the default
	// announcement phrasing for assistive technology.
	ValueText string

	// Label is the accessible name of the slider.
	Label string

	// Description is an optional caller description prepended to the
	// computed accessible description.
	Description string

	// Theme is the injected theme service used for color and font
	// token lookup.
	Theme *theme.Theme

	// Animator is the injected animation service. Animated moves
	// degrade to immediate sets when it is nil.
	Animator anim.Animator

	// lower and upper are the current values. In Single mode they are
	// kept equal and represent the one value.
	lower, upper float32

	// explicit, labeled ticks, sorted by value, unique per value
	ticks []Tick

	listeners events.Listeners
	state     states.States

	an announcer

	// geometry; recomputed lazily when layoutDirty
	size        image.Point
	layoutDirty bool
	track       image.Rectangle
	lowerHandle image.Rectangle
	upperHandle image.Rectangle

	drag    *dragSession
	hovered handleIndex

	valueAnim anim.Anim

	needsRender bool
	disposed    bool
}

// New returns a new [Slider] with default configuration: range 0 to
// 100, step 1, page step 10, single mode, horizontal, animated, with
// the default theme.
func New() *Slider {
	sl := &Slider{
		Max:                     100,
		Step:                    1,
		PageStep:                10,
		Animated:                true,
		ShowTooltip:             true,
		ShowFocusIndicator:      true,
		RespectMotionPreference: true,
		Precision:               9,
		Theme:                   theme.Default(),
		hovered:                 handleNone,
		layoutDirty:             true,
	}
	sl.an.control = sl
	return sl
}

// Dispose stops any running animation and announcement timer and makes
// all further animation starts safe no-ops. The slider remains
// readable after disposal.
func (sl *Slider) Dispose() {
	sl.disposed = true
	sl.stopAnimations()
	sl.an.stop()
}

// On adds an event listener function for the given event type.
func (sl *Slider) On(typ events.Types, fun func(e events.Event)) *Slider {
	sl.listeners.Add(typ, fun)
	return sl
}

// OnChange adds an event listener function for [events.Change] events,
// emitted on every committed value change.
func (sl *Slider) OnChange(fun func(e events.Event)) *Slider {
	return sl.On(events.Change, fun)
}

// OnInput adds an event listener function for [events.Input] events,
// emitted continuously during dragging.
func (sl *Slider) OnInput(fun func(e events.Event)) *Slider {
	return sl.On(events.Input, fun)
}

// Send sends a new event of the given type to this slider's listeners.
func (sl *Slider) Send(typ events.Types) {
	ev := &events.Base{Typ: typ}
	sl.listeners.Call(ev)
}

// StateIs returns whether the slider has the given state flag set.
func (sl *Slider) StateIs(flag states.States) bool {
	return sl.state.Is(flag)
}

// setState sets the given state flags and requests a repaint.
func (sl *Slider) setState(on bool, flags ...states.States) {
	sl.state.SetFlag(on, flags...)
	sl.needsRender = true
}

// SetDisabled sets the Disabled state; a disabled slider ignores all
// input but still displays.
func (sl *Slider) SetDisabled(disabled bool) *Slider {
	sl.setState(disabled, states.Disabled)
	return sl
}

// SetReadOnly sets the ReadOnly state; a read-only slider can be
// focused and hovered but not changed.
func (sl *Slider) SetReadOnly(ro bool) *Slider {
	sl.setState(ro, states.ReadOnly)
	return sl
}

// NeedsRender reports whether the slider has changed in a way that
// requires a repaint, and clears the flag.
func (sl *Slider) NeedsRender() bool {
	nr := sl.needsRender
	sl.needsRender = false
	return nr
}

// SetOrientation sets the sliding axis.
func (sl *Slider) SetOrientation(o Orientations) *Slider {
	if sl.Orientation != o {
		sl.Orientation = o
		sl.layoutDirty = true
		sl.needsRender = true
	}
	return sl
}

// SetStep sets the keyboard/wheel step. Non-positive steps are ignored.
func (sl *Slider) SetStep(step float32) *Slider {
	if step > 0 {
		sl.Step = step
	}
	return sl
}

// SetPageStep sets the page step. Non-positive steps are ignored.
func (sl *Slider) SetPageStep(step float32) *Slider {
	if step > 0 {
		sl.PageStep = step
	}
	return sl
}

// SetAnimated sets whether discrete value moves animate.
func (sl *Slider) SetAnimated(animated bool) *Slider {
	sl.Animated = animated
	return sl
}

// SetSnapToTicks sets tick snapping, re-snapping the current values
// when enabling.
func (sl *Slider) SetSnapToTicks(snap bool) *Slider {
	if sl.SnapToTicks == snap {
		return sl
	}
	sl.SnapToTicks = snap
	if snap {
		if sl.Mode == Single {
			sl.SetValue(sl.lower)
		} else {
			sl.SetValues(sl.lower, sl.upper)
		}
	}
	return sl
}

// SetTickPosition sets where tick marks are painted.
func (sl *Slider) SetTickPosition(tp TickPositions) *Slider {
	if sl.TickPosition != tp {
		sl.TickPosition = tp
		sl.needsRender = true
	}
	return sl
}

// SetShowLabels sets whether tick labels are painted.
func (sl *Slider) SetShowLabels(show bool) *Slider {
	if sl.ShowLabels != show {
		sl.ShowLabels = show
		sl.needsRender = true
	}
	return sl
}

// SetShowTooltip sets whether a value tooltip is shown while dragging.
func (sl *Slider) SetShowTooltip(show bool) *Slider {
	sl.ShowTooltip = show
	return sl
}

// SetHighContrast sets the high-contrast token preference.
func (sl *Slider) SetHighContrast(hc bool) *Slider {
	if sl.HighContrast != hc {
		sl.HighContrast = hc
		sl.needsRender = true
	}
	return sl
}

// SetShowFocusIndicator sets whether a focus ring is rendered.
func (sl *Slider) SetShowFocusIndicator(show bool) *Slider {
	sl.ShowFocusIndicator = show
	return sl
}

// SetFormat sets the value formatter used for labels and announcements.
func (sl *Slider) SetFormat(f func(v float32) string) *Slider {
	sl.Format = f
	return sl
}

// SetValueText sets the accessible value text override.
func (sl *Slider) SetValueText(text string) *Slider {
	sl.ValueText = text
	return sl
}

// SetLabel sets the accessible name.
func (sl *Slider) SetLabel(label string) *Slider {
	sl.Label = label
	return sl
}

// SetDescription sets the caller-supplied accessible description.
func (sl *Slider) SetDescription(desc string) *Slider {
	sl.Description = desc
	return sl
}

// SetTheme sets the injected theme service.
func (sl *Slider) SetTheme(t *theme.Theme) *Slider {
	sl.Theme = t
	sl.needsRender = true
	return sl
}

// SetAnimator sets the injected animation service.
func (sl *Slider) SetAnimator(a anim.Animator) *Slider {
	sl.Animator = a
	return sl
}

// SetSink sets the live-region sink receiving accessibility
// announcements.
func (sl *Slider) SetSink(snk Sink) *Slider {
	sl.an.sink = snk
	return sl
}

// formatValue formats a value using [Slider.Format] or the default
// formatting: whole numbers without decimals, others with one.
func (sl *Slider) formatValue(v float32) string {
	if sl.Format != nil {
		return sl.Format(v)
	}
	r := math32.Round(v)
	if math32.Abs(v-r) < 1e-4 {
		return strconv.Itoa(int(r))
	}
	return strconv.FormatFloat(float64(v), 'f', 1, 32)
}

// Colors are the theme-resolved colors needed to paint a slider.
type Colors struct {
	Track        color.RGBA
	Progress     color.RGBA
	HandleFill   color.RGBA
	HandleStroke color.RGBA
	Tick         color.RGBA
	Label        color.RGBA
	FocusRing    color.RGBA
}

// StyleColors resolves the slider's paint colors from its theme,
// applying the current state and contrast preference. The handle fill
// reflects pressed and hovered states.
func (sl *Slider) StyleColors() Colors {
	t := sl.Theme
	if t == nil {
		t = theme.Default()
	}
	handleFill := theme.TokenControlFillDefault
	switch {
	case sl.state.Is(states.Sliding):
		handleFill = theme.TokenControlFillTertiary
	case sl.hovered != handleNone:
		handleFill = theme.TokenControlFillSecondary
	}
	return Colors{
		Track:        t.Color(theme.TokenControlStrokeDefault, sl.state, sl.HighContrast),
		Progress:     t.Color(theme.TokenAccent, sl.state, sl.HighContrast),
		HandleFill:   t.Color(handleFill, sl.state, sl.HighContrast),
		HandleStroke: t.Color(theme.TokenControlStrokeDefault, sl.state, sl.HighContrast),
		Tick:         t.Color(theme.TokenTextFillSecondary, sl.state, sl.HighContrast),
		Label:        t.Color(theme.TokenTextFillPrimary, sl.state, sl.HighContrast),
		FocusRing:    t.Color(theme.TokenFocusStroke, sl.state, sl.HighContrast),
	}
}

// trace logs the given event when [TraceEvents] is enabled.
func (sl *Slider) trace(e events.Event) {
	if TraceEvents {
		logx.Debug("slider event", "event", e, "state", sl.state)
	}
}
