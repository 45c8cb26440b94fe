// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"github.com/chewxy/math32"
	"github.com/fluentkit/fluent/events"
)

// fuzzyEqual returns whether two values are equal within floating
// point tolerance, scaled by magnitude. Value comparisons never use
// exact equality.
func fuzzyEqual(a, b float32) bool {
	scale := math32.Max(1, math32.Max(math32.Abs(a), math32.Abs(b)))
	return math32.Abs(a-b) <= 1e-5*scale
}

// clamp32 clamps v into [lo, hi].
func clamp32(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// Value returns the current value. In Range mode it is the lower value.
func (sl *Slider) Value() float32 { return sl.lower }

// LowerValue returns the current lower value.
func (sl *Slider) LowerValue() float32 { return sl.lower }

// UpperValue returns the current upper value.
func (sl *Slider) UpperValue() float32 { return sl.upper }

// Values returns the current lower and upper values.
func (sl *Slider) Values() (lower, upper float32) { return sl.lower, sl.upper }

// clampValue clamps a value into the slider's range.
func (sl *Slider) clampValue(v float32) float32 {
	return clamp32(v, sl.Min, sl.Max)
}

// applyConstraints clamps a value into range and then snaps it when
// tick snapping is enabled. Snapping always happens after clamping.
func (sl *Slider) applyConstraints(v float32) float32 {
	v = sl.clampValue(v)
	if sl.SnapToTicks {
		v = sl.SnapValue(v)
	}
	return v
}

// commitSingle stores a new single-mode value, keeping both internal
// values equal. It emits one Change event and returns whether the
// value actually changed. The given value must already be constrained.
func (sl *Slider) commitSingle(v float32) bool {
	if fuzzyEqual(sl.lower, v) {
		return false
	}
	sl.lower = v
	sl.upper = v
	sl.valueMoved()
	sl.Send(events.Change)
	return true
}

// commitLower stores a new lower value, additionally capped at the
// current upper value so the handles never cross.
func (sl *Slider) commitLower(v float32) bool {
	if v > sl.upper {
		v = sl.upper
	}
	if fuzzyEqual(sl.lower, v) {
		return false
	}
	sl.lower = v
	sl.valueMoved()
	sl.Send(events.Change)
	return true
}

// commitUpper stores a new upper value, additionally floored at the
// current lower value so the handles never cross.
func (sl *Slider) commitUpper(v float32) bool {
	if v < sl.lower {
		v = sl.lower
	}
	if fuzzyEqual(sl.upper, v) {
		return false
	}
	sl.upper = v
	sl.valueMoved()
	sl.Send(events.Change)
	return true
}

// valueMoved records that handle positions are stale and a repaint is
// needed.
func (sl *Slider) valueMoved() {
	sl.layoutDirty = true
	sl.needsRender = true
}

// SetValue sets the current value, clamping into range and snapping
// when tick snapping is enabled. In Range mode it sets the lower
// value. Setting a value equal (within tolerance) to the current one
// emits no Change event.
func (sl *Slider) SetValue(v float32) *Slider {
	v = sl.applyConstraints(v)
	if sl.Mode == Range {
		sl.commitLower(v)
	} else {
		sl.commitSingle(v)
	}
	return sl
}

// SetLowerValue sets the lower value in Range mode, clamped into range
// and capped at the current upper value.
func (sl *Slider) SetLowerValue(v float32) *Slider {
	if sl.Mode != Range {
		return sl.SetValue(v)
	}
	sl.commitLower(sl.applyConstraints(v))
	return sl
}

// SetUpperValue sets the upper value in Range mode, clamped into range
// and floored at the current lower value.
func (sl *Slider) SetUpperValue(v float32) *Slider {
	if sl.Mode != Range {
		return sl.SetValue(v)
	}
	sl.commitUpper(sl.applyConstraints(v))
	return sl
}

// SetValues sets both values atomically, swapping first if given in
// reverse order. Both values are updated before notification; one
// Change event is emitted per changed field.
func (sl *Slider) SetValues(lower, upper float32) *Slider {
	if sl.Mode != Range {
		return sl.SetValue(lower)
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	sl.commitBoth(sl.applyConstraints(lower), sl.applyConstraints(upper))
	return sl
}

// commitBoth stores an already-constrained, already-ordered value pair
// atomically: both fields update before any notification, then one
// Change event is emitted per changed field.
func (sl *Slider) commitBoth(lower, upper float32) bool {
	lowerChanged := !fuzzyEqual(sl.lower, lower)
	upperChanged := !fuzzyEqual(sl.upper, upper)
	if !lowerChanged && !upperChanged {
		return false
	}
	if lowerChanged {
		sl.lower = lower
	}
	if upperChanged {
		sl.upper = upper
	}
	sl.valueMoved()
	if lowerChanged {
		sl.Send(events.Change)
	}
	if upperChanged {
		sl.Send(events.Change)
	}
	return true
}

// SetRange sets the minimum and maximum, swapping them if given in
// reverse order, and re-clamps the current values into the new range.
// Out-of-range values are a normal condition: they clamp, never error,
// and re-clamping emits no Change events.
func (sl *Slider) SetRange(min, max float32) *Slider {
	if min > max {
		min, max = max, min
	}
	sl.Min = min
	sl.Max = max
	sl.lower = sl.clampValue(sl.lower)
	sl.upper = sl.clampValue(sl.upper)
	sl.valueMoved()
	return sl
}

// SetMin sets the minimum, raising the maximum to it if needed, and
// re-clamps the current values.
func (sl *Slider) SetMin(min float32) *Slider {
	return sl.SetRange(min, math32.Max(min, sl.Max))
}

// SetMax sets the maximum, lowering the minimum to it if needed, and
// re-clamps the current values.
func (sl *Slider) SetMax(max float32) *Slider {
	return sl.SetRange(math32.Min(sl.Min, max), max)
}

// SetMode switches between Single and Range modes. Switching to Range
// seeds the handles to the full [Min, Max] spread, since a single-mode
// slider holds no prior spread. Switching to Single keeps the lower
// value as the value.
func (sl *Slider) SetMode(m Modes) *Slider {
	if sl.Mode == m {
		return sl
	}
	sl.Mode = m
	if m == Range {
		if sl.lower >= sl.upper {
			sl.lower = sl.Min
			sl.upper = sl.Max
		}
	} else {
		sl.upper = sl.lower
	}
	sl.valueMoved()
	return sl
}
