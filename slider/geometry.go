// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"image"
	"strconv"

	"github.com/chewxy/math32"
)

// truncate rounds a value to the given number of significant decimal
// digits, removing small floating point noise from pixel mapping.
func truncate(val float32, prec int) float32 {
	if prec <= 0 {
		return val
	}
	frep := strconv.FormatFloat(float64(val), 'g', prec, 32)
	val64, _ := strconv.ParseFloat(frep, 32)
	return float32(val64)
}

// SetSize sets the control's pixel size. Layout is not recomputed
// immediately; it is deferred to the next paint or hit-test so that
// rapid resize sequences do only one recomputation.
func (sl *Slider) SetSize(sz image.Point) *Slider {
	if sl.size != sz {
		sl.size = sz
		sl.layoutDirty = true
		sl.needsRender = true
	}
	return sl
}

// Size returns the control's pixel size.
func (sl *Slider) Size() image.Point { return sl.size }

// axisSize returns the control's extent along the sliding axis.
func (sl *Slider) axisSize() float32 {
	if sl.Orientation == Vertical {
		return float32(sl.size.Y)
	}
	return float32(sl.size.X)
}

// spanSize returns the usable sliding span: the axis extent minus the
// fixed padding reserved at each end for the handle radius.
func (sl *Slider) spanSize() float32 {
	return sl.axisSize() - 2*edgePad
}

// ValueFromPosition projects a pointer position onto the sliding axis
// and maps it to a value: normalized against the usable span, clamped
// to [0, 1], and interpolated into [Min, Max]. The vertical axis is
// inverted (top is maximum). A zero-width range or zero-size control
// maps everything to Min.
func (sl *Slider) ValueFromPosition(p image.Point) float32 {
	span := sl.spanSize()
	if span <= 0 || sl.Max <= sl.Min {
		return sl.Min
	}
	var progress float32
	if sl.Orientation == Vertical {
		progress = (sl.axisSize() - edgePad - float32(p.Y)) / span
	} else {
		progress = (float32(p.X) - edgePad) / span
	}
	progress = clamp32(progress, 0, 1)
	return truncate(sl.Min+progress*(sl.Max-sl.Min), sl.Precision)
}

// PositionFromValue is the inverse of [Slider.ValueFromPosition],
// returning the pixel center of the handle representing the given
// value. The cross-axis coordinate is the control centerline.
func (sl *Slider) PositionFromValue(v float32) image.Point {
	var progress float32
	if sl.Max > sl.Min {
		progress = (sl.clampValue(v) - sl.Min) / (sl.Max - sl.Min)
	}
	span := math32.Max(sl.spanSize(), 0)
	if sl.Orientation == Vertical {
		y := int(math32.Round(sl.axisSize() - edgePad - span*progress))
		return image.Pt(sl.size.X/2, y)
	}
	x := int(math32.Round(edgePad + span*progress))
	return image.Pt(x, sl.size.Y/2)
}

// updateLayout recomputes the track and handle rectangles if they are
// stale. It is called lazily before painting and hit-testing rather
// than on every resize or value change.
func (sl *Slider) updateLayout() {
	if !sl.layoutDirty {
		return
	}
	if sl.Orientation == Vertical {
		x := (sl.size.X - trackThickness) / 2
		sl.track = image.Rect(x, edgePad, x+trackThickness, sl.size.Y-edgePad)
	} else {
		y := (sl.size.Y - trackThickness) / 2
		sl.track = image.Rect(edgePad, y, sl.size.X-edgePad, y+trackThickness)
	}
	sl.lowerHandle = handleBox(sl.PositionFromValue(sl.lower))
	if sl.Mode == Range {
		sl.upperHandle = handleBox(sl.PositionFromValue(sl.upper))
	} else {
		sl.upperHandle = sl.lowerHandle
	}
	sl.layoutDirty = false
}

// handleBox returns the visual bounding box of a handle centered at
// the given point.
func handleBox(c image.Point) image.Rectangle {
	return image.Rect(c.X-handleRadius, c.Y-handleRadius, c.X+handleRadius, c.Y+handleRadius)
}

// TrackRect returns the track rectangle, recomputing layout if needed.
func (sl *Slider) TrackRect() image.Rectangle {
	sl.updateLayout()
	return sl.track
}

// HandleRect returns the bounding box of the lower/single handle, or
// of the upper handle when upper is true.
func (sl *Slider) HandleRect(upper bool) image.Rectangle {
	sl.updateLayout()
	if upper && sl.Mode == Range {
		return sl.upperHandle
	}
	return sl.lowerHandle
}

// manhattan returns the Manhattan length of the vector from a to b,
// the hit-test distance metric for handles.
func manhattan(a, b image.Point) int {
	d := a.Sub(b)
	if d.X < 0 {
		d.X = -d.X
	}
	if d.Y < 0 {
		d.Y = -d.Y
	}
	return d.X + d.Y
}
