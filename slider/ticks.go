// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/fluentkit/fluent/logx"
	"github.com/jinzhu/copier"
)

// Tick is one marked position along the track, with an optional label.
type Tick struct {

	// Value is the tick position in value units.
	Value float32

	// Label is the optional label text shown next to the tick.
	Label string

	// Major distinguishes major from minor ticks for painting.
	Major bool
}

// searchTick returns the index at which a tick with the given value is
// or would be stored, and whether one is already there (within
// tolerance).
func (sl *Slider) searchTick(value float32) (int, bool) {
	i, found := slices.BinarySearchFunc(sl.ticks, value, func(t Tick, v float32) int {
		if fuzzyEqual(t.Value, v) {
			return 0
		}
		return cmp.Compare(t.Value, v)
	})
	return i, found
}

// AddTick adds a tick, keeping the tick set sorted by value. A tick
// already stored at that value is replaced (last write wins). Ticks
// outside [Min, Max] are ignored.
func (sl *Slider) AddTick(t Tick) *Slider {
	if t.Value < sl.Min || t.Value > sl.Max {
		logx.Debug("slider: ignoring out-of-range tick", "value", t.Value)
		return sl
	}
	i, found := sl.searchTick(t.Value)
	if found {
		sl.ticks[i] = t
	} else {
		sl.ticks = slices.Insert(sl.ticks, i, t)
	}
	sl.layoutDirty = true
	sl.needsRender = true
	return sl
}

// RemoveTick removes the tick at the given value, matched within
// floating point tolerance. Removing a missing tick does nothing.
func (sl *Slider) RemoveTick(value float32) *Slider {
	if i, found := sl.searchTick(value); found {
		sl.ticks = slices.Delete(sl.ticks, i, i+1)
		sl.layoutDirty = true
		sl.needsRender = true
	}
	return sl
}

// ClearTicks removes all explicit ticks.
func (sl *Slider) ClearTicks() *Slider {
	if len(sl.ticks) > 0 {
		sl.ticks = nil
		sl.layoutDirty = true
		sl.needsRender = true
	}
	return sl
}

// SetTicks replaces all explicit ticks with a copy of the given ones.
// Ticks are owned by value: the caller's slice is deep copied, ticks
// out of range are dropped, and duplicate values resolve to the last
// one given.
func (sl *Slider) SetTicks(ticks []Tick) *Slider {
	var own []Tick
	if err := copier.CopyWithOption(&own, &ticks, copier.Option{DeepCopy: true}); err != nil {
		logx.Error("slider: copying ticks", "err", err)
		return sl
	}
	sl.ticks = nil
	for _, t := range own {
		sl.AddTick(t)
	}
	sl.layoutDirty = true
	sl.needsRender = true
	return sl
}

// Ticks returns a copy of the explicit ticks, sorted by value.
func (sl *Slider) Ticks() []Tick {
	var out []Tick
	if err := copier.CopyWithOption(&out, &sl.ticks, copier.Option{DeepCopy: true}); err != nil {
		logx.Error("slider: copying ticks", "err", err)
	}
	return out
}

// autoTickCount returns the number of auto ticks after the one at Min.
func (sl *Slider) autoTickCount() int {
	if sl.TickInterval <= 0 || sl.Max <= sl.Min {
		return 0
	}
	return int(math32.Floor((sl.Max - sl.Min) / sl.TickInterval))
}

// EachTick calls fn for every tick: auto ticks generated on demand
// from [Slider.TickInterval] (labeled with the value formatter, minor)
// followed by the explicit ticks. Auto ticks are never materialized,
// so fine intervals over large ranges cost no memory.
func (sl *Slider) EachTick(fn func(t Tick)) {
	if sl.TickInterval > 0 && sl.Max > sl.Min {
		n := sl.autoTickCount()
		for k := 0; k <= n; k++ {
			v := sl.Min + float32(k)*sl.TickInterval
			fn(Tick{Value: v, Label: sl.formatValue(v)})
		}
	}
	for _, t := range sl.ticks {
		fn(t)
	}
}

// snapCandidates returns the tick values adjacent to v: the nearest
// auto ticks (computed analytically, not by scanning the interval) and
// the explicit ticks bracketing v.
func (sl *Slider) snapCandidates(v float32) []float32 {
	var cands []float32
	if n := sl.autoTickCount(); sl.TickInterval > 0 && sl.Max > sl.Min {
		k := math32.Floor((v - sl.Min) / sl.TickInterval)
		for _, kc := range []float32{k, k + 1} {
			kc = clamp32(kc, 0, float32(n))
			cands = append(cands, sl.Min+kc*sl.TickInterval)
		}
	}
	if n := len(sl.ticks); n > 0 {
		i, _ := sl.searchTick(v)
		if i > 0 {
			cands = append(cands, sl.ticks[i-1].Value)
		}
		if i < n {
			cands = append(cands, sl.ticks[i].Value)
		}
	}
	return cands
}

// SnapValue snaps a value to the nearest tick when any ticks exist
// (explicit or auto), with exact ties going to the lower tick.
// With no ticks at all, it snaps to the nearest multiple of
// [Slider.Step] offset from Min. SnapValue is a pure function of the
// value and the tick configuration; it is applied after range
// clamping, never before.
func (sl *Slider) SnapValue(v float32) float32 {
	cands := sl.snapCandidates(v)
	if len(cands) == 0 {
		if sl.Step <= 0 {
			return v
		}
		steps := math32.Round((v - sl.Min) / sl.Step)
		return sl.clampValue(sl.Min + steps*sl.Step)
	}
	slices.Sort(cands)
	best := cands[0]
	bestDist := math32.Abs(cands[0] - v)
	for _, c := range cands[1:] {
		if d := math32.Abs(c - v); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
