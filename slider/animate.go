// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"time"

	"github.com/fluentkit/fluent/anim"
)

// defaultAnimDuration is the duration of track-click value animations.
const defaultAnimDuration = 250 * time.Millisecond

// optimalCurve returns the easing curve for animated value moves,
// honoring the user's reduced-motion preference.
func (sl *Slider) optimalCurve() anim.Curves {
	return anim.Optimal(sl.RespectMotionPreference && sl.ReducedMotion)
}

// stopAnimations stops and discards any in-flight value animation.
// At most one animation drives the slider's values at a time, so every
// animation start and every drag start goes through here first.
func (sl *Slider) stopAnimations() {
	if sl.valueAnim != nil {
		sl.valueAnim.Stop()
		sl.valueAnim = nil
	}
}

// AnimateToValue moves the value to v over the given duration using
// the optimal easing curve. When animation is disabled or no Animator
// is set, it degrades to an immediate set. Calling it on a disposed
// slider is a safe no-op. The change is announced on completion, and
// only if a value actually changed.
func (sl *Slider) AnimateToValue(v float32, dur time.Duration) {
	if sl.disposed {
		return
	}
	target := sl.applyConstraints(v)
	if !sl.Animated || sl.Animator == nil {
		if sl.commitTo(handleLower, target) {
			sl.an.commit()
		}
		return
	}
	sl.stopAnimations()
	changed := false
	running := true
	a := sl.Animator.Animate(sl.lower, target, dur, sl.optimalCurve(),
		func(x float32) {
			if sl.commitTo(handleLower, sl.applyConstraints(x)) {
				changed = true
			}
		},
		func() {
			running = false
			sl.valueAnim = nil
			if changed {
				sl.an.commit()
			}
		})
	// a synchronous animator completes before we get the handle back
	if running {
		sl.valueAnim = a
	}
}

// AnimateToValues moves both range handles to the given values over
// the given duration, swapping them first if given in reverse order.
// Outside Range mode, or with animation disabled, it degrades like
// [Slider.AnimateToValue]. One animation drives both handles: each
// step commits the interpolated pair atomically, so the handles track
// together and the cross-handle caps never pin one handle against the
// other's stale position. The change is announced once on completion,
// and only if a value actually changed.
func (sl *Slider) AnimateToValues(lower, upper float32, dur time.Duration) {
	if sl.disposed {
		return
	}
	if sl.Mode != Range {
		sl.AnimateToValue(lower, dur)
		return
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	tLo := sl.applyConstraints(lower)
	tHi := sl.applyConstraints(upper)
	if !sl.Animated || sl.Animator == nil {
		if sl.commitBoth(tLo, tHi) {
			sl.an.commit()
		}
		return
	}
	sl.stopAnimations()
	startLo, startHi := sl.lower, sl.upper
	changed := false
	running := true
	a := sl.Animator.Animate(0, 1, dur, sl.optimalCurve(),
		func(x float32) {
			lo := sl.applyConstraints(startLo + (tLo-startLo)*x)
			hi := sl.applyConstraints(startHi + (tHi-startHi)*x)
			// lerping two ordered pairs stays ordered and snapping is
			// monotone, so this is a guard only
			if lo > hi {
				lo, hi = hi, lo
			}
			if sl.commitBoth(lo, hi) {
				changed = true
			}
		},
		func() {
			running = false
			sl.valueAnim = nil
			if changed {
				sl.an.commit()
			}
		})
	// a synchronous animator completes before we get the handle back
	if running {
		sl.valueAnim = a
	}
}
