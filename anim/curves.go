// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the animation service that drives scalar
// properties toward target values over time with easing curves.
package anim

// Curves are the easing curves available for animations.
type Curves int32

const (
	// Linear interpolates at a constant rate.
	Linear Curves = iota

	// EaseOutQuad decelerates quadratically. It is the gentler curve
	// used when the user prefers reduced motion.
	EaseOutQuad

	// EaseInOutQuad accelerates then decelerates quadratically.
	EaseInOutQuad

	// EaseOutCubic decelerates cubically, the Fluent standard for
	// entrance motion.
	EaseOutCubic

	// EaseInCubic accelerates cubically.
	EaseInCubic

	// EaseInOutCubic accelerates then decelerates cubically.
	EaseInOutCubic
)

var curveNames = map[Curves]string{
	Linear:         "Linear",
	EaseOutQuad:    "EaseOutQuad",
	EaseInOutQuad:  "EaseInOutQuad",
	EaseOutCubic:   "EaseOutCubic",
	EaseInCubic:    "EaseInCubic",
	EaseInOutCubic: "EaseInOutCubic",
}

func (c Curves) String() string {
	if n, ok := curveNames[c]; ok {
		return n
	}
	return "Linear"
}

// Ease maps normalized time t in [0, 1] through the curve,
// returning the eased progress in [0, 1].
func (c Curves) Ease(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case EaseOutQuad:
		return 1 - (1-t)*(1-t)
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		u := 1 - t
		return 1 - 2*u*u
	case EaseOutCubic:
		u := 1 - t
		return 1 - u*u*u
	case EaseInCubic:
		return t * t * t
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 1 - t
		return 1 - 4*u*u*u
	default:
		return t
	}
}

// Optimal returns the curve to use for value-change animations given
// the user's motion preference: a gentler deceleration when reduced
// motion is requested, the standard ease-out otherwise.
func Optimal(reducedMotion bool) Curves {
	if reducedMotion {
		return EaseOutQuad
	}
	return EaseOutCubic
}
