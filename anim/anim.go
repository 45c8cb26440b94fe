// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"sync"
	"time"
)

// Anim is a handle to a running animation.
type Anim interface {
	// Stop permanently stops the animation. The done callback is not
	// called for a stopped animation. Stop is safe to call more than
	// once and after completion.
	Stop()
}

// Animator drives a scalar value from one value to another over a
// duration, calling step with each intermediate value and done once
// on completion.
type Animator interface {
	// Animate starts a new animation. step is called with eased values
	// from the starting value toward to, finishing with exactly to,
	// after which done is called once. done may be nil.
	Animate(from, to float32, dur time.Duration, curve Curves, step func(v float32), done func()) Anim
}

// nopAnim is a completed or degenerate animation handle.
type nopAnim struct{}

func (nopAnim) Stop() {}

// Immediate is an [Animator] that jumps to the target synchronously,
// used when animation is disabled and in tests.
type Immediate struct{}

func (Immediate) Animate(from, to float32, dur time.Duration, curve Curves, step func(v float32), done func()) Anim {
	step(to)
	if done != nil {
		done()
	}
	return nopAnim{}
}

// Ticker is an [Animator] driven by a frame ticker, stepping each
// animation at the given frame rate until its duration elapses.
// Callbacks are invoked from the ticker goroutine; callers that
// require event-loop delivery should funnel in their step function.
type Ticker struct {
	// FPS is the frame rate for animation steps. 60 if zero.
	FPS int
}

// tickerAnim is one running [Ticker] animation.
type tickerAnim struct {
	sync.Mutex
	ticker  *time.Ticker
	stopped bool
}

func (ta *tickerAnim) Stop() {
	ta.Lock()
	defer ta.Unlock()
	if ta.stopped {
		return
	}
	ta.stopped = true
	ta.ticker.Stop()
}

func (tk *Ticker) Animate(from, to float32, dur time.Duration, curve Curves, step func(v float32), done func()) Anim {
	if dur <= 0 {
		step(to)
		if done != nil {
			done()
		}
		return nopAnim{}
	}
	fps := tk.FPS
	if fps <= 0 {
		fps = 60
	}
	ta := &tickerAnim{ticker: time.NewTicker(time.Second / time.Duration(fps))}
	start := time.Now()
	go func() {
		for range ta.ticker.C {
			t := float32(time.Since(start)) / float32(dur)
			last := t >= 1
			v := to
			if !last {
				v = from + (to-from)*curve.Ease(t)
			}
			ta.Lock()
			if ta.stopped {
				ta.Unlock()
				return
			}
			if last {
				ta.stopped = true
				ta.ticker.Stop()
			}
			ta.Unlock()
			step(v)
			if last {
				if done != nil {
					done()
				}
				return
			}
		}
	}()
	return ta
}
