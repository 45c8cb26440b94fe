// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"sync"
	"time"
)

// Sink is the live-region sink receiving accessibility announcement
// text. The platform's assistive-technology bridge relays pushed text;
// an empty string clears the region.
type Sink interface {
	Announce(text string)
}

// announceClearDelay is how long announcement text stays in the live
// region before it is auto-cleared, so stale text never stacks.
const announceClearDelay = 500 * time.Millisecond

// announcer composes the slider's accessibility announcements and
// manages the live-region clear timer. Announcements happen only at
// commit points (drag start/end, key press, track click, animation
// completion), never on intermediate drag frames, so assistive
// technology is not flooded.
type announcer struct {
	control *Slider
	sink    Sink

	// clearDelay overrides announceClearDelay when positive
	clearDelay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	last  string
}

// push sends text to the live region and (re)arms the clear timer.
// Value-changed listeners have already run by the time push is called:
// the announcer always observes post-commit state.
func (an *announcer) push(text string) {
	if an.sink == nil {
		return
	}
	an.mu.Lock()
	an.last = text
	if an.timer != nil {
		an.timer.Stop()
	}
	d := an.clearDelay
	if d <= 0 {
		d = announceClearDelay
	}
	an.timer = time.AfterFunc(d, an.clear)
	an.mu.Unlock()
	an.sink.Announce(text)
}

// clear empties the live region after the clear delay.
func (an *announcer) clear() {
	an.mu.Lock()
	an.last = ""
	an.timer = nil
	an.mu.Unlock()
	an.sink.Announce("")
}

// current returns the text currently in the live region.
func (an *announcer) current() string {
	an.mu.Lock()
	defer an.mu.Unlock()
	return an.last
}

// stop cancels any pending clear timer.
func (an *announcer) stop() {
	an.mu.Lock()
	defer an.mu.Unlock()
	if an.timer != nil {
		an.timer.Stop()
		an.timer = nil
	}
}

// commit announces a committed value change.
func (an *announcer) commit() {
	an.push(an.control.statusText())
}

// pressed announces the start of a handle drag.
func (an *announcer) pressed() {
	an.push("Slider pressed. Current value: " + an.control.valueText())
}

// released announces the end of a handle drag.
func (an *announcer) released() {
	an.push("Slider released. Final value: " + an.control.valueText())
}

// statusText is the live-region text for a committed value change.
// A non-empty [Slider.ValueText] replaces the default phrasing
// entirely.
func (sl *Slider) statusText() string {
	if sl.ValueText != "" {
		return sl.ValueText
	}
	if sl.Mode == Range {
		return fmt.Sprintf("Range: %s to %s", sl.formatValue(sl.lower), sl.formatValue(sl.upper))
	}
	return "Value: " + sl.formatValue(sl.lower)
}

// valueText is the bare formatted value(s), used in the pressed and
// released announcements.
func (sl *Slider) valueText() string {
	if sl.Mode == Range {
		return sl.formatValue(sl.lower) + " to " + sl.formatValue(sl.upper)
	}
	return sl.formatValue(sl.lower)
}

// Announcement returns the text currently in the live region, empty
// once the clear delay has elapsed. Hosts attaching a live region late
// can query it instead of waiting for the next push.
func (sl *Slider) Announcement() string {
	return sl.an.current()
}

// AccessibleDescription returns the persistent description of the
// slider for on-demand screen reader queries, always reflecting the
// current value(s) and range, independent of the transient live
// region. Any caller-supplied [Slider.Description] is prepended.
func (sl *Slider) AccessibleDescription() string {
	res := sl.Description
	if res != "" {
		res += " "
	}
	if sl.Mode == Range {
		return res + fmt.Sprintf("(range: %s to %s, minimum: %s, maximum: %s)",
			sl.formatValue(sl.lower), sl.formatValue(sl.upper),
			sl.formatValue(sl.Min), sl.formatValue(sl.Max))
	}
	return res + fmt.Sprintf("(value: %s, minimum: %s, maximum: %s)",
		sl.formatValue(sl.lower), sl.formatValue(sl.Min), sl.formatValue(sl.Max))
}
