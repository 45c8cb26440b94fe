// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tickValues(sl *Slider) []float32 {
	var vs []float32
	for _, t := range sl.Ticks() {
		vs = append(vs, t.Value)
	}
	return vs
}

func TestAddTickKeepsSorted(t *testing.T) {
	sl := New().
		AddTick(Tick{Value: 50}).
		AddTick(Tick{Value: 10}).
		AddTick(Tick{Value: 90})
	assert.Equal(t, []float32{10, 50, 90}, tickValues(sl))
}

func TestAddTickReplacesDuplicate(t *testing.T) {
	sl := New().
		AddTick(Tick{Value: 50, Label: "old"}).
		AddTick(Tick{Value: 50, Label: "new"})
	ticks := sl.Ticks()
	assert.Len(t, ticks, 1)
	assert.Equal(t, "new", ticks[0].Label)
}

func TestAddTickIgnoresOutOfRange(t *testing.T) {
	sl := New().AddTick(Tick{Value: 150}).AddTick(Tick{Value: -1})
	assert.Empty(t, sl.Ticks())
}

func TestRemoveTick(t *testing.T) {
	sl := New().AddTick(Tick{Value: 10}).AddTick(Tick{Value: 20})
	sl.RemoveTick(10.0000001) // within tolerance
	assert.Equal(t, []float32{20}, tickValues(sl))
	sl.RemoveTick(99) // missing is a no-op
	assert.Equal(t, []float32{20}, tickValues(sl))
}

func TestClearTicks(t *testing.T) {
	sl := New().AddTick(Tick{Value: 10}).ClearTicks()
	assert.Empty(t, sl.Ticks())
}

func TestSetTicksOwnsCopy(t *testing.T) {
	in := []Tick{{Value: 30, Label: "a"}, {Value: 10, Label: "b"}}
	sl := New().SetTicks(in)
	in[0].Label = "mutated"
	in[1].Value = 99
	ticks := sl.Ticks()
	assert.Equal(t, []float32{10, 30}, tickValues(sl))
	assert.Equal(t, "a", ticks[1].Label)

	// returned copies are detached too
	ticks[0].Label = "mutated"
	assert.Equal(t, "b", sl.Ticks()[0].Label)
}

func TestSetTicksDropsOutOfRange(t *testing.T) {
	sl := New().SetTicks([]Tick{{Value: 50}, {Value: 500}})
	assert.Equal(t, []float32{50}, tickValues(sl))
}

func TestEachTickAutoGeneration(t *testing.T) {
	sl := New()
	sl.TickInterval = 25
	sl.AddTick(Tick{Value: 33, Label: "custom"})
	var vs []float32
	sl.EachTick(func(tk Tick) { vs = append(vs, tk.Value) })
	assert.Equal(t, []float32{0, 25, 50, 75, 100, 33}, vs)
}

func TestEachTickNoInterval(t *testing.T) {
	sl := New()
	n := 0
	sl.EachTick(func(tk Tick) { n++ })
	assert.Equal(t, 0, n)
}

func TestSnapToNearestExplicitTick(t *testing.T) {
	sl := New().AddTick(Tick{Value: 10}).AddTick(Tick{Value: 20})
	assert.Equal(t, float32(10), sl.SnapValue(13))
	assert.Equal(t, float32(20), sl.SnapValue(17))
	assert.Equal(t, float32(10), sl.SnapValue(15), "ties go to the lower tick")
}

func TestSnapToAutoTicks(t *testing.T) {
	sl := New()
	sl.TickInterval = 30 // auto ticks at 0, 30, 60, 90
	assert.Equal(t, float32(30), sl.SnapValue(40))
	assert.Equal(t, float32(60), sl.SnapValue(50))
	assert.Equal(t, float32(90), sl.SnapValue(99))
}

func TestSnapMixedTicks(t *testing.T) {
	sl := New().AddTick(Tick{Value: 42})
	sl.TickInterval = 50 // auto ticks at 0, 50, 100
	assert.Equal(t, float32(42), sl.SnapValue(44))
	assert.Equal(t, float32(50), sl.SnapValue(47))
}

func TestSnapStepFallback(t *testing.T) {
	sl := New().SetStep(5)
	assert.Equal(t, float32(10), sl.SnapValue(12.4))
	assert.Equal(t, float32(15), sl.SnapValue(12.6))
	assert.Equal(t, float32(100), sl.SnapValue(100))
}

func TestSnapDeterministic(t *testing.T) {
	sl := New().AddTick(Tick{Value: 10}).AddTick(Tick{Value: 20})
	first := sl.SnapValue(15)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sl.SnapValue(15))
	}
}

func TestSnapOnSetValue(t *testing.T) {
	sl := New()
	sl.TickInterval = 10
	sl.SnapToTicks = true
	sl.SetValue(44)
	assert.Equal(t, float32(40), sl.Value())
	sl.SetValue(46)
	assert.Equal(t, float32(50), sl.Value())
}

func TestEnablingSnapResnapsCurrent(t *testing.T) {
	sl := New().SetValue(44)
	sl.TickInterval = 10
	sl.SetSnapToTicks(true)
	assert.Equal(t, float32(40), sl.Value())
}

func TestSnapAfterClamp(t *testing.T) {
	sl := New()
	sl.TickInterval = 30 // last auto tick at 90
	sl.SnapToTicks = true
	sl.SetValue(500)
	assert.Equal(t, float32(90), sl.Value(), "clamp to 100 first, then snap to 90")
}
