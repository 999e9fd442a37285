// This file is part of MyRiscVOSPy.
//
// MyRiscVOSPy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyRiscVOSPy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyRiscVOSPy.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs provides small atomically-stored preference values. The
// scheduler keeps its tunables (time slice, aging interval, aging
// threshold, aging on/off) in these rather than plain fields so that a CLI
// command running on one goroutine can change policy while a continuous
// tick loop is running on another, without a data race.
package prefs

import "sync/atomic"

// Int is an atomically-stored integer preference.
type Int struct {
	v atomic.Int64
}

// NewInt creates an Int preference with the given initial value.
func NewInt(initial int) *Int {
	p := &Int{}
	p.v.Store(int64(initial))
	return p
}

// Get returns the current value.
func (p *Int) Get() int { return int(p.v.Load()) }

// Set stores a new value.
func (p *Int) Set(v int) { p.v.Store(int64(v)) }

// Bool is an atomically-stored boolean preference.
type Bool struct {
	v atomic.Bool
}

// NewBool creates a Bool preference with the given initial value.
func NewBool(initial bool) *Bool {
	p := &Bool{}
	p.v.Store(initial)
	return p
}

// Get returns the current value.
func (p *Bool) Get() bool { return p.v.Load() }

// Set stores a new value.
func (p *Bool) Set(v bool) { p.v.Store(v) }
