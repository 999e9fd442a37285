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

// Package task defines the Task type and its lifecycle state machine.
// The State type and its transition rules are patterned on the teacher's
// debugger/govern.State: a closed enum with a String() method and a
// separate integrity check, rather than a class hierarchy per state.
package task

import "fmt"

// State is a task's lifecycle state.
type State int

// List of possible task states.
const (
	Ready State = iota
	Running
	Blocked
	Sleeping
	Terminated
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Sleeping:
		return "SLEEPING"
	case Terminated:
		return "TERMINATED"
	}
	return "UNKNOWN"
}

// ValidTransition reports whether moving from "from" to "to" is one the
// scheduler ever performs. It does not replace the scheduler's own
// bad-state checks (those also depend on *which* operation was called);
// it exists as a single place documenting the reachable edges of the
// state graph from spec section 3.
func ValidTransition(from, to State) bool {
	if from == Terminated {
		return false // terminal; never scheduled again
	}
	switch to {
	case Ready:
		return from == Running || from == Blocked || from == Sleeping
	case Running:
		return from == Ready
	case Blocked:
		return from == Ready || from == Running
	case Sleeping:
		return from == Ready || from == Running
	case Terminated:
		return true
	}
	return false
}

// Region is the memory range [Base, Base+Size) reserved for a task's
// stack.
type Region struct {
	Base uint32
	Size uint32
}

// End returns the exclusive end address of the region.
func (r Region) End() uint32 { return r.Base + r.Size }

// Overlaps reports whether r and other share any address.
func (r Region) Overlaps(other Region) bool {
	return r.Base < other.End() && other.Base < r.End()
}

// RegSnapshot is the saved register state of a task while it is not
// RUNNING. It mirrors registers.Snapshot without this package depending
// on the registers package's concrete layout beyond what it needs to
// store and hand back verbatim.
type RegSnapshot struct {
	X  [32]uint32
	PC uint32
}

// Task is a single schedulable unit, per spec section 3.
type Task struct {
	ID       int
	Name     string
	Priority int // current priority, [1,32], lower is higher priority
	original int // original priority, preserved so aging can be reverted

	State State

	EntryPoint uint32
	Stack      Region

	Regs RegSnapshot

	sleepUntil uint64
	sleeping   bool

	WaitTicks   int
	RunCount    int
	LastRunTick uint64
	CreatedTick uint64
}

// New creates a Task in the READY state. It does not validate priority or
// allocate the stack region; the scheduler's create_task does both before
// calling this.
func New(id int, name string, priority int, entry uint32, stack Region, createdTick uint64) *Task {
	return &Task{
		ID:          id,
		Name:        name,
		Priority:    priority,
		original:    priority,
		State:       Ready,
		EntryPoint:  entry,
		Stack:       stack,
		LastRunTick: createdTick,
		CreatedTick: createdTick,
	}
}

// OriginalPriority returns the priority recorded at creation (or at the
// last explicit SetPriority), used to restore an aged task.
func (t *Task) OriginalPriority() int { return t.original }

// SetPriority sets both the current and original priority.
func (t *Task) SetPriority(p int) {
	t.Priority = p
	t.original = p
}

// RestoreTowardOriginal moves Priority one step toward original, used on
// dispatch so a temporarily-aged task gradually loses its boost.
func (t *Task) RestoreTowardOriginal() {
	if t.Priority < t.original {
		t.Priority++
	} else if t.Priority > t.original {
		t.Priority--
	}
}

// Age lowers Priority by one, never below 1.
func (t *Task) Age() {
	if t.Priority > 1 {
		t.Priority--
	}
}

// SleepUntil returns the tick at which a SLEEPING task becomes READY, and
// whether sleepUntil is actually defined (i.e. the task is SLEEPING). The
// scheduler, not Task, owns State transitions; these bookkeeping-only
// methods keep the invariant "sleepUntil is defined iff State ==
// Sleeping" enforceable in one place without making State part of a
// sum-type payload.
func (t *Task) SleepUntil() (uint64, bool) { return t.sleepUntil, t.sleeping }

// BeginSleep records the wake-up tick. The caller is responsible for also
// setting State = Sleeping.
func (t *Task) BeginSleep(wakeAt uint64) {
	t.sleepUntil = wakeAt
	t.sleeping = true
}

// EndSleep clears the sleep deadline and resets WaitTicks. The caller is
// responsible for also setting State = Ready.
func (t *Task) EndSleep() {
	t.sleepUntil = 0
	t.sleeping = false
	t.WaitTicks = 0
}

// ResetWait zeroes WaitTicks without touching the sleep deadline, used by
// unblock.
func (t *Task) ResetWait() { t.WaitTicks = 0 }

func (t *Task) String() string {
	return fmt.Sprintf("#%d %q prio=%d state=%s pc=0x%08x runs=%d",
		t.ID, t.Name, t.Priority, t.State, t.Regs.PC, t.RunCount)
}
