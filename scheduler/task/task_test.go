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

package task_test

import (
	"testing"

	"github.com/syedwam7q/MyRiscVOSPy/scheduler/task"
)

func TestValidTransitionFromTerminatedIsAlwaysFalse(t *testing.T) {
	for _, to := range []task.State{task.Ready, task.Running, task.Blocked, task.Sleeping, task.Terminated} {
		if task.ValidTransition(task.Terminated, to) {
			t.Errorf("TERMINATED -> %s should never be valid", to)
		}
	}
}

func TestValidTransitionEverythingCanTerminate(t *testing.T) {
	for _, from := range []task.State{task.Ready, task.Running, task.Blocked, task.Sleeping} {
		if !task.ValidTransition(from, task.Terminated) {
			t.Errorf("%s -> TERMINATED should be valid", from)
		}
	}
}

func TestValidTransitionRunningOnlyFromReady(t *testing.T) {
	if !task.ValidTransition(task.Ready, task.Running) {
		t.Error("READY -> RUNNING should be valid")
	}
	if task.ValidTransition(task.Blocked, task.Running) {
		t.Error("BLOCKED -> RUNNING should not be valid")
	}
	if task.ValidTransition(task.Sleeping, task.Running) {
		t.Error("SLEEPING -> RUNNING should not be valid")
	}
}

func TestRegionOverlaps(t *testing.T) {
	a := task.Region{Base: 0x1000, Size: 0x100}
	b := task.Region{Base: 0x1080, Size: 0x100}
	c := task.Region{Base: 0x2000, Size: 0x100}

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
}

func TestAgeNeverGoesBelowOne(t *testing.T) {
	tsk := task.New(1, "t", 1, 0, task.Region{}, 0)
	tsk.Age()
	tsk.Age()
	if tsk.Priority != 1 {
		t.Errorf("Priority = %d, want floor of 1", tsk.Priority)
	}
}

func TestRestoreTowardOriginalConvergesOneStepAtATime(t *testing.T) {
	tsk := task.New(1, "t", 10, 0, task.Region{}, 0)
	tsk.Age()
	tsk.Age()
	tsk.Age() // priority now 7, original still 10

	tsk.RestoreTowardOriginal()
	if tsk.Priority != 8 {
		t.Errorf("Priority = %d, want 8 after one restore step", tsk.Priority)
	}
	tsk.RestoreTowardOriginal()
	tsk.RestoreTowardOriginal()
	if tsk.Priority != tsk.OriginalPriority() {
		t.Errorf("Priority = %d, want to have fully converged to %d", tsk.Priority, tsk.OriginalPriority())
	}
	// converging further should be a no-op
	tsk.RestoreTowardOriginal()
	if tsk.Priority != tsk.OriginalPriority() {
		t.Error("RestoreTowardOriginal should not overshoot the original priority")
	}
}

func TestSetPriorityResetsOriginal(t *testing.T) {
	tsk := task.New(1, "t", 10, 0, task.Region{}, 0)
	tsk.Age()
	tsk.SetPriority(5)
	if tsk.Priority != 5 || tsk.OriginalPriority() != 5 {
		t.Errorf("after SetPriority(5): Priority=%d, OriginalPriority=%d, want both 5", tsk.Priority, tsk.OriginalPriority())
	}
}

func TestSleepBookkeeping(t *testing.T) {
	tsk := task.New(1, "t", 1, 0, task.Region{}, 0)
	if _, sleeping := tsk.SleepUntil(); sleeping {
		t.Fatal("new task should not be sleeping")
	}

	tsk.BeginSleep(42)
	until, sleeping := tsk.SleepUntil()
	if !sleeping || until != 42 {
		t.Errorf("SleepUntil() = (%d, %v), want (42, true)", until, sleeping)
	}

	tsk.WaitTicks = 7
	tsk.EndSleep()
	if _, sleeping := tsk.SleepUntil(); sleeping {
		t.Error("EndSleep should clear the sleeping flag")
	}
	if tsk.WaitTicks != 0 {
		t.Errorf("WaitTicks = %d after EndSleep, want 0", tsk.WaitTicks)
	}
}
