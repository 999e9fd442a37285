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

package scheduler

import "github.com/syedwam7q/MyRiscVOSPy/scheduler/task"

// fcfsVariant is the non-preemptive First-Come-First-Served scheduler
// from spec section 4.8: a RUNNING task keeps running until it yields
// voluntarily (block/sleep/terminate); the next task is whichever READY
// task has been waiting longest, measured by LastRunTick.
type fcfsVariant struct{}

// NewFCFSScheduler creates a Base running the non-preemptive FCFS policy.
func NewFCFSScheduler(host Host, memSize int, cfg Config) *Base {
	return New(host, memSize, fcfsVariant{}, cfg)
}

func (fcfsVariant) Name() string { return "fcfs" }

func (fcfsVariant) Tick(b *Base) {
	if cur, ok := b.Current(); ok && cur.State == task.Running {
		return // never preempted
	}
	b.contextSwitch(earliestReady(b))
}

// earliestReady returns the READY task with the smallest LastRunTick
// (never-run tasks carry LastRunTick == CreatedTick), ties broken by
// lowest id.
func earliestReady(b *Base) *task.Task {
	var best *task.Task
	for _, t := range b.readyTasks() {
		if best == nil || t.LastRunTick < best.LastRunTick ||
			(t.LastRunTick == best.LastRunTick && t.ID < best.ID) {
			best = t
		}
	}
	return best
}
