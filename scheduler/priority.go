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

// priorityVariant is the preemptive Priority scheduler from spec section
// 4.6: always runs the READY task with the lowest current priority
// value, preempting the running task the instant a strictly
// higher-priority task becomes READY.
type priorityVariant struct{}

// NewPriorityScheduler creates a Base running the preemptive Priority
// policy.
func NewPriorityScheduler(host Host, memSize int, cfg Config) *Base {
	return New(host, memSize, priorityVariant{}, cfg)
}

func (priorityVariant) Name() string { return "priority" }

func (priorityVariant) Tick(b *Base) {
	best := lowestPriorityReady(b)

	if cur, ok := b.Current(); ok && cur.State == task.Running {
		if best != nil && best.Priority < cur.Priority {
			b.contextSwitch(best)
			b.metrics.preemptions++
		}
		return
	}

	// current is not RUNNING (never dispatched, or just blocked/slept/
	// terminated this tick) -- unconditionally pick a replacement, which
	// may be nil (idle).
	b.contextSwitch(best)
}

// lowestPriorityReady returns the READY task with the lowest current
// priority value, ties broken by lowest id, or nil if none are READY.
func lowestPriorityReady(b *Base) *task.Task {
	var best *task.Task
	for _, t := range b.readyTasks() {
		if best == nil || t.Priority < best.Priority ||
			(t.Priority == best.Priority && t.ID < best.ID) {
			best = t
		}
	}
	return best
}
