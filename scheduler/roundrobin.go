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

// roundRobinVariant is the time-sliced Round-Robin scheduler from spec
// section 4.7: priority is not consulted, tasks rotate in ascending id
// order every Config.TimeSlice ticks.
type roundRobinVariant struct {
	currentSlice int
}

// NewRoundRobinScheduler creates a Base running the Round-Robin policy.
func NewRoundRobinScheduler(host Host, memSize int, cfg Config) *Base {
	return New(host, memSize, &roundRobinVariant{}, cfg)
}

func (v *roundRobinVariant) Name() string { return "round-robin" }

func (v *roundRobinVariant) OnSwitch(b *Base) {
	v.currentSlice = 0
}

func (v *roundRobinVariant) Tick(b *Base) {
	cur, running := b.Current()
	if !running || cur.State != task.Running {
		// current is not RUNNING: dispatch unconditionally, starting the
		// rotation from the smallest ready id.
		b.contextSwitch(firstReady(b))
		return
	}

	v.currentSlice++
	if v.currentSlice < b.cfg.TimeSlice.Get() {
		return
	}

	next := nextReadyAfterID(b, cur.ID)
	if next == nil || next.ID == cur.ID {
		// nobody else is runnable: renew the slice without a switch.
		v.currentSlice = 0
		return
	}
	b.contextSwitch(next)
}

// firstReady returns the READY task with the smallest id, or nil.
func firstReady(b *Base) *task.Task {
	var best *task.Task
	for _, t := range b.readyTasks() {
		if best == nil || t.ID < best.ID {
			best = t
		}
	}
	return best
}

// nextReadyAfterID returns the READY task with the smallest id strictly
// greater than fromID, wrapping around to the smallest READY id overall
// if none is greater. Returns nil if no task is READY.
func nextReadyAfterID(b *Base, fromID int) *task.Task {
	ready := b.readyTasks()
	if len(ready) == 0 {
		return nil
	}

	var after, smallest *task.Task
	for _, t := range ready {
		if smallest == nil || t.ID < smallest.ID {
			smallest = t
		}
		if t.ID > fromID && (after == nil || t.ID < after.ID) {
			after = t
		}
	}
	if after != nil {
		return after
	}
	return smallest
}
