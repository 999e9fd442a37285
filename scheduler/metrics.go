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

// transitionKey identifies one edge of the task state graph, for the
// histogram in Metrics.
type transitionKey struct {
	From task.State
	To   task.State
}

// Metrics is a read-only, point-in-time copy of the scheduler's running
// counters. It is always returned by value, per the "small plain record...
// exposed by value snapshot, not by shared mutable reference" design note.
type Metrics struct {
	ContextSwitches int
	Preemptions     int
	Transitions     map[string]int
}

type metrics struct {
	contextSwitches int
	preemptions     int
	transitions     map[transitionKey]int
}

func newMetrics() *metrics {
	return &metrics{transitions: make(map[transitionKey]int)}
}

func (m *metrics) bump(from, to task.State) {
	m.transitions[transitionKey{from, to}]++
}

func (m *metrics) snapshot() Metrics {
	out := Metrics{
		ContextSwitches: m.contextSwitches,
		Preemptions:     m.preemptions,
		Transitions:     make(map[string]int, len(m.transitions)),
	}
	for k, v := range m.transitions {
		out.Transitions[k.From.String()+"->"+k.To.String()] = v
	}
	return out
}
