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

import "github.com/syedwam7q/MyRiscVOSPy/kerrors"

// List of scheduler tags recognised by NewByTag.
const (
	TagPriority   = "priority"
	TagRoundRobin = "round-robin"
	TagFCFS       = "fcfs"
)

// NewByTag constructs a scheduler by its string tag, forwarding cfg
// (including TimeSlice, for round-robin). Fails UnknownScheduler for any
// tag other than "priority", "round-robin" or "fcfs".
func NewByTag(tag string, host Host, memSize int, cfg Config) (*Base, error) {
	switch tag {
	case TagPriority:
		return NewPriorityScheduler(host, memSize, cfg), nil
	case TagRoundRobin:
		return NewRoundRobinScheduler(host, memSize, cfg), nil
	case TagFCFS:
		return NewFCFSScheduler(host, memSize, cfg), nil
	default:
		return nil, kerrors.New(kerrors.UnknownScheduler, tag)
	}
}
