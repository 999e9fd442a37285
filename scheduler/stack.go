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

import (
	"sort"

	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
	"github.com/syedwam7q/MyRiscVOSPy/scheduler/task"
)

// stackAllocator is a bump-with-free-list allocator over a reserved range
// of the hart's address space. It is the sole owner of stack region
// bookkeeping; the scheduler never writes the actual bytes of a stack.
type stackAllocator struct {
	base uint32
	end  uint32 // exclusive
	used []task.Region
}

func newStackAllocator(base, end uint32) *stackAllocator {
	return &stackAllocator{base: base, end: end}
}

// Alloc finds the first gap of at least size bytes and reserves it.
func (a *stackAllocator) Alloc(size uint32) (task.Region, error) {
	sort.Slice(a.used, func(i, j int) bool { return a.used[i].Base < a.used[j].Base })

	cursor := a.base
	for _, r := range a.used {
		if r.Base-cursor >= size {
			region := task.Region{Base: cursor, Size: size}
			a.used = append(a.used, region)
			return region, nil
		}
		if r.End() > cursor {
			cursor = r.End()
		}
	}
	if a.end-cursor >= size {
		region := task.Region{Base: cursor, Size: size}
		a.used = append(a.used, region)
		return region, nil
	}
	return task.Region{}, kerrors.New(kerrors.OutOfMemory, size)
}

// Free releases a previously allocated region.
func (a *stackAllocator) Free(r task.Region) {
	for i, u := range a.used {
		if u.Base == r.Base && u.Size == r.Size {
			a.used = append(a.used[:i], a.used[i+1:]...)
			return
		}
	}
}

// Reset releases every allocation.
func (a *stackAllocator) Reset() { a.used = nil }
