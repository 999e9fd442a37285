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

// Package interrupt implements the hart's interrupt controller: a small
// registration table of known interrupts plus a pending bitset, with
// priority-ordered dispatch (lowest id wins ties).
package interrupt

import (
	"sort"

	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
)

// Standard interrupt ids, by convention also their priority (lower wins).
const (
	Software = 3
	Timer    = 7
	External = 11
)

// Interrupt describes a single registered interrupt source.
type Interrupt struct {
	ID             int
	Priority       int
	HandlerAddress uint32
	Description    string
	Pending        bool
}

// Controller tracks registered interrupts and their pending state.
type Controller struct {
	table   map[int]*Interrupt
	enabled bool
}

// New creates a Controller with interrupts enabled by default.
func New() *Controller {
	return &Controller{
		table:   make(map[int]*Interrupt),
		enabled: true,
	}
}

// Register adds or replaces an interrupt definition. Registering an
// already-registered id redefines it and clears its pending state.
func (c *Controller) Register(id, priority int, handlerAddress uint32, description string) {
	c.table[id] = &Interrupt{
		ID:             id,
		Priority:       priority,
		HandlerAddress: handlerAddress,
		Description:    description,
	}
}

// Trigger sets id's pending bit. Fails with UnknownInterrupt if id has not
// been registered.
func (c *Controller) Trigger(id int) error {
	irq, ok := c.table[id]
	if !ok {
		return kerrors.New(kerrors.UnknownInterrupt, id)
	}
	irq.Pending = true
	return nil
}

// Clear clears id's pending bit. Fails with UnknownInterrupt if id has not
// been registered.
func (c *Controller) Clear(id int) error {
	irq, ok := c.table[id]
	if !ok {
		return kerrors.New(kerrors.UnknownInterrupt, id)
	}
	irq.Pending = false
	return nil
}

// HasPending reports whether any interrupt is both registered, pending and
// the controller is enabled.
func (c *Controller) HasPending() bool {
	if !c.enabled {
		return false
	}
	_, ok := c.HighestPending()
	return ok
}

// HighestPending returns the pending interrupt with the lowest priority
// value, ties broken by lowest id. Returns ok=false if disabled or nothing
// is pending.
func (c *Controller) HighestPending() (Interrupt, bool) {
	if !c.enabled {
		return Interrupt{}, false
	}

	ids := make([]int, 0, len(c.table))
	for id, irq := range c.table {
		if irq.Pending {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Interrupt{}, false
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.table[ids[i]], c.table[ids[j]]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})
	return *c.table[ids[0]], true
}

// Enable turns interrupt dispatch on.
func (c *Controller) Enable() { c.enabled = true }

// Disable turns interrupt dispatch off. While disabled, HasPending always
// reports false and no dispatch occurs.
func (c *Controller) Disable() { c.enabled = false }

// Reset clears all pending bits but keeps registrations.
func (c *Controller) Reset() {
	for _, irq := range c.table {
		irq.Pending = false
	}
}
