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

// Package simulator implements the Simulator Host: it owns the hart's
// register file, memory and interrupt controller, and advances logical
// time one tick at a time. The Host never imports the scheduler package;
// it only knows about a small Scheduler interface, attached with
// SetScheduler, so the two packages can depend on each other's shape
// without an import cycle (the same role hardware/memory.CPUBus plays for
// the teacher codebase this is patterned on).
package simulator

import (
	"github.com/syedwam7q/MyRiscVOSPy/hardware/interrupt"
	"github.com/syedwam7q/MyRiscVOSPy/hardware/memory"
	"github.com/syedwam7q/MyRiscVOSPy/hardware/registers"
	"github.com/syedwam7q/MyRiscVOSPy/logger"
)

// Scheduler is the subset of scheduler.Base that the Host needs to drive
// from Tick. Any concrete scheduler satisfies this by structural typing;
// this package imports no scheduler type.
type Scheduler interface {
	// Tick runs one scheduler pre-pass (wake sleepers, age, schedule and
	// possibly context-switch) for the given logical tick count.
	Tick(tickCount uint64)
	// Reset clears scheduler-owned state (scheduler.Base.Reset clears the
	// whole task table as well; see it for exact semantics).
	Reset()
}

// Host is the Simulator Host described in spec section 4.4.
type Host struct {
	Regs *registers.File
	Mem  *memory.Memory
	IRQ  *interrupt.Controller

	sched Scheduler

	tickCount    uint64
	timerPeriod  int
	timerCounter int
}

// New creates a Host with the given memory size (DefaultSize if <= 0) and
// a default timer period of 1 tick. The standard interrupts (Software,
// Timer, External) are pre-registered with a handler address of 0, so
// Tick's automatic TIMER trigger actually sets a pending bit out of the
// box; callers wire up real handler addresses with a second IRQ.Register
// call once a program is loaded.
func New(memSize int) *Host {
	h := &Host{
		Regs:        &registers.File{},
		Mem:         memory.New(memSize),
		IRQ:         interrupt.New(),
		timerPeriod: 1,
	}
	h.IRQ.Register(interrupt.Software, interrupt.Software, 0, "software")
	h.IRQ.Register(interrupt.Timer, interrupt.Timer, 0, "timer")
	h.IRQ.Register(interrupt.External, interrupt.External, 0, "external")
	return h
}

// SetScheduler attaches the scheduler that Tick drives. Must be called
// before the first Tick.
func (h *Host) SetScheduler(s Scheduler) { h.sched = s }

// SetTimerPeriod configures how many ticks elapse between automatic
// TIMER interrupt triggers. period <= 0 disables the automatic timer.
func (h *Host) SetTimerPeriod(period int) { h.timerPeriod = period }

// TickCount returns the number of ticks elapsed since the last Reset.
func (h *Host) TickCount() uint64 { return h.tickCount }

// LoadProgram writes a sequence of 32-bit words starting at base, in
// little-endian order.
func (h *Host) LoadProgram(words []uint32, base uint32) error {
	for i, w := range words {
		if err := h.Mem.WriteWord(base+uint32(i*4), w); err != nil {
			return err
		}
	}
	return nil
}

// Reset zeroes memory, registers and interrupt pending bits, and notifies
// the attached scheduler to reset.
func (h *Host) Reset() {
	h.Mem.Reset()
	h.Regs.Reset()
	h.IRQ.Reset()
	h.tickCount = 0
	h.timerCounter = 0
	if h.sched != nil {
		h.sched.Reset()
	}
	logger.Log("sim.reset", "simulator reset")
}

// Registers satisfies scheduler.Host so the scheduler can perform context
// switches without this package importing the scheduler package.
func (h *Host) Registers() *registers.File { return h.Regs }

// Tick advances logical time by one, running the per-tick pipeline from
// spec section 5: timer bookkeeping, interrupt dispatch, scheduler
// pre-pass/switch (delegated to the attached Scheduler), then a one-step
// "execution" of whatever is at the current PC.
func (h *Host) Tick() {
	h.tickCount++

	if h.timerPeriod > 0 {
		h.timerCounter++
		if h.timerCounter >= h.timerPeriod {
			h.timerCounter = 0
			_ = h.IRQ.Trigger(interrupt.Timer)
		}
	}

	if irq, ok := h.IRQ.HighestPending(); ok {
		_ = h.IRQ.Clear(irq.ID)
		h.Regs.WritePC(irq.HandlerAddress)
		logger.Logf("irq.dispatch", "interrupt %d dispatched to 0x%08x", irq.ID, irq.HandlerAddress)
	}

	if h.sched != nil {
		h.sched.Tick(h.tickCount)
	}

	h.step()
}

// step executes a single opaque "instruction": read the word at PC (a
// bounds failure is swallowed, per spec section 7, to keep the simulator
// resilient to a corrupted PC) and advance PC by 4, wrapping at 2^32.
func (h *Host) step() {
	pc := h.Regs.PC()
	_, _ = h.Mem.ReadWord(pc)
	h.Regs.WritePC(pc + 4)
}
