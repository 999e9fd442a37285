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

// Package scheduler implements the task table and the behaviour shared by
// every scheduling policy: create/terminate/block/unblock/sleep, context
// switching against a simulated hart, priority aging, sleep wakeup and
// metrics. The three concrete policies (Priority, RoundRobin, FCFS) are
// modelled as a small Variant capability, not a class hierarchy, per the
// "Scheduler polymorphism... composition + a small trait/interface"
// design note.
package scheduler

import (
	"sort"

	"github.com/syedwam7q/MyRiscVOSPy/hardware/registers"
	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
	"github.com/syedwam7q/MyRiscVOSPy/logger"
	"github.com/syedwam7q/MyRiscVOSPy/scheduler/task"
)

// Host is the narrow, non-owning handle the scheduler uses to reach the
// hart's register file during a context switch. Any *simulator.Host
// satisfies this by structural typing; this package never imports
// hardware/simulator, mirroring the teacher's memory.CPUBus/bus.CPUBus
// pattern for breaking what would otherwise be an import cycle.
type Host interface {
	Registers() *registers.File
}

// Variant supplies the one piece of behaviour that differs between
// scheduling policies: how to pick (and possibly switch to) the next
// task, given the task table's current state. Tick is called after the
// base has already run its wakeup and aging pre-pass.
type Variant interface {
	Name() string
	Tick(b *Base)
}

// switchObserver is implemented by variants that need to react to every
// context switch (round-robin resets its slice counter). Implementing it
// is optional: Base only calls it via a type assertion.
type switchObserver interface {
	OnSwitch(b *Base)
}

// stackAreaBase is where the scheduler's stack allocator starts reserving
// space, leaving the low end of the address space free for program code
// and data loaded by LoadProgram.
const stackAreaBase = 0x10000

// Base is the task table and behaviour shared by every scheduler variant.
type Base struct {
	host    Host
	variant Variant
	cfg     Config

	tasks   map[int]*task.Task
	nextID  int
	current *task.Task

	tickCount uint64
	stacks    *stackAllocator
	metrics   *metrics
}

// New creates a Base wired to host, bounding its stack allocator by
// memSize, running the given variant, with the given config.
func New(host Host, memSize int, variant Variant, cfg Config) *Base {
	return &Base{
		host:    host,
		variant: variant,
		cfg:     cfg,
		tasks:   make(map[int]*task.Task),
		nextID:  1,
		stacks:  newStackAllocator(stackAreaBase, uint32(memSize)),
		metrics: newMetrics(),
	}
}

// SchedulerType returns a human string identifying the running variant.
func (b *Base) SchedulerType() string { return b.variant.Name() }

// CreateTask allocates the next id, reserves a stack region and returns a
// new READY task. stackSize <= 0 defaults to 1024.
func (b *Base) CreateTask(name string, priority int, entryPoint uint32, stackSize int) (*task.Task, error) {
	if priority < 1 || priority > 32 {
		return nil, kerrors.New(kerrors.InvalidPriority, priority)
	}
	if stackSize <= 0 {
		stackSize = 1024
	}
	region, err := b.stacks.Alloc(uint32(stackSize))
	if err != nil {
		return nil, err
	}

	id := b.nextID
	b.nextID++
	t := task.New(id, name, priority, entryPoint, region, b.tickCount)
	b.tasks[id] = t

	logger.Logf("task.create", "#%d %q prio=%d entry=0x%08x stack=[0x%x,0x%x)", id, name, priority, entryPoint, region.Base, region.End())
	return t, nil
}

func (b *Base) lookup(id int) (*task.Task, error) {
	t, ok := b.tasks[id]
	if !ok {
		return nil, kerrors.New(kerrors.UnknownTask, id)
	}
	return t, nil
}

// Terminate marks a task TERMINATED and frees its stack region. Idempotent.
func (b *Base) Terminate(id int) error {
	t, err := b.lookup(id)
	if err != nil {
		return err
	}
	if t.State == task.Terminated {
		return nil
	}
	if b.current == t {
		b.current = nil
	}
	b.stacks.Free(t.Stack)
	b.transition(t, task.Terminated)
	return nil
}

// Block moves a READY or RUNNING task to BLOCKED. A no-op if already
// BLOCKED; fails BadState otherwise (including TERMINATED).
func (b *Base) Block(id int) error {
	t, err := b.lookup(id)
	if err != nil {
		return err
	}
	if t.State == task.Blocked {
		return nil
	}
	if t.State != task.Ready && t.State != task.Running {
		return kerrors.New(kerrors.BadState, id, "block from "+t.State.String())
	}
	if b.current == t {
		b.current = nil
	}
	b.transition(t, task.Blocked)
	return nil
}

// Unblock moves a BLOCKED task to READY, resetting WaitTicks. A no-op if
// already READY; fails BadState otherwise.
func (b *Base) Unblock(id int) error {
	t, err := b.lookup(id)
	if err != nil {
		return err
	}
	if t.State == task.Ready {
		return nil
	}
	if t.State != task.Blocked {
		return kerrors.New(kerrors.BadState, id, "unblock from "+t.State.String())
	}
	t.ResetWait()
	b.transition(t, task.Ready)
	return nil
}

// Sleep moves a READY or RUNNING task to SLEEPING until tickCount+ticks.
// ticks <= 0 is equivalent to an immediate transition to READY.
func (b *Base) Sleep(id int, ticks int) error {
	t, err := b.lookup(id)
	if err != nil {
		return err
	}
	if t.State != task.Ready && t.State != task.Running {
		return kerrors.New(kerrors.BadState, id, "sleep from "+t.State.String())
	}
	if b.current == t {
		b.current = nil
	}
	if ticks <= 0 {
		b.transition(t, task.Ready)
		return nil
	}
	t.BeginSleep(b.tickCount + uint64(ticks))
	b.transition(t, task.Sleeping)
	return nil
}

// SetPriority sets both the current and original priority of a task. It
// does not change state.
func (b *Base) SetPriority(id int, priority int) error {
	t, err := b.lookup(id)
	if err != nil {
		return err
	}
	if priority < 1 || priority > 32 {
		return kerrors.New(kerrors.InvalidPriority, priority)
	}
	t.SetPriority(priority)
	return nil
}

// Tasks returns a snapshot slice of every task, ordered by id.
func (b *Base) Tasks() []*task.Task {
	out := make([]*task.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Current returns the RUNNING task, if any.
func (b *Base) Current() (*task.Task, bool) {
	if b.current == nil {
		return nil, false
	}
	return b.current, true
}

// Metrics returns a value snapshot of the running counters.
func (b *Base) Metrics() Metrics { return b.metrics.snapshot() }

// TickCount returns the scheduler's view of logical time.
func (b *Base) TickCount() uint64 { return b.tickCount }

// Tick runs the per-tick scheduler pre-pass (wake sleepers, apply aging),
// delegates to the variant to schedule/switch, then bumps the dispatched
// task's run_count bookkeeping for this tick. Called by the Simulator
// Host once per Host.Tick, after interrupt dispatch. run_count counts
// ticks spent RUNNING, not dispatches: a task that keeps the hart across
// several ticks (FCFS, or round-robin within one time slice) accrues one
// per tick, not one per contextSwitch.
func (b *Base) Tick(tickCount uint64) {
	b.tickCount = tickCount
	b.wakeSleepers()
	b.applyAging()
	b.variant.Tick(b)
	if b.current != nil {
		b.current.RunCount++
	}
}

// Reset clears the entire task table, current task, metrics and stack
// allocator, as if a fresh run were starting.
func (b *Base) Reset() {
	b.tasks = make(map[int]*task.Task)
	b.nextID = 1
	b.current = nil
	b.tickCount = 0
	b.stacks.Reset()
	b.metrics = newMetrics()
	logger.Log("sched.reset", "scheduler reset")
}

func (b *Base) wakeSleepers() {
	for _, t := range b.tasks {
		if t.State != task.Sleeping {
			continue
		}
		if until, ok := t.SleepUntil(); ok && b.tickCount >= until {
			t.EndSleep()
			b.transition(t, task.Ready)
		}
	}
}

func (b *Base) applyAging() {
	if !b.cfg.AgingEnabled.Get() {
		return
	}
	for _, t := range b.tasks {
		if t.State == task.Ready {
			t.WaitTicks++
		}
	}

	interval := b.cfg.AgingInterval.Get()
	if interval <= 0 || b.tickCount%uint64(interval) != 0 {
		return
	}
	threshold := b.cfg.AgingThreshold.Get()
	for _, t := range b.tasks {
		if t.State == task.Ready && t.WaitTicks >= threshold {
			t.Age()
			t.WaitTicks = 0
		}
	}
}

// transition moves t to state "to", updating the metrics histogram and
// logging the edge.
func (b *Base) transition(t *task.Task, to task.State) {
	from := t.State
	t.State = to
	b.metrics.bump(from, to)
	logger.Logf("task.transition", "#%d %s -> %s", t.ID, from, to)
}

// readyTasks returns every READY task, for use by variants.
func (b *Base) readyTasks() []*task.Task {
	out := make([]*task.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if t.State == task.Ready {
			out = append(out, t)
		}
	}
	return out
}

// contextSwitch performs the save/restore dance described in spec section
// 4.5. next may be nil, in which case the hart's CPU state is left as-is
// but the current task is cleared (idle).
func (b *Base) contextSwitch(next *task.Task) {
	prev := b.current
	regs := b.host.Registers()

	if prev != nil && prev.State == task.Running {
		snap := regs.Snapshot()
		prev.Regs = task.RegSnapshot{X: snap.X, PC: snap.PC}
		b.transition(prev, task.Ready)
	}

	if next == nil {
		b.current = nil
		if prev != nil {
			// there was something to switch away from; count it even
			// though the hart goes idle rather than to another task.
			b.metrics.contextSwitches++
			if so, ok := b.variant.(switchObserver); ok {
				so.OnSwitch(b)
			}
		}
		return
	}

	if next.RunCount == 0 {
		regs.Reset()
		regs.WritePC(next.EntryPoint)
		regs.Write(2, next.Stack.End()) // x2 == sp, per the RISC-V ABI alias table
	} else {
		regs.Restore(registers.Snapshot{X: next.Regs.X, PC: next.Regs.PC})
	}

	if b.cfg.AgingEnabled.Get() {
		next.RestoreTowardOriginal()
	}

	b.transition(next, task.Running)
	next.LastRunTick = b.tickCount
	b.current = next

	b.metrics.contextSwitches++
	logger.Logf("sched.switch", "dispatched #%d (%s)", next.ID, next.Name)

	if so, ok := b.variant.(switchObserver); ok {
		so.OnSwitch(b)
	}
}
