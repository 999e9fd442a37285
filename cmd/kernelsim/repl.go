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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/syedwam7q/MyRiscVOSPy/clock"
	"github.com/syedwam7q/MyRiscVOSPy/hardware/simulator"
	"github.com/syedwam7q/MyRiscVOSPy/scheduler"
)

// repl is the command-line front end described in the external interface
// section of the design: a flat set of verbs, no sub-modes, read one line
// at a time. It owns nothing the hardware/scheduler packages don't
// already own; it only translates text to calls and calls to text.
type repl struct {
	host  *simulator.Host
	sched *scheduler.Base
	loop  *clock.Loop

	in  *bufio.Scanner
	out io.Writer

	memSize int
	cfg     scheduler.Config

	running bool
}

func newRepl(host *simulator.Host, sched *scheduler.Base, loop *clock.Loop, in io.Reader, out io.Writer) *repl {
	return &repl{
		host:    host,
		sched:   sched,
		loop:    loop,
		in:      bufio.NewScanner(in),
		out:     out,
		memSize: host.Mem.Size(),
		cfg:     scheduler.DefaultConfig(),
		running: true,
	}
}

func (r *repl) run() error {
	fmt.Fprintln(r.out, "MyRiscVOSPy kernel simulator. type EXIT to quit, HELP for a command list.")
	for r.running {
		fmt.Fprint(r.out, "kernelsim> ")
		if !r.in.Scan() {
			break
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		r.dispatch(line)
	}
	return r.in.Err()
}

func (r *repl) dispatch(line string) {
	fields := strings.Fields(line)
	cmd := strings.ToUpper(fields[0])
	args := fields[1:]

	if notImplemented[cmd] {
		fmt.Fprintf(r.out, "* %s is not implemented\n", cmd)
		return
	}

	// start/stop/step/continue drive the clock loop itself, which already
	// takes loop.mu around every tick and around Start/Stop/Step; every
	// other command reads or writes scheduler/host state directly from
	// the REPL goroutine and must take that same lock so none of it runs
	// concurrently with a tick in progress (SPEC_FULL.md's ordering
	// guarantees, clock.Loop's documented purpose for exposing Lock/Unlock).
	switch cmd {
	case cmdStart:
		r.loop.Start()
		fmt.Fprintln(r.out, "clock started")
	case cmdStop:
		r.loop.Stop()
		fmt.Fprintln(r.out, "clock stopped")
	case cmdStep:
		r.loop.Step()
		r.loop.Lock()
		tick := r.host.TickCount()
		r.loop.Unlock()
		fmt.Fprintf(r.out, "tick %d\n", tick)
	case cmdContinue:
		r.continueUntilKey()
	case cmdListSchedulers:
		fmt.Fprintln(r.out, scheduler.TagPriority, scheduler.TagRoundRobin, scheduler.TagFCFS)
	case cmdExit:
		r.running = false
	case "HELP":
		r.help()
	case cmdStatus:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.status()
	case cmdTasks:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.tasks()
	case cmdTaskInfo:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.taskInfo(args)
	case cmdCreate:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.create(args)
	case cmdTerminate:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.withTaskID(args, r.sched.Terminate, "terminated")
	case cmdBlock:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.withTaskID(args, r.sched.Block, "blocked")
	case cmdUnblock:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.withTaskID(args, r.sched.Unblock, "unblocked")
	case cmdSleep:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.sleep(args)
	case cmdPriority:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.priority(args)
	case cmdRegisters:
		r.loop.Lock()
		defer r.loop.Unlock()
		fmt.Fprint(r.out, r.host.Regs.String())
	case cmdMemory:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.memory(args)
	case cmdMetrics:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.metrics()
	case cmdSelectScheduler:
		// selectScheduler stops the loop itself (which takes loop.mu on
		// its own) before swapping the scheduler, so it must not be
		// called under this lock too -- Stop() would deadlock against
		// itself.
		r.selectScheduler(args)
	case cmdReset:
		r.loop.Lock()
		defer r.loop.Unlock()
		r.host.Reset()
		fmt.Fprintln(r.out, "reset")
	default:
		fmt.Fprintf(r.out, "* unknown command %q\n", fields[0])
	}
}

func (r *repl) help() {
	fmt.Fprintln(r.out, "start stop status tasks task_info create terminate block unblock")
	fmt.Fprintln(r.out, "sleep priority registers memory metrics step continue")
	fmt.Fprintln(r.out, "select_scheduler list_schedulers reset exit")
}

func (r *repl) status() {
	fmt.Fprintf(r.out, "scheduler: %s  tick: %d  running: %v\n", r.sched.SchedulerType(), r.host.TickCount(), r.loop.Running())
	if cur, ok := r.sched.Current(); ok {
		fmt.Fprintf(r.out, "current: %s\n", cur)
	} else {
		fmt.Fprintln(r.out, "current: <idle>")
	}
}

func (r *repl) tasks() {
	for _, t := range r.sched.Tasks() {
		fmt.Fprintln(r.out, t)
	}
}

func (r *repl) taskInfo(args []string) {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	for _, t := range r.sched.Tasks() {
		if t.ID == id {
			fmt.Fprintln(r.out, t)
			return
		}
	}
	fmt.Fprintf(r.out, "* no such task: %d\n", id)
}

func (r *repl) create(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(r.out, "* usage: create <name> <priority> <entry-hex> [stack-size]")
		return
	}
	name := args[0]
	priority, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "* bad priority: %v\n", err)
		return
	}
	entry, err := strconv.ParseUint(strings.TrimPrefix(args[2], "0x"), 16, 32)
	if err != nil {
		fmt.Fprintf(r.out, "* bad entry point: %v\n", err)
		return
	}
	stackSize := 0
	if len(args) > 3 {
		stackSize, err = strconv.Atoi(args[3])
		if err != nil {
			fmt.Fprintf(r.out, "* bad stack size: %v\n", err)
			return
		}
	}
	t, err := r.sched.CreateTask(name, priority, uint32(entry), stackSize)
	if err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	fmt.Fprintln(r.out, t)
}

func (r *repl) withTaskID(args []string, op func(int) error, verb string) {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	if err := op(id); err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "#%d %s\n", id, verb)
}

func (r *repl) sleep(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "* usage: sleep <id> <ticks>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "* bad task id: %v\n", err)
		return
	}
	ticks, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "* bad tick count: %v\n", err)
		return
	}
	if err := r.sched.Sleep(id, ticks); err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "#%d sleeping for %d ticks\n", id, ticks)
}

func (r *repl) priority(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "* usage: priority <id> <value>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "* bad task id: %v\n", err)
		return
	}
	p, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "* bad priority: %v\n", err)
		return
	}
	if err := r.sched.SetPriority(id, p); err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "#%d priority set to %d\n", id, p)
}

func (r *repl) memory(args []string) {
	addr := uint32(0)
	length := 64
	if len(args) > 0 {
		a, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
		if err != nil {
			fmt.Fprintf(r.out, "* bad address: %v\n", err)
			return
		}
		addr = uint32(a)
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(r.out, "* bad length: %v\n", err)
			return
		}
		length = n
	}
	dump, err := r.host.Mem.Dump(addr, length)
	if err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	fmt.Fprint(r.out, dump)
}

func (r *repl) metrics() {
	m := r.sched.Metrics()
	fmt.Fprintf(r.out, "context switches: %d  preemptions: %d\n", m.ContextSwitches, m.Preemptions)
	for edge, count := range m.Transitions {
		fmt.Fprintf(r.out, "  %s: %d\n", edge, count)
	}
}

// continueUntilKey runs the clock continuously and stops as soon as a
// single key is pressed, without requiring Enter. Falls back to a
// line-buffered "press enter to pause" prompt if stdin is not a real
// terminal.
func (r *repl) continueUntilKey() {
	kw := newKeyWaiter(os.Stdin)
	if kw.Enabled() {
		fmt.Fprintln(r.out, "running; press any key to pause")
		kw.Enter()
		defer kw.Restore()
	} else {
		fmt.Fprintln(r.out, "running; press enter to pause")
	}

	r.loop.Start()

	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)

	r.loop.Stop()
	fmt.Fprintf(r.out, "paused at tick %d\n", r.host.TickCount())
}

func (r *repl) selectScheduler(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "* usage: select_scheduler <priority|round-robin|fcfs>")
		return
	}
	r.loop.Stop()

	r.loop.Lock()
	defer r.loop.Unlock()

	next, err := scheduler.NewByTag(strings.ToLower(args[0]), r.host, r.memSize, r.cfg)
	if err != nil {
		fmt.Fprintf(r.out, "* %v\n", err)
		return
	}
	r.sched = next
	r.host.SetScheduler(next)
	fmt.Fprintf(r.out, "scheduler switched to %s (task table reset)\n", next.SchedulerType())
}

func parseTaskID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("usage: <command> <task-id>")
	}
	return strconv.Atoi(args[0])
}
