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
	"flag"
	"fmt"
	"os"

	"github.com/syedwam7q/MyRiscVOSPy/clock"
	"github.com/syedwam7q/MyRiscVOSPy/hardware/simulator"
	"github.com/syedwam7q/MyRiscVOSPy/logger"
	"github.com/syedwam7q/MyRiscVOSPy/scheduler"
)

func main() {
	schedTag := flag.String("scheduler", scheduler.TagPriority, "scheduling policy: priority, round-robin, fcfs")
	timeSlice := flag.Int("time-slice", 10, "ticks per time slice, round-robin only")
	memSize := flag.Int("mem", 1<<20, "simulated memory size in bytes")
	debug := flag.Bool("debug", false, "echo the debugging log to stdout")
	noSampleTasks := flag.Bool("no-sample-tasks", false, "start with an empty task table instead of the sample workload")
	flag.Parse()

	if *debug {
		logger.SetEcho(true)
	}

	cfg := scheduler.DefaultConfig()
	cfg.TimeSlice.Set(*timeSlice)

	host := simulator.New(*memSize)
	sched, err := scheduler.NewByTag(*schedTag, host, *memSize, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
	host.SetScheduler(sched)

	if !*noSampleTasks {
		seedSampleTasks(sched)
	}

	maybeLaunchMonitor(os.Stdout, sched, *debug)

	loop := clock.New(host, 0)

	r := newRepl(host, sched, loop, os.Stdin, os.Stdout)
	if err := r.run(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(20)
	}
}

// seedSampleTasks populates the task table with a small fixed workload so
// that "status" and "tasks" have something to show immediately after
// startup. Sample task bodies themselves are out of scope: every task
// here shares the same trivial entry point, a single word of memory that
// decodes (for our purposes) to nothing at all.
func seedSampleTasks(sched *scheduler.Base) {
	const entry = 0x1000
	names := []struct {
		name     string
		priority int
	}{
		{"init", 5},
		{"worker-a", 10},
		{"worker-b", 10},
		{"logger", 20},
	}
	for _, n := range names {
		_, _ = sched.CreateTask(n.name, n.priority, entry, 1024)
	}
}
