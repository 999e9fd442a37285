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

//go:build monitor
// +build monitor

// Package monitor is an optional package, built only when the +monitor
// build tag is present, that serves a live chart of scheduler metrics
// over HTTP. It mirrors the teacher's statsview package: a single Launch
// function starting a background HTTP server, guarded by the same
// go-echarts/statsview dependency, generalised here to push
// scheduler.Metrics counters instead of Go runtime stats.
package monitor

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/syedwam7q/MyRiscVOSPy/scheduler"
)

// Address is the host:port the dashboard listens on.
const Address = "localhost:12601"

const url = "/debug/statsview"

const (
	categorySwitches    = "context switches"
	categoryPreemptions = "preemptions"
	categoryReady       = "ready tasks"
)

// Launch starts the dashboard's HTTP server on its own goroutine and a
// second goroutine sampling sched at the given period, pushing counters
// into the chart categories. It returns immediately; output is used to
// report the dashboard's address, matching the teacher's Launch(io.Writer).
func Launch(output io.Writer, sched *scheduler.Base, period time.Duration) {
	viewer.AddCategory(categorySwitches, &viewer.CategoryConfig{
		Title:     categorySwitches,
		TagsNames: []string{"total"},
		Types:     []string{"line"},
	})
	viewer.AddCategory(categoryPreemptions, &viewer.CategoryConfig{
		Title:     categoryPreemptions,
		TagsNames: []string{"total"},
		Types:     []string{"line"},
	})
	viewer.AddCategory(categoryReady, &viewer.CategoryConfig{
		Title:     categoryReady,
		TagsNames: []string{"count"},
		Types:     []string{"bar"},
	})

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	go sample(sched, period)

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
}

func sample(sched *scheduler.Base, period time.Duration) {
	if period <= 0 {
		period = time.Second
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for range ticker.C {
		m := sched.Metrics()
		viewer.Push(categorySwitches, "total", float64(m.ContextSwitches))
		viewer.Push(categoryPreemptions, "total", float64(m.Preemptions))

		ready := 0
		for _, t := range sched.Tasks() {
			if t.State.String() == "READY" {
				ready++
			}
		}
		viewer.Push(categoryReady, "count", float64(ready))
	}
}

// Available reports whether a dashboard is available to launch.
func Available() bool { return true }
