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

package main

import (
	"io"
	"time"

	"github.com/syedwam7q/MyRiscVOSPy/monitor"
	"github.com/syedwam7q/MyRiscVOSPy/scheduler"
)

// maybeLaunchMonitor starts the statsview dashboard when the binary was
// built with the monitor tag and --debug was passed. A no-op build of
// kernelsim (the default) never links this file in at all.
func maybeLaunchMonitor(out io.Writer, sched *scheduler.Base, debug bool) {
	if !debug {
		return
	}
	monitor.Launch(out, sched, time.Second)
}
