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

//go:build !monitor
// +build !monitor

package main

import (
	"io"

	"github.com/syedwam7q/MyRiscVOSPy/scheduler"
)

// maybeLaunchMonitor is a no-op in the default build: the statsview
// dashboard and its dependency only link in with the monitor build tag.
func maybeLaunchMonitor(out io.Writer, sched *scheduler.Base, debug bool) {}
