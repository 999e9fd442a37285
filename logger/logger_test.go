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

package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/syedwam7q/MyRiscVOSPy/logger"
)

func TestTailReturnsMostRecentEntries(t *testing.T) {
	logger.Clear()
	logger.Log("a", "first")
	logger.Log("b", "second")
	logger.Log("c", "third")

	var buf bytes.Buffer
	logger.Tail(&buf, 2)

	out := buf.String()
	if !strings.Contains(out, "second") || !strings.Contains(out, "third") {
		t.Errorf("Tail(2) missing expected entries, got %q", out)
	}
	if strings.Contains(out, "first") {
		t.Errorf("Tail(2) should not include the oldest entry, got %q", out)
	}
}

func TestLogDeduplicatesConsecutiveEntries(t *testing.T) {
	logger.Clear()
	logger.Log("sched.switch", "dispatched #1")
	logger.Log("sched.switch", "dispatched #1")
	logger.Log("sched.switch", "dispatched #1")

	var buf bytes.Buffer
	logger.Tail(&buf, 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected deduplication to collapse to one line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "repeat x3") {
		t.Errorf("expected repeat count in %q", lines[0])
	}
}

func TestLogfFormatsDetail(t *testing.T) {
	logger.Clear()
	logger.Logf("task.create", "#%d %q", 5, "worker")

	var buf bytes.Buffer
	logger.Tail(&buf, 1)
	if !strings.Contains(buf.String(), `#5 "worker"`) {
		t.Errorf("Logf did not format detail correctly, got %q", buf.String())
	}
}
