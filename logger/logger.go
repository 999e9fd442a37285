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

// Package logger is a small central log used by the kernel simulator core
// to record lifecycle events (task creation, context switches, interrupt
// dispatch, ...) without coupling those packages to any particular output
// destination. Consumers (the CLI, tests, the dashboard) read the log
// through Tail rather than scraping stdout.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const maxEntries = 1000

// Entry is a single de-duplicated log line.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s: %s", e.Tag, e.Detail)
	if e.repeated > 0 {
		fmt.Fprintf(&s, " (repeat x%d)", e.repeated+1)
	}
	return s.String()
}

type central struct {
	mu      sync.Mutex
	entries []Entry
	echo    bool
}

var log = &central{}

// SetEcho turns on/off writing every new entry to stdout as it is logged,
// in addition to keeping it in the ring buffer.
func SetEcho(enabled bool) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.echo = enabled
}

// Log records tag/detail as a new entry, or bumps the repeat count of the
// most recent entry if it is identical.
func Log(tag, detail string) {
	log.mu.Lock()
	defer log.mu.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if n := len(log.entries); n > 0 {
		last := &log.entries[n-1]
		if last.Tag == tag && last.Detail == detail {
			last.repeated++
			last.Timestamp = time.Now()
			return
		}
	}

	e := Entry{Timestamp: time.Now(), Tag: tag, Detail: detail}
	log.entries = append(log.entries, e)
	if len(log.entries) > maxEntries {
		log.entries = log.entries[len(log.entries)-maxEntries:]
	}
	if log.echo {
		fmt.Println(e.String())
	}
}

// Logf is Log with a printf-style detail.
func Logf(tag, format string, args ...interface{}) {
	Log(tag, fmt.Sprintf(format, args...))
}

// Tail writes the most recent n entries to w.
func Tail(w io.Writer, n int) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if n > len(log.entries) {
		n = len(log.entries)
	}
	for _, e := range log.entries[len(log.entries)-n:] {
		fmt.Fprintln(w, e.String())
	}
}

// Clear empties the log. Intended for test isolation.
func Clear() {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.entries = log.entries[:0]
}
