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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keyWaiter puts stdin into cbreak mode for the duration of a CONTINUE
// command so a single keypress - any key - can pause the running clock
// without the user having to press return. Restored to canonical mode by
// Restore. Patterned on the teacher's easyterm.Terminal, trimmed to the one
// mode switch this command needs.
type keyWaiter struct {
	fd      uintptr
	canon   unix.Termios
	cbreak  unix.Termios
	enabled bool
}

// newKeyWaiter prepares cbreak mode for fd without yet switching to it.
// enabled is false (falling back to line-buffered Enter-to-pause) if fd
// is not a real terminal or the termios calls fail.
func newKeyWaiter(f *os.File) *keyWaiter {
	kw := &keyWaiter{fd: f.Fd()}
	if err := termios.Tcgetattr(kw.fd, &kw.canon); err != nil {
		return kw
	}
	kw.cbreak = kw.canon
	termios.Cfmakecbreak(&kw.cbreak)
	kw.enabled = true
	return kw
}

// Enabled reports whether cbreak mode is actually available.
func (kw *keyWaiter) Enabled() bool { return kw.enabled }

// Enter switches stdin into cbreak mode.
func (kw *keyWaiter) Enter() {
	if kw.enabled {
		_ = termios.Tcsetattr(kw.fd, termios.TCIFLUSH, &kw.cbreak)
	}
}

// Restore switches stdin back to whatever mode it was in before Enter.
func (kw *keyWaiter) Restore() {
	if kw.enabled {
		_ = termios.Tcsetattr(kw.fd, termios.TCIFLUSH, &kw.canon)
	}
}
