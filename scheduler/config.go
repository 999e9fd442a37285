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

package scheduler

import "github.com/syedwam7q/MyRiscVOSPy/prefs"

// Config holds the tunables shared by every scheduler variant. Fields are
// prefs values rather than plain ints so the clock loop (on its own
// goroutine in continuous mode) and the REPL goroutine can touch them
// concurrently.
type Config struct {
	// TimeSlice is consulted only by the round-robin variant.
	TimeSlice *prefs.Int
	// AgingInterval is how many ticks elapse between aging passes.
	AgingInterval *prefs.Int
	// AgingThreshold is the WaitTicks value at which an aging pass lowers
	// a READY task's current priority.
	AgingThreshold *prefs.Int
	// AgingEnabled gates the whole aging algorithm off when false.
	AgingEnabled *prefs.Bool
}

// DefaultConfig returns the spec's default tunables: time_slice=10,
// aging_interval=10, aging_threshold=20, aging enabled.
func DefaultConfig() Config {
	return Config{
		TimeSlice:      prefs.NewInt(10),
		AgingInterval:  prefs.NewInt(10),
		AgingThreshold: prefs.NewInt(20),
		AgingEnabled:   prefs.NewBool(true),
	}
}
