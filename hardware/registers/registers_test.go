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

package registers_test

import (
	"testing"

	"github.com/syedwam7q/MyRiscVOSPy/hardware/registers"
)

func TestX0IsHardwiredToZero(t *testing.T) {
	var f registers.File
	f.Write(0, 0xdeadbeef)
	if v := f.Read(0); v != 0 {
		t.Errorf("x0 = 0x%x, want 0", v)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	var f registers.File
	f.Write(10, 123)
	if v := f.Read(10); v != 123 {
		t.Errorf("x10 = %d, want 123", v)
	}
}

func TestOutOfRangeRegisterIsClampedToZero(t *testing.T) {
	var f registers.File
	f.Write(32, 1) // no-op, out of range
	f.Write(-1, 1) // no-op, out of range
	if v := f.Read(32); v != 0 {
		t.Errorf("Read(32) = %d, want 0", v)
	}
	if v := f.Read(-1); v != 0 {
		t.Errorf("Read(-1) = %d, want 0", v)
	}
}

func TestPCIndependentOfGPRs(t *testing.T) {
	var f registers.File
	f.WritePC(0x1000)
	f.Write(1, 0x2000)
	if f.PC() != 0x1000 {
		t.Errorf("PC() = 0x%x, want 0x1000", f.PC())
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	var f registers.File
	f.Write(5, 111)
	f.Write(6, 222)
	f.WritePC(0x4000)

	snap := f.Snapshot()

	f.Write(5, 999)
	f.WritePC(0x8000)

	f.Restore(snap)
	if v := f.Read(5); v != 111 {
		t.Errorf("after restore x5 = %d, want 111", v)
	}
	if v := f.Read(6); v != 222 {
		t.Errorf("after restore x6 = %d, want 222", v)
	}
	if f.PC() != 0x4000 {
		t.Errorf("after restore PC = 0x%x, want 0x4000", f.PC())
	}
}

func TestRestoreNeverSetsX0(t *testing.T) {
	var f registers.File
	snap := f.Snapshot()
	snap.X[0] = 0xffffffff
	f.Restore(snap)
	if v := f.Read(0); v != 0 {
		t.Errorf("x0 = 0x%x after restore, want 0", v)
	}
}

func TestResetClearsEverything(t *testing.T) {
	var f registers.File
	f.Write(1, 1)
	f.WritePC(0x10)
	f.Reset()
	if f.Read(1) != 0 || f.PC() != 0 {
		t.Error("Reset did not clear register state")
	}
}
