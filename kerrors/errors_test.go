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

package kerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
)

func TestErrorMessage(t *testing.T) {
	err := kerrors.New(kerrors.UnknownTask, 7)
	want := "unknown task id 7"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesByErrno(t *testing.T) {
	err := kerrors.New(kerrors.InvalidPriority, 99)
	if !errors.Is(err, kerrors.New(kerrors.InvalidPriority)) {
		t.Error("errors.Is should match on Errno regardless of Values")
	}
	if errors.Is(err, kerrors.New(kerrors.UnknownTask)) {
		t.Error("errors.Is should not match a different Errno")
	}
}

func TestKind(t *testing.T) {
	err := kerrors.New(kerrors.BadState, 3, "block from TERMINATED")
	errno, ok := kerrors.Kind(err)
	if !ok || errno != kerrors.BadState {
		t.Errorf("Kind() = (%v, %v), want (%v, true)", errno, ok, kerrors.BadState)
	}

	if _, ok := kerrors.Kind(fmt.Errorf("not a kernel error")); ok {
		t.Error("Kind() should report false for a plain error")
	}
}

func TestKindThroughWrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", kerrors.New(kerrors.OutOfMemory, 4096))
	errno, ok := kerrors.Kind(err)
	if !ok || errno != kerrors.OutOfMemory {
		t.Errorf("Kind() did not see through %%w wrapping: (%v, %v)", errno, ok)
	}
}

func TestUnknownErrnoFallsBackToGenericMessage(t *testing.T) {
	err := kerrors.New(kerrors.Errno(999))
	if err.Error() == "" {
		t.Error("Error() should never return an empty string")
	}
}
