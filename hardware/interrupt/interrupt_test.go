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

package interrupt_test

import (
	"testing"

	"github.com/syedwam7q/MyRiscVOSPy/hardware/interrupt"
	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
)

func TestTriggerUnregisteredFails(t *testing.T) {
	c := interrupt.New()
	err := c.Trigger(99)
	if errno, ok := kerrors.Kind(err); !ok || errno != kerrors.UnknownInterrupt {
		t.Fatalf("Trigger(unregistered) = %v, want UnknownInterrupt", err)
	}
}

func TestHighestPendingPicksLowestPriority(t *testing.T) {
	c := interrupt.New()
	c.Register(interrupt.Timer, interrupt.Timer, 0x100, "timer")
	c.Register(interrupt.External, interrupt.External, 0x200, "external")

	_ = c.Trigger(interrupt.External)
	_ = c.Trigger(interrupt.Timer)

	irq, ok := c.HighestPending()
	if !ok {
		t.Fatal("expected a pending interrupt")
	}
	if irq.ID != interrupt.Timer {
		t.Errorf("HighestPending = %d, want Timer (%d)", irq.ID, interrupt.Timer)
	}
}

func TestHighestPendingTieBreaksByID(t *testing.T) {
	c := interrupt.New()
	c.Register(5, 1, 0x100, "a")
	c.Register(3, 1, 0x200, "b")

	_ = c.Trigger(5)
	_ = c.Trigger(3)

	irq, ok := c.HighestPending()
	if !ok || irq.ID != 3 {
		t.Errorf("HighestPending = (%v, %v), want (id=3, true)", irq, ok)
	}
}

func TestClearRemovesPending(t *testing.T) {
	c := interrupt.New()
	c.Register(interrupt.Timer, interrupt.Timer, 0x100, "timer")
	_ = c.Trigger(interrupt.Timer)
	_ = c.Clear(interrupt.Timer)

	if c.HasPending() {
		t.Error("expected no pending interrupt after Clear")
	}
}

func TestDisabledControllerReportsNothingPending(t *testing.T) {
	c := interrupt.New()
	c.Register(interrupt.Timer, interrupt.Timer, 0x100, "timer")
	_ = c.Trigger(interrupt.Timer)
	c.Disable()

	if c.HasPending() {
		t.Error("disabled controller should never report pending interrupts")
	}
	if _, ok := c.HighestPending(); ok {
		t.Error("disabled controller should never return a highest-pending interrupt")
	}

	c.Enable()
	if !c.HasPending() {
		t.Error("re-enabled controller should see the still-pending interrupt")
	}
}

func TestResetClearsPendingButKeepsRegistrations(t *testing.T) {
	c := interrupt.New()
	c.Register(interrupt.Timer, interrupt.Timer, 0x100, "timer")
	_ = c.Trigger(interrupt.Timer)
	c.Reset()

	if c.HasPending() {
		t.Error("Reset should clear pending bits")
	}
	if err := c.Trigger(interrupt.Timer); err != nil {
		t.Errorf("Timer should still be registered after Reset: %v", err)
	}
}
