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

// Package simulator's Tick dispatches an interrupt by overwriting PC
// directly with the handler address, unconditionally, before the
// scheduler's pre-pass runs. This is a deliberate simplification: a real
// hart would push the interrupted PC (and some status word) onto a stack
// so the handler could return to the interrupted context, and an
// interrupt arriving while another handler is still running would nest
// or be masked according to priority. Neither exists here.
//
// In this simulator the "handler" at HandlerAddress is not expected to
// return to the interrupted PC at all. The scheduler's own context switch
// logic runs immediately after dispatch, in the same Tick: if it switches
// tasks, it either restores the incoming task's saved PC or sends control
// to that task's entry point; if it does not switch, execution simply
// continues from the handler address. Interrupt dispatch and
// task dispatch therefore both reduce to "set PC and move on", and the
// ordering in Tick - timer, then dispatch, then scheduler, then step - is
// what lets a TIMER interrupt influence scheduling decisions within the
// same tick that raised it. Programs that need the interrupted PC
// preserved must save it themselves before any operation that could be
// interrupted; the simulator does not do this on their behalf.
package simulator
