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

// Package kerrors is a helper package for the error kinds raised by the
// kernel simulator core. It defines the KernelError type, an implementation
// of the error interface that wraps a closed set of error kinds (Errno)
// alongside the values needed to format a message for each.
//
// Callers that need to distinguish a particular kind of failure should
// compare Errno values (via Kind, errors.As, or errors.Is against a
// KernelError of that kind), not string-match the message.
package kerrors

import (
	"errors"
	"fmt"
)

// Errno identifies a kind of error the kernel simulator core can return.
type Errno int

// List of error kinds, matching spec section 7 (Error Handling Design).
const (
	InvalidPriority Errno = iota
	UnknownTask
	BadState
	OutOfMemory
	Bounds
	UnknownInterrupt
	UnknownScheduler
)

var messages = map[Errno]string{
	InvalidPriority:  "priority %v outside valid range [1,32]",
	UnknownTask:      "unknown task id %v",
	BadState:         "invalid transition for task %v: %v",
	OutOfMemory:      "no stack region of %v bytes fits in memory",
	Bounds:           "memory access out of bounds: addr=%v len=%v size=%v",
	UnknownInterrupt: "unregistered interrupt id %v",
	UnknownScheduler: "unknown scheduler type %q",
}

// Values holds the arguments substituted into an Errno's message template.
type Values []interface{}

// KernelError is the error type returned by every operation in the core.
type KernelError struct {
	Errno  Errno
	Values Values
}

// New creates a KernelError of the given kind with the supplied format
// arguments.
func New(errno Errno, values ...interface{}) *KernelError {
	return &KernelError{Errno: errno, Values: values}
}

func (e *KernelError) Error() string {
	tmpl, ok := messages[e.Errno]
	if !ok {
		return fmt.Sprintf("kernel error %d", e.Errno)
	}
	return fmt.Sprintf(tmpl, e.Values...)
}

// Is allows errors.Is(err, kerrors.New(kerrors.UnknownTask)) style
// matching: any *KernelError target with the same Errno matches,
// regardless of Values.
func (e *KernelError) Is(target error) bool {
	var other *KernelError
	if errors.As(target, &other) {
		return other.Errno == e.Errno
	}
	return false
}

// Kind reports the Errno of err if err is (or wraps) a *KernelError.
func Kind(err error) (Errno, bool) {
	var ke *KernelError
	if errors.As(err, &ke) {
		return ke.Errno, true
	}
	return 0, false
}
