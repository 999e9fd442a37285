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

// Package memory implements the hart's flat, byte-addressable memory: a
// fixed-size byte array with bounds-checked byte/half/word access in
// little-endian order. Alignment is never required, per spec.
package memory

import (
	"fmt"
	"strings"

	"github.com/syedwam7q/MyRiscVOSPy/kerrors"
)

// DefaultSize is the default memory size in bytes (1 MiB).
const DefaultSize = 1 << 20

// Memory is a flat byte-addressable memory region.
type Memory struct {
	bytes []byte
}

// New creates a Memory of the given size in bytes. size <= 0 uses
// DefaultSize.
func New(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the memory's total size in bytes.
func (m *Memory) Size() int { return len(m.bytes) }

func (m *Memory) checkRange(addr, length int) error {
	if length <= 0 {
		return nil
	}
	if addr < 0 || addr+length > len(m.bytes) {
		return kerrors.New(kerrors.Bounds, addr, length, len(m.bytes))
	}
	return nil
}

// ReadByte reads a single byte at addr.
func (m *Memory) ReadByte(addr uint32) (byte, error) {
	a := int(addr)
	if err := m.checkRange(a, 1); err != nil {
		return 0, err
	}
	return m.bytes[a], nil
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint32, v byte) error {
	a := int(addr)
	if err := m.checkRange(a, 1); err != nil {
		return err
	}
	m.bytes[a] = v
	return nil
}

// ReadHalf reads a little-endian 16-bit value starting at addr.
func (m *Memory) ReadHalf(addr uint32) (uint16, error) {
	a := int(addr)
	if err := m.checkRange(a, 2); err != nil {
		return 0, err
	}
	return uint16(m.bytes[a]) | uint16(m.bytes[a+1])<<8, nil
}

// WriteHalf writes a little-endian 16-bit value starting at addr.
func (m *Memory) WriteHalf(addr uint32, v uint16) error {
	a := int(addr)
	if err := m.checkRange(a, 2); err != nil {
		return err
	}
	m.bytes[a] = byte(v)
	m.bytes[a+1] = byte(v >> 8)
	return nil
}

// ReadWord reads a little-endian 32-bit value starting at addr.
func (m *Memory) ReadWord(addr uint32) (uint32, error) {
	a := int(addr)
	if err := m.checkRange(a, 4); err != nil {
		return 0, err
	}
	return uint32(m.bytes[a]) | uint32(m.bytes[a+1])<<8 |
		uint32(m.bytes[a+2])<<16 | uint32(m.bytes[a+3])<<24, nil
}

// WriteWord writes a little-endian 32-bit value starting at addr.
func (m *Memory) WriteWord(addr uint32, v uint32) error {
	a := int(addr)
	if err := m.checkRange(a, 4); err != nil {
		return err
	}
	m.bytes[a] = byte(v)
	m.bytes[a+1] = byte(v >> 8)
	m.bytes[a+2] = byte(v >> 16)
	m.bytes[a+3] = byte(v >> 24)
	return nil
}

// ReadBlock copies length bytes starting at addr into a new slice.
func (m *Memory) ReadBlock(addr uint32, length int) ([]byte, error) {
	a := int(addr)
	if err := m.checkRange(a, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, m.bytes[a:a+length])
	return out, nil
}

// WriteBlock copies data into memory starting at addr.
func (m *Memory) WriteBlock(addr uint32, data []byte) error {
	a := int(addr)
	if err := m.checkRange(a, len(data)); err != nil {
		return err
	}
	copy(m.bytes[a:], data)
	return nil
}

// Reset zeroes the entire memory.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// Dump formats length bytes starting at addr as a hex listing, for CLI
// "memory" output.
func (m *Memory) Dump(addr uint32, length int) (string, error) {
	data, err := m.ReadBlock(addr, length)
	if err != nil {
		return "", err
	}
	var s strings.Builder
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&s, "%08x: ", addr+uint32(i))
		for _, b := range data[i:end] {
			fmt.Fprintf(&s, "%02x ", b)
		}
		s.WriteString("\n")
	}
	return s.String(), nil
}
