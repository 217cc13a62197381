// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldmap stores the fields a message does not know statically:
// unknown fields and extensions, keyed by field number.
package fieldmap

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/infiniteloopcloud/protonano/encoding/wire"
)

// Map is a sparse map from field number to Slot.
//
// Numbers are kept sorted in a slice parallel to the slots and looked up by
// binary search. Remove leaves a nil slot behind; such tombstones are
// compacted lazily, before the contents are counted or iterated and before
// the arrays grow.
//
// The zero value is an empty map ready to use.
type Map struct {
	numbers []wire.Number
	slots   []*Slot
	size    int
	garbage bool
}

// New returns an empty map with room for n fields.
func New(n int) *Map {
	n = idealSize(n)
	return &Map{
		numbers: make([]wire.Number, n),
		slots:   make([]*Slot, n),
	}
}

// idealSize rounds n up so that the backing arrays land on an allocation
// size class.
func idealSize(n int) int {
	need := n * 4
	for i := 4; i < 32; i++ {
		if c := 1<<i - 12; need <= c {
			return c / 4
		}
	}
	return n
}

// search returns the index of num, or the bitwise complement of the index
// at which it would be inserted.
func (m *Map) search(num wire.Number) int {
	lo, hi := 0, m.size-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch v := m.numbers[mid]; {
		case v < num:
			lo = mid + 1
		case v > num:
			hi = mid - 1
		default:
			return mid
		}
	}
	return ^lo
}

// Get returns the slot for num, or nil.
func (m *Map) Get(num wire.Number) *Slot {
	if m == nil {
		return nil
	}
	i := m.search(num)
	if i < 0 {
		return nil
	}
	return m.slots[i]
}

// Put stores s under num, replacing any existing slot.
// Putting a nil slot removes num.
func (m *Map) Put(num wire.Number, s *Slot) {
	if s == nil {
		m.Remove(num)
		return
	}
	i := m.search(num)
	if i >= 0 {
		m.slots[i] = s
		return
	}
	i = ^i
	if i < m.size && m.slots[i] == nil {
		m.numbers[i] = num
		m.slots[i] = s
		return
	}
	if m.garbage && m.size >= len(m.numbers) {
		m.gc()
		i = ^m.search(num)
	}
	if m.size >= len(m.numbers) {
		n := idealSize(m.size + 1)
		numbers := make([]wire.Number, n)
		slots := make([]*Slot, n)
		copy(numbers, m.numbers[:m.size])
		copy(slots, m.slots[:m.size])
		m.numbers, m.slots = numbers, slots
	}
	copy(m.numbers[i+1:m.size+1], m.numbers[i:m.size])
	copy(m.slots[i+1:m.size+1], m.slots[i:m.size])
	m.numbers[i] = num
	m.slots[i] = s
	m.size++
}

// Remove deletes num, if present.
func (m *Map) Remove(num wire.Number) {
	if m == nil {
		return
	}
	if i := m.search(num); i >= 0 && m.slots[i] != nil {
		m.slots[i] = nil
		m.garbage = true
	}
}

// Add records an unknown occurrence of num, creating its slot if needed.
func (m *Map) Add(num wire.Number, f UnknownField) error {
	s := m.Get(num)
	if s == nil {
		s = &Slot{}
		m.Put(num, s)
	}
	return s.AddUnknown(f)
}

func (m *Map) gc() {
	n := 0
	for i := 0; i < m.size; i++ {
		if s := m.slots[i]; s != nil {
			if i != n {
				m.numbers[n] = m.numbers[i]
				m.slots[n] = s
				m.slots[i] = nil
			}
			n++
		}
	}
	m.garbage = false
	m.size = n
}

// Len returns the number of fields present.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	if m.garbage {
		m.gc()
	}
	return m.size
}

// IsEmpty reports whether no fields are present.
func (m *Map) IsEmpty() bool {
	return m.Len() == 0
}

// At returns the i'th field in increasing field number order.
// It panics if i is out of range.
func (m *Map) At(i int) (wire.Number, *Slot) {
	if m == nil {
		panic("fieldmap: index out of range")
	}
	if m.garbage {
		m.gc()
	}
	if i < 0 || i >= m.size {
		panic("fieldmap: index out of range")
	}
	return m.numbers[i], m.slots[i]
}

// Range calls f for each field in increasing field number order until f
// returns false. f must not modify m.
func (m *Map) Range(f func(wire.Number, *Slot) bool) {
	n := m.Len()
	for i := 0; i < n; i++ {
		if !f(m.numbers[i], m.slots[i]) {
			return
		}
	}
}

// Size returns the encoded size of every field present.
func (m *Map) Size() int {
	n := 0
	m.Range(func(_ wire.Number, s *Slot) bool {
		n += s.Size()
		return true
	})
	return n
}

// WriteTo writes every field present in increasing field number order.
func (m *Map) WriteTo(w *wire.Writer) error {
	var err error
	m.Range(func(_ wire.Number, s *Slot) bool {
		err = s.WriteTo(w)
		return err == nil
	})
	return err
}

// Equal reports whether m and o hold the same fields. A nil map is equal
// to an empty one.
func (m *Map) Equal(o *Map) bool {
	n := m.Len()
	if n != o.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if m.numbers[i] != o.numbers[i] || !m.slots[i].Equal(o.slots[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the contents consistent with Equal.
func (m *Map) Hash() uint64 {
	h := fnv.New64a()
	var num [4]byte
	m.Range(func(n wire.Number, s *Slot) bool {
		binary.LittleEndian.PutUint32(num[:], uint32(n))
		h.Write(num[:])
		if b, err := s.Marshal(); err == nil {
			h.Write(b)
		}
		return true
	})
	return h.Sum64()
}

// Clone returns a deep copy of m. Cloning a nil map returns nil.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	n := m.Len()
	c := New(n)
	for i := 0; i < n; i++ {
		c.numbers[i] = m.numbers[i]
		c.slots[i] = m.slots[i].Clone()
	}
	c.size = n
	return c
}
