/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package id

import (
	"fmt"

	"dirpx.dev/steamfx/steamcore/errors"
)

// bitSize is the total width in bits of the packed identifier value.
const bitSize = 64

// bits returns the width-bit field of value ending at bit position from,
// where positions are 0-indexed from the least significant bit. The field
// occupies positions [from-width, from) and is returned shifted down into
// the low bits, zero-extended.
func bits(value uint64, from, width uint8) uint64 {
	length := from - width
	mask := (uint64(1)<<width - 1) << length
	return (value & mask) >> length
}

// BitIterator produces a left-to-right (most-significant-bit first) lazy
// sequence of fixed-width unsigned sub-fields extracted from a 64-bit
// value, without mutating the source value.
//
// The iterator starts with its cursor at bit position 64 (nothing consumed)
// and walks downward: each Next call extracts the next width bits below the
// cursor and retreats the cursor by that width. The field width can be
// changed between reads with SetWidth, which is how the packed identifier
// layout (8, 4, 20, 31, 1) is decoded with a single iterator.
//
// A BitIterator is a plain cursor over an immutable value; it performs no
// I/O and raises no domain errors. It is not safe for concurrent use, but
// independent iterators over the same value are.
type BitIterator struct {
	// value is the object iterated over. Never mutated.
	value uint64

	// width is the number of bits extracted by a single Next call.
	width uint8

	// pos is the current cursor position within value. Bits at positions
	// pos and above have been consumed.
	pos uint8
}

// NewBitIterator returns an iterator over the bits of value, extracting
// width bits per Next call until SetWidth changes the stride.
//
// A width greater than 64 is a programming defect, not bad input, and
// NewBitIterator panics rather than returning an error. Widths up to and
// including 64 (and zero) are accepted.
func NewBitIterator(value uint64, width uint8) *BitIterator {
	if width > bitSize {
		panic(fmt.Sprintf("bit iterator width %d exceeds %d", width, bitSize))
	}
	return &BitIterator{
		value: value,
		width: width,
		pos:   bitSize,
	}
}

// SetWidth changes the number of bits extracted by subsequent Next calls.
//
// The new width MUST NOT exceed the number of unconsumed bits; attempting
// to do so returns a *ValidationError and leaves the iterator unchanged.
func (it *BitIterator) SetWidth(width uint8) error {
	if width > it.pos {
		return &errors.ValidationError{
			Type:   "BitIterator",
			Field:  "width",
			Reason: fmt.Sprintf("width %d exceeds the %d unconsumed bits", width, it.pos),
			Value:  int(width),
		}
	}
	it.width = width
	return nil
}

// Next extracts the next width most-significant unconsumed bits of the
// value, advances the cursor past them, and returns the extracted field
// zero-extended to uint64.
//
// Once the cursor cannot retreat by the current width without going
// negative, Next reports false and the sequence is exhausted. An exhausted
// iterator stays exhausted for that width, but SetWidth to a smaller width
// can resume extraction of the remaining bits.
func (it *BitIterator) Next() (uint64, bool) {
	if it.width > it.pos {
		return 0, false
	}
	item := bits(it.value, it.pos, it.width)
	it.pos -= it.width
	return item, true
}

// Remaining returns the number of unconsumed bits left in the sequence.
func (it *BitIterator) Remaining() uint8 {
	return it.pos
}

// uinteger constrains NextAs destinations to the unsigned integer types a
// packed identifier field can narrow into.
type uinteger interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NextAs changes the iteration width to width and extracts the next field,
// narrowing the result into T.
//
// It reports false when the sequence is exhausted, when width exceeds the
// unconsumed bits, or when the extracted value does not fit in T. The last
// case cannot occur for correctly chosen widths but is checked rather than
// truncated.
func NextAs[T uinteger](it *BitIterator, width uint8) (T, bool) {
	if err := it.SetWidth(width); err != nil {
		return 0, false
	}
	v, ok := it.Next()
	if !ok {
		return 0, false
	}
	if v > uint64(^T(0)) {
		return 0, false
	}
	return T(v), true
}
