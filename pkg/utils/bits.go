package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Sizeof[T]() * 8
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Returns whether the bit at the given position is set
func Bit[T constraints.Unsigned](pos int, word T) bool {
	return (word>>pos)&1 != 0
}

// Extracts the inclusive bit range [lo, hi], shifted down to bit 0
func Bits[T constraints.Unsigned](lo int, hi int, word T) T {
	return (word >> lo) & AllOnes[T](hi-lo+1)
}

// Returns a copy of word with the bit at the given position set to bit
func ModifyBit[T constraints.Unsigned](pos int, word T, bit bool) T {
	if bit {
		return word | (T(1) << pos)
	}

	return word &^ (T(1) << pos)
}

// Returns a copy of word with the inclusive bit range [lo, hi] replaced by
// value. Most significant bits of value not fitting into the range are ignored.
func ModifyBits[T constraints.Unsigned](lo int, hi int, word T, value T) T {
	mask := AllOnes[T](hi-lo+1) << lo
	return (word &^ mask) | ((value << lo) & mask)
}

// Implements a read/write view over an unsigned integer, allowing manipullating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	return Bits(bit, bit+width-1, v.Value())
}

// Copies a value into a range of bits, given the start and width of the range.
// The destination range is cleared first, so stale bits never survive a write.
func (v BitView[T]) Write(value T, bit int, width int) {
	*v.Bits = ModifyBits(bit, bit+width-1, *v.Bits, value)
}

// Sets all bits in a range to 1
func (v BitView[T]) SetBits(bit int, width int) {
	v.Write(AllOnes[T](width), bit, width)
}

// Sets all bits in a range to 0
func (v BitView[T]) ClearBits(bit int, width int) {
	v.Write(T(0), bit, width)
}

// Sets bit to 1
func (v BitView[T]) SetBit(bit int) {
	v.SetBits(bit, 1)
}

// Sets bit to 0
func (v BitView[T]) ClearBit(bit int) {
	v.ClearBits(bit, 1)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
