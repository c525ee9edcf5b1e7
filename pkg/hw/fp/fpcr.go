// Package fp models the system registers of an ARM floating-point unit: the
// control register (FPCR) governing rounding, trapping, denormal handling and
// the legacy AArch32 vector geometry, and the status register (FPSR) holding
// the cumulative exception flags. Both are plain value types over a masked
// 32-bit word; the arithmetic consuming the decoded fields lives elsewhere.
package fp

import (
	"fmt"
	"strings"

	"github.com/Kappamalone/dynarmic/pkg/utils"
)

// Bits 0-7, 13-14, and 27-31 of the FPCR are reserved. They read as zero no
// matter what was written there, so they are stripped on every assignment.
const fpcrMask uint32 = 0x07FF9F00

// Representation of the Floating-Point Control Register.
//
// The zero value is a valid register with every field clear. Instances have
// plain value semantics: copy freely, compare with ==. All mutation goes
// through the field setters; a setter that returns an error leaves the
// register untouched.
type FPCR struct {
	value uint32
}

// Creates an FPCR from a raw 32-bit word, discarding the reserved bits
func NewFPCR(word uint32) FPCR {
	return FPCR{value: word & fpcrMask}
}

// Assigns a raw 32-bit word to the register, discarding the reserved bits
func (r *FPCR) Assign(word uint32) {
	r.value = word & fpcrMask
}

// Returns the alternate half-precision control flag
func (r FPCR) AHP() bool {
	return utils.Bit(26, r.value)
}

// Sets the alternate half-precision control flag
func (r *FPCR) SetAHP(ahp bool) {
	r.value = utils.ModifyBit(26, r.value, ahp)
}

// Returns the default NaN mode control bit
func (r FPCR) DN() bool {
	return utils.Bit(25, r.value)
}

// Sets the default NaN mode control bit
func (r *FPCR) SetDN(dn bool) {
	r.value = utils.ModifyBit(25, r.value, dn)
}

// Returns the flush-to-zero mode control bit
func (r FPCR) FZ() bool {
	return utils.Bit(24, r.value)
}

// Sets the flush-to-zero mode control bit
func (r *FPCR) SetFZ(fz bool) {
	r.value = utils.ModifyBit(24, r.value, fz)
}

// Returns the rounding mode control field
func (r FPCR) RMode() RoundingMode {
	return RoundingMode(utils.Bits(22, 23, r.value))
}

// Sets the rounding mode control field. Fails with ErrInvalidRoundingMode if
// the mode does not encode to a 2-bit code, leaving the register unchanged.
func (r *FPCR) SetRMode(mode RoundingMode) error {
	if mode > 0b11 {
		return makeError(ErrInvalidRoundingMode, "%v", uint(mode))
	}

	r.value = utils.ModifyBits(22, 23, r.value, uint32(mode))

	return nil
}

// Returns the stride of a vector when executing AArch32 VFP instructions.
// This field has no function in AArch64 state.
//
// Only two of the four bit patterns encode a stride: 0b00 is stride 1 and
// 0b11 is stride 2. For the two reserved patterns the second result is false
// and no stride value exists.
func (r FPCR) Stride() (uint, bool) {
	switch utils.Bits(20, 21, r.value) {
	case 0b00:
		return 1, true
	case 0b11:
		return 2, true
	default:
		return 0, false
	}
}

// Sets the stride of a vector when executing AArch32 VFP instructions.
// This field has no function in AArch64 state.
//
// Only strides 1 and 2 are encodable; anything else fails with
// ErrInvalidStride, leaving the register unchanged. The reserved patterns
// readable through Stride() cannot be produced through this setter.
func (r *FPCR) SetStride(stride uint) error {
	if stride < 1 || stride > 2 {
		return makeError(ErrInvalidStride, "%v", stride)
	}

	var encoded uint32
	if stride == 2 {
		encoded = 0b11
	}

	r.value = utils.ModifyBits(20, 21, r.value, encoded)

	return nil
}

// Returns the flush-to-zero (half-precision specific) mode control bit
func (r FPCR) FZ16() bool {
	return utils.Bit(19, r.value)
}

// Sets the flush-to-zero (half-precision specific) mode control bit
func (r *FPCR) SetFZ16(fz16 bool) {
	r.value = utils.ModifyBit(19, r.value, fz16)
}

// Returns the length of a vector when executing AArch32 VFP instructions,
// in the range [1, 8]. This field has no function in AArch64 state.
func (r FPCR) Len() uint {
	return uint(utils.Bits(16, 18, r.value)) + 1
}

// Sets the length of a vector when executing AArch32 VFP instructions.
// This field has no function in AArch64 state.
//
// Lengths outside [1, 8] fail with ErrInvalidLen, leaving the register
// unchanged. The field stores length-1.
func (r *FPCR) SetLen(len uint) error {
	if len < 1 || len > 8 {
		return makeError(ErrInvalidLen, "%v", len)
	}

	r.value = utils.ModifyBits(16, 18, r.value, uint32(len-1))

	return nil
}

// Returns the input denormal exception trap enable flag
func (r FPCR) IDE() bool {
	return utils.Bit(15, r.value)
}

// Sets the input denormal exception trap enable flag
func (r *FPCR) SetIDE(ide bool) {
	r.value = utils.ModifyBit(15, r.value, ide)
}

// Returns the inexact exception trap enable flag
func (r FPCR) IXE() bool {
	return utils.Bit(12, r.value)
}

// Sets the inexact exception trap enable flag
func (r *FPCR) SetIXE(ixe bool) {
	r.value = utils.ModifyBit(12, r.value, ixe)
}

// Returns the underflow exception trap enable flag
func (r FPCR) UFE() bool {
	return utils.Bit(11, r.value)
}

// Sets the underflow exception trap enable flag
func (r *FPCR) SetUFE(ufe bool) {
	r.value = utils.ModifyBit(11, r.value, ufe)
}

// Returns the overflow exception trap enable flag
func (r FPCR) OFE() bool {
	return utils.Bit(10, r.value)
}

// Sets the overflow exception trap enable flag
func (r *FPCR) SetOFE(ofe bool) {
	r.value = utils.ModifyBit(10, r.value, ofe)
}

// Returns the division by zero exception trap enable flag
func (r FPCR) DZE() bool {
	return utils.Bit(9, r.value)
}

// Sets the division by zero exception trap enable flag
func (r *FPCR) SetDZE(dze bool) {
	r.value = utils.ModifyBit(9, r.value, dze)
}

// Returns the invalid operation exception trap enable flag
func (r FPCR) IOE() bool {
	return utils.Bit(8, r.value)
}

// Sets the invalid operation exception trap enable flag
func (r *FPCR) SetIOE(ioe bool) {
	r.value = utils.ModifyBit(8, r.value, ioe)
}

// Returns the underlying raw value of the FPCR
func (r FPCR) Value() uint32 {
	return r.value
}

func (r FPCR) String() string {
	fields := make([]string, 0, 8)

	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"AHP", r.AHP()},
		{"DN", r.DN()},
		{"FZ", r.FZ()},
		{"FZ16", r.FZ16()},
		{"IDE", r.IDE()},
		{"IXE", r.IXE()},
		{"UFE", r.UFE()},
		{"OFE", r.OFE()},
		{"DZE", r.DZE()},
		{"IOE", r.IOE()},
	} {
		if flag.set {
			fields = append(fields, flag.name)
		}
	}

	fields = append(fields, fmt.Sprintf("RMode=%v", r.RMode()))

	if stride, ok := r.Stride(); ok {
		fields = append(fields, fmt.Sprintf("Stride=%v", stride))
	} else {
		fields = append(fields, "Stride=reserved")
	}

	fields = append(fields, fmt.Sprintf("Len=%v", r.Len()))

	return fmt.Sprintf("FPCR{0x%08X %v}", r.value, strings.Join(fields, " "))
}
