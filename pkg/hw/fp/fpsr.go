package fp

import (
	"fmt"
	"strings"

	"github.com/Kappamalone/dynarmic/pkg/utils"
)

// Bits 5-6 and 8-26 of the FPSR are reserved and always read as zero.
const fpsrMask uint32 = 0xF800009F

// Representation of the Floating-Point Status Register.
//
// Every field is a single flag, so no setter can fail. The cumulative
// exception bits are sticky by architectural convention: the arithmetic that
// raises them only ever ORs them in, and only a full Assign clears them. That
// discipline belongs to the callers; the register itself is a plain value
// type with the same copy and equality semantics as FPCR.
type FPSR struct {
	value uint32
}

// Creates an FPSR from a raw 32-bit word, discarding the reserved bits
func NewFPSR(word uint32) FPSR {
	return FPSR{value: word & fpsrMask}
}

// Assigns a raw 32-bit word to the register, discarding the reserved bits
func (r *FPSR) Assign(word uint32) {
	r.value = word & fpsrMask
}

// Returns the negative condition flag
func (r FPSR) N() bool {
	return utils.Bit(31, r.value)
}

// Sets the negative condition flag
func (r *FPSR) SetN(n bool) {
	r.value = utils.ModifyBit(31, r.value, n)
}

// Returns the zero condition flag
func (r FPSR) Z() bool {
	return utils.Bit(30, r.value)
}

// Sets the zero condition flag
func (r *FPSR) SetZ(z bool) {
	r.value = utils.ModifyBit(30, r.value, z)
}

// Returns the carry condition flag
func (r FPSR) C() bool {
	return utils.Bit(29, r.value)
}

// Sets the carry condition flag
func (r *FPSR) SetC(c bool) {
	r.value = utils.ModifyBit(29, r.value, c)
}

// Returns the overflow condition flag
func (r FPSR) V() bool {
	return utils.Bit(28, r.value)
}

// Sets the overflow condition flag
func (r *FPSR) SetV(v bool) {
	r.value = utils.ModifyBit(28, r.value, v)
}

// Returns the cumulative saturation flag
func (r FPSR) QC() bool {
	return utils.Bit(27, r.value)
}

// Sets the cumulative saturation flag
func (r *FPSR) SetQC(qc bool) {
	r.value = utils.ModifyBit(27, r.value, qc)
}

// Returns the input denormal cumulative exception flag
func (r FPSR) IDC() bool {
	return utils.Bit(7, r.value)
}

// Sets the input denormal cumulative exception flag
func (r *FPSR) SetIDC(idc bool) {
	r.value = utils.ModifyBit(7, r.value, idc)
}

// Returns the inexact cumulative exception flag
func (r FPSR) IXC() bool {
	return utils.Bit(4, r.value)
}

// Sets the inexact cumulative exception flag
func (r *FPSR) SetIXC(ixc bool) {
	r.value = utils.ModifyBit(4, r.value, ixc)
}

// Returns the underflow cumulative exception flag
func (r FPSR) UFC() bool {
	return utils.Bit(3, r.value)
}

// Sets the underflow cumulative exception flag
func (r *FPSR) SetUFC(ufc bool) {
	r.value = utils.ModifyBit(3, r.value, ufc)
}

// Returns the overflow cumulative exception flag
func (r FPSR) OFC() bool {
	return utils.Bit(2, r.value)
}

// Sets the overflow cumulative exception flag
func (r *FPSR) SetOFC(ofc bool) {
	r.value = utils.ModifyBit(2, r.value, ofc)
}

// Returns the division by zero cumulative exception flag
func (r FPSR) DZC() bool {
	return utils.Bit(1, r.value)
}

// Sets the division by zero cumulative exception flag
func (r *FPSR) SetDZC(dzc bool) {
	r.value = utils.ModifyBit(1, r.value, dzc)
}

// Returns the invalid operation cumulative exception flag
func (r FPSR) IOC() bool {
	return utils.Bit(0, r.value)
}

// Sets the invalid operation cumulative exception flag
func (r *FPSR) SetIOC(ioc bool) {
	r.value = utils.ModifyBit(0, r.value, ioc)
}

// Returns the underlying raw value of the FPSR
func (r FPSR) Value() uint32 {
	return r.value
}

func (r FPSR) String() string {
	fields := make([]string, 0, 11)

	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"N", r.N()},
		{"Z", r.Z()},
		{"C", r.C()},
		{"V", r.V()},
		{"QC", r.QC()},
		{"IDC", r.IDC()},
		{"IXC", r.IXC()},
		{"UFC", r.UFC()},
		{"OFC", r.OFC()},
		{"DZC", r.DZC()},
		{"IOC", r.IOC()},
	} {
		if flag.set {
			fields = append(fields, flag.name)
		}
	}

	return fmt.Sprintf("FPSR{0x%08X %v}", r.value, strings.Join(fields, " "))
}
