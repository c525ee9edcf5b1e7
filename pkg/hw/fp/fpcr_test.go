package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fpcrReservedBits = ^fpcrMask

func TestFPCRMasking(t *testing.T) {
	words := []uint32{0, 0xFFFFFFFF, 0x07FF9F00, 0xF80060FF, 0x12345678, 0x00C00C00}

	for _, word := range words {
		register := NewFPCR(word)

		assert.Equal(t, word&fpcrMask, register.Value())
		assert.Zero(t, register.Value()&fpcrReservedBits)
	}
}

func TestFPCRAssignMasks(t *testing.T) {
	var register FPCR
	register.Assign(0xFFFFFFFF)

	assert.Equal(t, fpcrMask, register.Value())

	register.Assign(fpcrReservedBits)

	assert.Zero(t, register.Value())
}

func TestFPCRZeroValue(t *testing.T) {
	var register FPCR

	assert.Zero(t, register.Value())
	assert.False(t, register.AHP())
	assert.Equal(t, RoundingMode_ToNearest, register.RMode())
	assert.Equal(t, uint(1), register.Len())

	stride, ok := register.Stride()
	assert.True(t, ok)
	assert.Equal(t, uint(1), stride)
}

func TestFPCRBooleanFieldRoundTrip(t *testing.T) {
	fields := []struct {
		name string
		bit  int
		get  func(FPCR) bool
		set  func(*FPCR, bool)
	}{
		{"AHP", 26, FPCR.AHP, (*FPCR).SetAHP},
		{"DN", 25, FPCR.DN, (*FPCR).SetDN},
		{"FZ", 24, FPCR.FZ, (*FPCR).SetFZ},
		{"FZ16", 19, FPCR.FZ16, (*FPCR).SetFZ16},
		{"IDE", 15, FPCR.IDE, (*FPCR).SetIDE},
		{"IXE", 12, FPCR.IXE, (*FPCR).SetIXE},
		{"UFE", 11, FPCR.UFE, (*FPCR).SetUFE},
		{"OFE", 10, FPCR.OFE, (*FPCR).SetOFE},
		{"DZE", 9, FPCR.DZE, (*FPCR).SetDZE},
		{"IOE", 8, FPCR.IOE, (*FPCR).SetIOE},
	}

	for _, field := range fields {
		t.Run(field.name, func(t *testing.T) {
			var register FPCR

			field.set(&register, true)
			assert.True(t, field.get(register))
			assert.Equal(t, uint32(1)<<field.bit, register.Value())

			field.set(&register, false)
			assert.False(t, field.get(register))
			assert.Zero(t, register.Value())

			// toggling against a fully populated word touches only this bit
			register = NewFPCR(0xFFFFFFFF)
			field.set(&register, false)
			assert.Equal(t, fpcrMask&^(uint32(1)<<field.bit), register.Value())
		})
	}
}

func TestFPCRRModeRoundTrip(t *testing.T) {
	modes := []RoundingMode{
		RoundingMode_ToNearest,
		RoundingMode_TowardsPlusInfinity,
		RoundingMode_TowardsMinusInfinity,
		RoundingMode_TowardsZero,
	}

	for _, mode := range modes {
		var register FPCR

		assert.NoError(t, register.SetRMode(mode))
		assert.Equal(t, mode, register.RMode())
		assert.Equal(t, uint32(mode)<<22, register.Value())
	}
}

func TestFPCRRModeRejectsOutOfRange(t *testing.T) {
	register := NewFPCR(0x00C00C00)
	before := register

	err := register.SetRMode(RoundingMode(4))

	assert.ErrorIs(t, err, ErrInvalidRoundingMode)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, before, register)
}

func TestFPCRStrideEncoding(t *testing.T) {
	var register FPCR

	assert.NoError(t, register.SetStride(1))
	stride, ok := register.Stride()
	assert.True(t, ok)
	assert.Equal(t, uint(1), stride)
	assert.Zero(t, register.Value())

	assert.NoError(t, register.SetStride(2))
	stride, ok = register.Stride()
	assert.True(t, ok)
	assert.Equal(t, uint(2), stride)
	assert.Equal(t, uint32(0b11)<<20, register.Value())
}

func TestFPCRStrideRejectsOutOfRange(t *testing.T) {
	for _, invalid := range []uint{0, 3, 8} {
		register := NewFPCR(0x00300000)
		before := register

		err := register.SetStride(invalid)

		assert.ErrorIs(t, err, ErrInvalidStride)
		assert.Equal(t, before, register)
	}
}

func TestFPCRStrideReservedPatternsReadAbsent(t *testing.T) {
	// patterns 0b01 and 0b10 in bits 21:20 have no stride value
	for _, word := range []uint32{0b01 << 20, 0b10 << 20} {
		register := NewFPCR(word)

		stride, ok := register.Stride()
		assert.False(t, ok)
		assert.Zero(t, stride)
	}
}

func TestFPCRLenEncoding(t *testing.T) {
	for length := uint(1); length <= 8; length++ {
		var register FPCR

		assert.NoError(t, register.SetLen(length))
		assert.Equal(t, length, register.Len())
		assert.Equal(t, uint32(length-1)<<16, register.Value())
	}
}

func TestFPCRLenRejectsOutOfRange(t *testing.T) {
	for _, invalid := range []uint{0, 9, 100} {
		register := NewFPCR(0x00070000)
		before := register

		err := register.SetLen(invalid)

		assert.ErrorIs(t, err, ErrInvalidLen)
		assert.Equal(t, before, register)
	}
}

func TestFPCRFieldIndependence(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*FPCR)
		bits   uint32
	}{
		{"AHP", func(r *FPCR) { r.SetAHP(false) }, 1 << 26},
		{"DN", func(r *FPCR) { r.SetDN(false) }, 1 << 25},
		{"FZ", func(r *FPCR) { r.SetFZ(false) }, 1 << 24},
		{"RMode", func(r *FPCR) { assert.NoError(t, r.SetRMode(RoundingMode_ToNearest)) }, 0b11 << 22},
		{"Stride", func(r *FPCR) { assert.NoError(t, r.SetStride(1)) }, 0b11 << 20},
		{"FZ16", func(r *FPCR) { r.SetFZ16(false) }, 1 << 19},
		{"Len", func(r *FPCR) { assert.NoError(t, r.SetLen(1)) }, 0b111 << 16},
		{"IDE", func(r *FPCR) { r.SetIDE(false) }, 1 << 15},
		{"IXE", func(r *FPCR) { r.SetIXE(false) }, 1 << 12},
		{"UFE", func(r *FPCR) { r.SetUFE(false) }, 1 << 11},
		{"OFE", func(r *FPCR) { r.SetOFE(false) }, 1 << 10},
		{"DZE", func(r *FPCR) { r.SetDZE(false) }, 1 << 9},
		{"IOE", func(r *FPCR) { r.SetIOE(false) }, 1 << 8},
	}

	for _, mutation := range mutations {
		t.Run(mutation.name, func(t *testing.T) {
			// all fields set, then clear one: every other bit must survive
			register := NewFPCR(0xFFFFFFFF)
			before := register.Value()

			mutation.mutate(&register)

			assert.Equal(t, before&^mutation.bits, register.Value())
		})
	}
}

func TestFPCREquality(t *testing.T) {
	assert.Equal(t, NewFPCR(0x00C00C00), NewFPCR(0x00C00C00))

	// words differing only in reserved bits mask to the same register
	assert.Equal(t, NewFPCR(0x00C00C00), NewFPCR(0xF8C06CFF))

	assert.NotEqual(t, NewFPCR(0x00C00C00), NewFPCR(0x00C00800))
}

func TestFPCRDecodeExample(t *testing.T) {
	// RMode code 3 (bits 23:22), UFE and OFE (bits 11:10), stride bits 21:20
	// forced to the reserved 0b01 pattern
	register := NewFPCR(0x00D00C00)

	assert.Equal(t, RoundingMode_TowardsZero, register.RMode())
	assert.True(t, register.UFE())
	assert.True(t, register.OFE())
	assert.False(t, register.AHP())
	assert.False(t, register.DN())
	assert.False(t, register.FZ())
	assert.Equal(t, uint(1), register.Len())

	_, ok := register.Stride()
	assert.False(t, ok)
}

func TestFPCRString(t *testing.T) {
	register := NewFPCR(0x00D00C00)
	rendered := register.String()

	assert.Contains(t, rendered, "0x00D00C00")
	assert.Contains(t, rendered, "UFE")
	assert.Contains(t, rendered, "OFE")
	assert.Contains(t, rendered, "RMode=TowardsZero")
	assert.Contains(t, rendered, "Stride=reserved")
}
