package fp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPresets(t *testing.T) {
	document := `
ieee-strict:
  rmode: ToNearest
  ioe: true
  dze: true
  ofe: true
  ufe: true
  ixe: true
fast:
  fz: true
  dn: true
vfp-short-vectors:
  len: 4
  stride: 2
`

	presets, err := LoadPresets(strings.NewReader(document))

	assert.NoError(t, err)
	assert.Len(t, presets, 3)

	strict, err := presets["ieee-strict"].Apply()
	assert.NoError(t, err)
	assert.Equal(t, RoundingMode_ToNearest, strict.RMode())
	assert.True(t, strict.IOE())
	assert.True(t, strict.DZE())
	assert.True(t, strict.OFE())
	assert.True(t, strict.UFE())
	assert.True(t, strict.IXE())
	assert.False(t, strict.IDE())

	fast, err := presets["fast"].Apply()
	assert.NoError(t, err)
	assert.True(t, fast.FZ())
	assert.True(t, fast.DN())
	assert.Equal(t, uint32(1<<24|1<<25), fast.Value())

	vectors, err := presets["vfp-short-vectors"].Apply()
	assert.NoError(t, err)
	assert.Equal(t, uint(4), vectors.Len())

	stride, ok := vectors.Stride()
	assert.True(t, ok)
	assert.Equal(t, uint(2), stride)
}

func TestPresetApplyRejectsBadFields(t *testing.T) {
	badLen := uint(9)
	_, err := Preset{Len: &badLen}.Apply()
	assert.ErrorIs(t, err, ErrInvalidLen)

	badStride := uint(3)
	_, err = Preset{Stride: &badStride}.Apply()
	assert.ErrorIs(t, err, ErrInvalidStride)

	_, err = Preset{RMode: "inwards"}.Apply()
	assert.ErrorIs(t, err, ErrInvalidRoundingMode)
}

func TestLoadPresetsMalformed(t *testing.T) {
	_, err := LoadPresets(strings.NewReader("- not\n- a\n- mapping"))

	assert.ErrorIs(t, err, ErrMalformedPreset)
}
