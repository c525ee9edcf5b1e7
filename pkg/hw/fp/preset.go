package fp

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrMalformedPreset = errors.New("malformed preset")

// A named control register configuration, as written in a presets YAML file.
// Omitted fields keep the register default (zero). Stride and Len are
// pointers so "not configured" is distinguishable from an explicit value.
type Preset struct {
	RMode  string `yaml:"rmode,omitempty"`
	Stride *uint  `yaml:"stride,omitempty"`
	Len    *uint  `yaml:"len,omitempty"`
	AHP    bool   `yaml:"ahp,omitempty"`
	DN     bool   `yaml:"dn,omitempty"`
	FZ     bool   `yaml:"fz,omitempty"`
	FZ16   bool   `yaml:"fz16,omitempty"`
	IDE    bool   `yaml:"ide,omitempty"`
	IXE    bool   `yaml:"ixe,omitempty"`
	UFE    bool   `yaml:"ufe,omitempty"`
	OFE    bool   `yaml:"ofe,omitempty"`
	DZE    bool   `yaml:"dze,omitempty"`
	IOE    bool   `yaml:"ioe,omitempty"`
}

// Builds the control register described by the preset. Every field goes
// through the validated setters, so an out-of-range preset fails exactly like
// the equivalent setter call would.
func (p Preset) Apply() (FPCR, error) {
	var register FPCR

	if p.RMode != "" {
		mode, err := ParseRoundingMode(p.RMode)

		if err != nil {
			return FPCR{}, err
		}

		if err := register.SetRMode(mode); err != nil {
			return FPCR{}, err
		}
	}

	if p.Stride != nil {
		if err := register.SetStride(*p.Stride); err != nil {
			return FPCR{}, err
		}
	}

	if p.Len != nil {
		if err := register.SetLen(*p.Len); err != nil {
			return FPCR{}, err
		}
	}

	register.SetAHP(p.AHP)
	register.SetDN(p.DN)
	register.SetFZ(p.FZ)
	register.SetFZ16(p.FZ16)
	register.SetIDE(p.IDE)
	register.SetIXE(p.IXE)
	register.SetUFE(p.UFE)
	register.SetOFE(p.OFE)
	register.SetDZE(p.DZE)
	register.SetIOE(p.IOE)

	return register, nil
}

// Reads a YAML document mapping preset names to presets
func LoadPresets(reader io.Reader) (map[string]Preset, error) {
	presets := make(map[string]Preset)

	if err := yaml.NewDecoder(reader).Decode(&presets); err != nil {
		return nil, makeError(ErrMalformedPreset, "%v", err)
	}

	return presets, nil
}
