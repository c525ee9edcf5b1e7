package fp

import "strings"

// Represents one of the four architectural rounding mode encodings. The
// numeric value of each member is exactly the 2-bit code stored in the control
// register; what each code means for an arithmetic result is decided by the
// floating-point operations consuming it, not here.
type RoundingMode uint

const (
	RoundingMode_ToNearest RoundingMode = iota
	RoundingMode_TowardsPlusInfinity
	RoundingMode_TowardsMinusInfinity
	RoundingMode_TowardsZero
)

func (m RoundingMode) String() string {
	switch m {
	case RoundingMode_ToNearest:
		return "ToNearest"
	case RoundingMode_TowardsPlusInfinity:
		return "TowardsPlusInfinity"
	case RoundingMode_TowardsMinusInfinity:
		return "TowardsMinusInfinity"
	case RoundingMode_TowardsZero:
		return "TowardsZero"
	}

	panic("unreachable")
}

// Parses a rounding mode name as printed by String(), case insensitively
func ParseRoundingMode(name string) (RoundingMode, error) {
	modes := []RoundingMode{
		RoundingMode_ToNearest,
		RoundingMode_TowardsPlusInfinity,
		RoundingMode_TowardsMinusInfinity,
		RoundingMode_TowardsZero,
	}

	for _, mode := range modes {
		if strings.EqualFold(name, mode.String()) {
			return mode, nil
		}
	}

	return 0, makeError(ErrInvalidRoundingMode, "'%v'", name)
}
