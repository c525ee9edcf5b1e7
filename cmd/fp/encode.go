package fp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kappamalone/dynarmic/pkg/hw/fp"
)

var encodeFlags struct {
	from   string
	rmode  string
	stride uint
	len    uint
	ahp    bool
	dn     bool
	fz     bool
	fz16   bool
	ide    bool
	ixe    bool
	ufe    bool
	ofe    bool
	dze    bool
	ioe    bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build an FPCR word from field values",
	Long: `Encode builds a control register word field by field, starting from zero
or from the word given with --from. Field values outside their architectural
encoding are rejected before anything is written`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var register fp.FPCR

		if encodeFlags.from != "" {
			word, err := parseWord(encodeFlags.from)
			if err != nil {
				return err
			}

			register.Assign(word)
		}

		if cmd.Flags().Changed("rmode") {
			mode, err := fp.ParseRoundingMode(encodeFlags.rmode)
			if err != nil {
				return err
			}

			if err := register.SetRMode(mode); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("stride") {
			if err := register.SetStride(encodeFlags.stride); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("len") {
			if err := register.SetLen(encodeFlags.len); err != nil {
				return err
			}
		}

		boolFlags := []struct {
			name  string
			value bool
			set   func(*fp.FPCR, bool)
		}{
			{"ahp", encodeFlags.ahp, (*fp.FPCR).SetAHP},
			{"dn", encodeFlags.dn, (*fp.FPCR).SetDN},
			{"fz", encodeFlags.fz, (*fp.FPCR).SetFZ},
			{"fz16", encodeFlags.fz16, (*fp.FPCR).SetFZ16},
			{"ide", encodeFlags.ide, (*fp.FPCR).SetIDE},
			{"ixe", encodeFlags.ixe, (*fp.FPCR).SetIXE},
			{"ufe", encodeFlags.ufe, (*fp.FPCR).SetUFE},
			{"ofe", encodeFlags.ofe, (*fp.FPCR).SetOFE},
			{"dze", encodeFlags.dze, (*fp.FPCR).SetDZE},
			{"ioe", encodeFlags.ioe, (*fp.FPCR).SetIOE},
		}

		for _, flag := range boolFlags {
			if cmd.Flags().Changed(flag.name) {
				flag.set(&register, flag.value)
			}
		}

		fmt.Println(colorHex.Sprintf("0x%08X", register.Value()))
		fmt.Println(colorValue.Sprint(register))

		return nil
	},
}

func init() {
	flags := encodeCmd.Flags()

	flags.StringVar(&encodeFlags.from, "from", "", "start from this word instead of zero")
	flags.StringVar(&encodeFlags.rmode, "rmode", "", "rounding mode (ToNearest, TowardsPlusInfinity, TowardsMinusInfinity, TowardsZero)")
	flags.UintVar(&encodeFlags.stride, "stride", 1, "vector stride (1 or 2)")
	flags.UintVar(&encodeFlags.len, "len", 1, "vector length (1 to 8)")
	flags.BoolVar(&encodeFlags.ahp, "ahp", false, "alternate half-precision")
	flags.BoolVar(&encodeFlags.dn, "dn", false, "default NaN")
	flags.BoolVar(&encodeFlags.fz, "fz", false, "flush-to-zero")
	flags.BoolVar(&encodeFlags.fz16, "fz16", false, "flush-to-zero for half-precision")
	flags.BoolVar(&encodeFlags.ide, "ide", false, "input denormal trap enable")
	flags.BoolVar(&encodeFlags.ixe, "ixe", false, "inexact trap enable")
	flags.BoolVar(&encodeFlags.ufe, "ufe", false, "underflow trap enable")
	flags.BoolVar(&encodeFlags.ofe, "ofe", false, "overflow trap enable")
	flags.BoolVar(&encodeFlags.dze, "dze", false, "divide-by-zero trap enable")
	flags.BoolVar(&encodeFlags.ioe, "ioe", false, "invalid-operation trap enable")
}
