package fp

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// FpCmd groups the floating-point register subcommands
var FpCmd = &cobra.Command{
	Use:   "fp",
	Short: "Decode, build and inspect floating-point register words",
}

func init() {
	FpCmd.AddCommand(decodeCmd, encodeCmd, presetsCmd, inspectCmd)

	cobra.OnInitialize(func() {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
	})
}

// Parses a 32-bit register word written in any common radix. Bare hex is
// accepted with or without the 0x prefix since register dumps usually drop it.
func parseWord(text string) (uint32, error) {
	if word, err := strconv.ParseUint(text, 0, 32); err == nil {
		return uint32(word), nil
	}

	word, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a 32-bit register word: '%v'", text)
	}

	return uint32(word), nil
}
