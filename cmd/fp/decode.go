package fp

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Kappamalone/dynarmic/pkg/hw/fp"
)

var decodeStatus bool

var decodeCmd = &cobra.Command{
	Use:   "decode <word>",
	Short: "Decode a raw register word into its architectural fields",
	Long: `Decode constructs a register from a raw 32-bit word and prints every
architectural field. Reserved bits are discarded on construction, exactly as
the hardware reads them back as zero; a warning is logged when the input had
any set.

By default the word is decoded as an FPCR. Pass --status to decode it as an
FPSR instead`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := parseWord(args[0])
		if err != nil {
			return err
		}

		if decodeStatus {
			register := fp.NewFPSR(word)
			warnDiscardedBits("FPSR", word, register.Value())
			printFPSR(register)

			return nil
		}

		register := fp.NewFPCR(word)
		warnDiscardedBits("FPCR", word, register.Value())
		printFPCR(register)

		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeStatus, "status", false, "decode as FPSR instead of FPCR")
}

func warnDiscardedBits(register string, word uint32, masked uint32) {
	if discarded := word &^ masked; discarded != 0 {
		slog.Warn("discarded reserved bits",
			"register", register,
			"word", fmt.Sprintf("0x%08X", word),
			"discarded", fmt.Sprintf("0x%08X", discarded))
	}
}

func printFlag(name string, bits string, set bool) {
	state := colorFlagClear.Sprint("clear")
	if set {
		state = colorFlagSet.Sprint("set")
	}

	fmt.Printf("  %-8v %-8v %v\n", colorField.Sprint(name), colorBits.Sprint(bits), state)
}

func printField(name string, bits string, value string) {
	fmt.Printf("  %-8v %-8v %v\n", colorField.Sprint(name), colorBits.Sprint(bits), colorValue.Sprint(value))
}

func printFPCR(register fp.FPCR) {
	colorHeader.Println("FPCR")
	fmt.Printf("  %v %v\n", colorField.Sprint("word"), colorHex.Sprintf("0x%08X", register.Value()))

	printFlag("AHP", "26", register.AHP())
	printFlag("DN", "25", register.DN())
	printFlag("FZ", "24", register.FZ())
	printField("RMode", "23:22", fmt.Sprintf("%v (%v)", register.RMode(), uint(register.RMode())))

	if stride, ok := register.Stride(); ok {
		printField("Stride", "21:20", fmt.Sprintf("%v", stride))
	} else {
		printField("Stride", "21:20", colorWarning.Sprint("reserved encoding"))
	}

	printFlag("FZ16", "19", register.FZ16())
	printField("Len", "18:16", fmt.Sprintf("%v", register.Len()))
	printFlag("IDE", "15", register.IDE())
	printFlag("IXE", "12", register.IXE())
	printFlag("UFE", "11", register.UFE())
	printFlag("OFE", "10", register.OFE())
	printFlag("DZE", "9", register.DZE())
	printFlag("IOE", "8", register.IOE())
}

func printFPSR(register fp.FPSR) {
	colorHeader.Println("FPSR")
	fmt.Printf("  %v %v\n", colorField.Sprint("word"), colorHex.Sprintf("0x%08X", register.Value()))

	printFlag("N", "31", register.N())
	printFlag("Z", "30", register.Z())
	printFlag("C", "29", register.C())
	printFlag("V", "28", register.V())
	printFlag("QC", "27", register.QC())
	printFlag("IDC", "7", register.IDC())
	printFlag("IXC", "4", register.IXC())
	printFlag("UFC", "3", register.UFC())
	printFlag("OFC", "2", register.OFC())
	printFlag("DZC", "1", register.DZC())
	printFlag("IOC", "0", register.IOC())
}
