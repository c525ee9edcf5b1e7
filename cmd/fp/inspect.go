package fp

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/Kappamalone/dynarmic/pkg/hw/fp"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [word]",
	Short: "Interactively edit an FPCR word",
	Long: `Inspect opens a terminal UI with one control per architectural field and a
live view of the resulting register word. Starts from zero or from the given
word. Press Escape or q to leave`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var register fp.FPCR

		if len(args) > 0 {
			word, err := parseWord(args[0])
			if err != nil {
				return err
			}

			register = fp.NewFPCR(word)
		}

		return runInspector(&register)
	},
}

func runInspector(register *fp.FPCR) error {
	app := tview.NewApplication()

	view := tview.NewTextView().SetDynamicColors(true)
	view.SetBorder(true).SetTitle(" FPCR ")

	redraw := func() {
		value := register.Value()

		stride := "reserved encoding"
		if s, ok := register.Stride(); ok {
			stride = fmt.Sprint(s)
		}

		view.SetText(fmt.Sprintf(
			"[yellow]word[-]   0x%08X\n[yellow]binary[-] %032b\n\n[yellow]rmode[-]  %v\n[yellow]stride[-] %v\n[yellow]len[-]    %v\n\n%v",
			value, value, register.RMode(), stride, register.Len(), register))
	}
	redraw()

	strideIndex := -1
	if stride, ok := register.Stride(); ok {
		strideIndex = int(stride) - 1
	}

	form := tview.NewForm().
		AddDropDown("Rounding mode", []string{
			fp.RoundingMode_ToNearest.String(),
			fp.RoundingMode_TowardsPlusInfinity.String(),
			fp.RoundingMode_TowardsMinusInfinity.String(),
			fp.RoundingMode_TowardsZero.String(),
		}, int(register.RMode()), func(option string, index int) {
			if index < 0 {
				return
			}

			// the dropdown only offers the four valid codes
			_ = register.SetRMode(fp.RoundingMode(index))
			redraw()
		}).
		AddDropDown("Vector length", []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			int(register.Len())-1, func(option string, index int) {
				if index < 0 {
					return
				}

				_ = register.SetLen(uint(index + 1))
				redraw()
			}).
		AddDropDown("Vector stride", []string{"1", "2"}, strideIndex,
			func(option string, index int) {
				if index < 0 {
					return
				}

				stride, _ := strconv.Atoi(option)
				_ = register.SetStride(uint(stride))
				redraw()
			})

	flags := []struct {
		label   string
		checked bool
		set     func(*fp.FPCR, bool)
	}{
		{"AHP  alternate half-precision", register.AHP(), (*fp.FPCR).SetAHP},
		{"DN   default NaN", register.DN(), (*fp.FPCR).SetDN},
		{"FZ   flush-to-zero", register.FZ(), (*fp.FPCR).SetFZ},
		{"FZ16 flush-to-zero (half)", register.FZ16(), (*fp.FPCR).SetFZ16},
		{"IDE  input denormal trap", register.IDE(), (*fp.FPCR).SetIDE},
		{"IXE  inexact trap", register.IXE(), (*fp.FPCR).SetIXE},
		{"UFE  underflow trap", register.UFE(), (*fp.FPCR).SetUFE},
		{"OFE  overflow trap", register.OFE(), (*fp.FPCR).SetOFE},
		{"DZE  divide-by-zero trap", register.DZE(), (*fp.FPCR).SetDZE},
		{"IOE  invalid-operation trap", register.IOE(), (*fp.FPCR).SetIOE},
	}

	for _, flag := range flags {
		set := flag.set

		form.AddCheckbox(flag.label, flag.checked, func(checked bool) {
			set(register, checked)
			redraw()
		})
	}

	form.SetBorder(true).SetTitle(" Fields ")

	layout := tview.NewFlex().
		AddItem(form, 0, 1, true).
		AddItem(view, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}

		return event
	})

	return app.SetRoot(layout, true).Run()
}
