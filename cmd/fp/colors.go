package fp

import "github.com/fatih/color"

// =============================================================================
// Color definitions for CLI output
// =============================================================================

var (
	colorHeader    = color.New(color.FgWhite, color.Bold, color.Underline)
	colorField     = color.New(color.FgGreen)
	colorValue     = color.New(color.FgWhite, color.Bold)
	colorHex       = color.New(color.FgMagenta)
	colorBits      = color.New(color.FgCyan)
	colorFlagSet   = color.New(color.FgGreen, color.Bold)
	colorFlagClear = color.New(color.FgHiBlack)
	colorWarning   = color.New(color.FgYellow)
)
