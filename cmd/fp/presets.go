package fp

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kappamalone/dynarmic/pkg/hw/fp"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [file]",
	Short: "Resolve named FPCR configurations from a YAML file",
	Long: `Presets reads a YAML file mapping names to control register
configurations and resolves each one to its register word. Without an
argument the path comes from the 'presets' config key.

Example file:

    ieee-strict:
      rmode: ToNearest
      ioe: true
      dze: true
    fast:
      fz: true
      dn: true`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("presets")
		if len(args) > 0 {
			path = args[0]
		}

		if path == "" {
			return fmt.Errorf("no presets file given and no 'presets' config key set")
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		presets, err := fp.LoadPresets(file)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			register, err := presets[name].Apply()
			if err != nil {
				return fmt.Errorf("preset '%v': %w", name, err)
			}

			fmt.Printf("%-24v %v  %v\n",
				colorField.Sprint(name),
				colorHex.Sprintf("0x%08X", register.Value()),
				colorValue.Sprint(register))
		}

		return nil
	},
}
