package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/panel-arcade/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the panel config",
	Long: `Print the built-in default config, ready to copy and edit.

With --effective, print the config that would be used after
searching --config, ~/.arcade/configs/panel.yaml and ./configs/panel.yaml.

Examples:
  panel config > ~/.arcade/configs/panel.yaml
  panel config --effective --config ./my-panel.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	cfg, err := config.LoadPanel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
