package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/config"
)

var configCmdFlags configFlags

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective puzzle configuration",
	Long: `Resolve the configuration the same way 'play' and 'sim' do and
print it as YAML. The output is a valid config file.

Config search order:
  1. --config path
  2. ~/.puzzle/configs/puzzle.yaml
  3. ./configs/puzzle.yaml
  4. built-in defaults

Examples:
  puzzle config > ~/.puzzle/configs/puzzle.yaml
  puzzle config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmdFlags.register(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := configCmdFlags.load()
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(out))
}
