package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbvh/patmint/cmd/patmint/commands"
	"github.com/sbvh/patmint/config"
	"github.com/sbvh/patmint/logger"
)

var rootCmd = &cobra.Command{
	Use:   "patmint",
	Short: "patmint - Pattern-driven string minting",
	Long: `patmint - Mint randomized strings from compact pattern text.

A pattern is a sequence of tokens, each standing for a class of characters
to draw, with repetition, grouping, choice, and range forms on top:

  .        any printable ASCII character
  a / A    lowercase / uppercase letter
  #        digit
  @        symbol            $  common symbol
  "text"   literal text      [abc]  sample from a set
  <n>      repeat the previous token n times
  (...)    sequential group  {...}  pick one member at random
  :1-31;   numeric range     :a-f;  character range

Every turn shows the expression the pattern compiles to, then the string
minted from it.

Examples:
  patmint gen 'A"-"aaaa"-"##'     # mint one string
  patmint gen -n 5 '[0-9a-f]<8>'  # mint five
  patmint repl                    # interactive loop
  patmint config show             # show configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := config.Load()
		if err == nil {
			logger.SetTheme(cfg.GetTheme())
		}

		jsonOutput := cfg != nil && cfg.Output.JSON
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.GenCmd)
	rootCmd.AddCommand(commands.ReplCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
