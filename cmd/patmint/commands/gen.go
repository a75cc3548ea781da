package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sbvh/patmint/config"
	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/pat"
	"github.com/sbvh/patmint/sym"
)

// GenCmd represents the gen (one-shot minting) command
var GenCmd = &cobra.Command{
	Use:   "gen <pattern>",
	Short: sym.Mint + " Mint strings from a pattern",
	Long: sym.Mint + ` gen — Mint randomized strings from a pattern

Compiles the pattern to an expression, shows the expression, and prints
one freshly minted string per line.

Examples:
  patmint gen '.<12>'                 # 12 random printable characters
  patmint gen 'A"-"aaaa"-"##'         # e.g. Q-wkbs-37
  patmint gen -n 5 '{:0-9;:a-f;}<8>'  # five 8-char hex-ish strings
  patmint gen --source=false '#<6>'   # output only, no expression echo`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

var (
	genCount      int
	genShowSource bool
)

func init() {
	GenCmd.Flags().IntVarP(&genCount, "count", "n", 0, "Number of strings to mint (default from gen.count)")
	GenCmd.Flags().BoolVar(&genShowSource, "source", true, "Echo the compiled expression before the output")
}

func runGen(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	count := genCount
	if count <= 0 {
		count = cfg.GetGenCount()
	}

	showSource := cfg.Output.ShowSource
	if cmd.Flags().Changed("source") {
		showSource = genShowSource
	}

	src := entropy.Crypto{}

	for i := 0; i < count; i++ {
		result := pat.CompileAndRun(pattern, src)
		if !result.OK {
			// Echo the pattern so the caret line beneath it points at
			// the offending index.
			fmt.Fprintln(cmd.ErrOrStderr(), pattern)
			fmt.Fprintln(cmd.ErrOrStderr(), result.Output)
			return fmt.Errorf("%s invalid pattern", sym.Fail)
		}

		if showSource && i == 0 {
			pterm.FgGray.Println(sym.Pat + " " + result.Source)
		}
		fmt.Println(result.Output)
	}

	return nil
}
