package cmd

import (
	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/internal/render"
	"github.com/metaphox/monkey-lang/lexer"
)

var lexFormat string

var lexCmd = &cobra.Command{
	Use:   "lex [file|-]",
	Short: "Print the tokens of a source file",
	Long: `Scans a file (or stdin) and prints one token per line, including the
final EOF token.

Examples:
  monkey lex program.mk
  monkey lex --format json program.mk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	lexCmd.Flags().StringVarP(&lexFormat, "format", "f", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(lexFormat)
	if err != nil {
		return err
	}
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	toks := lexer.New(src).Tokens()
	logger.Debug("scanned", "tokens", len(toks))
	return render.Tokens(cmd.OutOrStdout(), toks, format, styles())
}
