package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/internal/render"
	"github.com/metaphox/monkey-lang/lexer"
	"github.com/metaphox/monkey-lang/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a source file and print the program",
	Long: `Parses a file (or stdin). Text output is the fully parenthesised
program; json and yaml print the syntax tree. Parse errors go to stderr and
make the command fail.

Examples:
  monkey parse program.mk
  echo 'let x = 1 + 2;' | monkey parse --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(parseFormat)
	if err != nil {
		return err
	}
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(src), parser.WithLogger(logger))
	prog := p.ParseProgram()
	if err := render.Program(cmd.OutOrStdout(), prog, format); err != nil {
		return err
	}

	errs := p.Errors()
	logger.Debug("parsed", "statements", len(prog.Statements), "errors", len(errs))
	if len(errs) == 0 {
		return nil
	}
	if err := render.Errors(cmd.ErrOrStderr(), errs, styles()); err != nil {
		return err
	}
	return fmt.Errorf("%d parse error(s)", len(errs))
}
