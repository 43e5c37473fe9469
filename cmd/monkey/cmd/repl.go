package cmd

import (
	"errors"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/repl"
)

var replMode string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Long: `Reads one line at a time and prints either its tokens or its parsed
program. Type :help for REPL commands, :quit or Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().StringVarP(&replMode, "mode", "m", "", "start mode: tokens or ast (default from config)")
	rootCmd.AddCommand(replCmd)
}

// readlineReader maps readline's interrupt sentinel onto the REPL's.
type readlineReader struct {
	rl *readline.Instance
}

func (r readlineReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return line, repl.ErrInterrupt
	}
	return line, err
}

func runREPL(cmd *cobra.Command, args []string) error {
	if replMode != "" {
		cfg.REPL.Mode = replMode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.REPL.Prompt,
		HistoryFile: cfg.REPL.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("start line editor: %w", err)
	}
	defer rl.Close()

	st := styles()
	fmt.Fprintln(cmd.OutOrStdout(), st.Banner(repl.Banner))

	return repl.Run(cmd.Context(), readlineReader{rl: rl}, cmd.OutOrStdout(), repl.Options{
		Mode:   cfg.REPL.Mode,
		Styles: st,
		Logger: logger,
	})
}
