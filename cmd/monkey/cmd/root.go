package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/internal/config"
	"github.com/metaphox/monkey-lang/internal/logs"
	"github.com/metaphox/monkey-lang/internal/render"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg      *config.Config
	logger   logs.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey language scanner and parser",
	Long: `monkey scans and parses Monkey source text.

Without a subcommand it starts the interactive REPL.

Examples:
  monkey
  monkey lex program.mk
  monkey parse --format yaml program.mk
  echo 'let x = 1 + 2;' | monkey parse`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runREPL,
}

// Execute runs the command tree; Ctrl-C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if closeLog != nil {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MONKEY_CONFIG, ./monkey.toml, ~/.config/monkey/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noColor {
		cfg.REPL.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err = logs.New(logs.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "mode", cfg.REPL.Mode, "log_file", cfg.Log.File)
	return nil
}

func styles() render.Styles {
	return render.NewStyles(!cfg.REPL.NoColor)
}

// readSource returns the contents of the file named by args[0], or stdin when
// no file or "-" is given.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
