// Package repl implements the interactive read-parse-print loop of the
// monkey command. Each line is scanned and either printed token by token or
// parsed and printed as a program.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/metaphox/monkey-lang/internal/config"
	"github.com/metaphox/monkey-lang/internal/render"
	"github.com/metaphox/monkey-lang/lexer"
	"github.com/metaphox/monkey-lang/parser"
)

// ErrInterrupt is returned by a LineReader when the user presses Ctrl-C.
// Readers with their own sentinel can be adapted by mapping it to this value.
var ErrInterrupt = errors.New("repl: interrupt")

// LineReader supplies one line of input per call and io.EOF at the end.
type LineReader interface {
	Readline() (string, error)
}

// Options configures a session.
type Options struct {
	Mode   string // config.ModeTokens or config.ModeAST
	Styles render.Styles
	Logger *slog.Logger
}

const helpText = `Commands:
  :mode tokens   print the tokens of each line
  :mode ast      parse each line and print the program
  :help          show this help
  :quit          leave the REPL
`

// Banner is printed by the CLI before the first prompt.
const Banner = "Hello! This is the Monkey programming language!\nFeel free to type in commands"

// Run reads lines from in until EOF, an interrupt, :quit or cancellation of
// ctx, writing results to out.
func Run(ctx context.Context, in LineReader, out io.Writer, opts Options) error {
	mode := opts.Mode
	if mode == "" {
		mode = config.ModeAST
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log.Debug("repl session start", "mode", mode)
	defer log.Debug("repl session end")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: read: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := command(line, &mode, out, opts.Styles)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		switch mode {
		case config.ModeTokens:
			err = printTokens(line, out, opts.Styles)
		default:
			err = printProgram(line, out, opts.Styles, log)
		}
		if err != nil {
			return fmt.Errorf("repl: write: %w", err)
		}
	}
}

// command handles a ':' directive. It reports whether the session should end.
func command(line string, mode *string, out io.Writer, st render.Styles) (bool, error) {
	fields := strings.Fields(line)
	var err error
	switch fields[0] {
	case ":q", ":quit":
		return true, nil
	case ":help":
		_, err = io.WriteString(out, helpText)
	case ":mode":
		if len(fields) == 2 && (fields[1] == config.ModeTokens || fields[1] == config.ModeAST) {
			*mode = fields[1]
			_, err = fmt.Fprintf(out, "mode: %s\n", *mode)
		} else {
			_, err = fmt.Fprintln(out, st.Error("usage: :mode tokens|ast"))
		}
	default:
		_, err = fmt.Fprintln(out, st.Error(fmt.Sprintf("unknown command %s (try :help)", fields[0])))
	}
	return false, err
}

// printTokens prints every token of line except the final EOF.
func printTokens(line string, out io.Writer, st render.Styles) error {
	toks := lexer.New(line).Tokens()
	return render.Tokens(out, toks[:len(toks)-1], render.FormatText, st)
}

func printProgram(line string, out io.Writer, st render.Styles, log *slog.Logger) error {
	p := parser.New(lexer.New(line), parser.WithLogger(log))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		log.Debug("line rejected", "errors", len(errs))
		return render.Errors(out, errs, st)
	}
	log.Debug("line parsed", "statements", len(prog.Statements))
	return render.Program(out, prog, render.FormatText)
}
