// Package render prints tokens, programs and parse errors for the monkey
// command and its REPL.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/metaphox/monkey-lang/ast"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("render: unknown format %q (want text, json or yaml)", s)
}

// Styles decorates terminal output. The zero value prints plain text.
type Styles struct {
	color  bool
	err    lipgloss.Style
	banner lipgloss.Style
	dim    lipgloss.Style
}

// NewStyles returns styles that colour output when color is true.
func NewStyles(color bool) Styles {
	return Styles{
		color:  color,
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		banner: lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s Styles) apply(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// Error styles an error line.
func (s Styles) Error(text string) string { return s.apply(s.err, text) }

// Banner styles the REPL greeting.
func (s Styles) Banner(text string) string { return s.apply(s.banner, text) }

// Dim styles secondary information such as token positions.
func (s Styles) Dim(text string) string { return s.apply(s.dim, text) }

// Tokens writes toks in the given format. Text output has one token per line:
// position, type and quoted literal.
func Tokens(w io.Writer, toks []ast.Token, format Format, st Styles) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, toks)
	case FormatYAML:
		return writeYAML(w, toks)
	}
	for _, tok := range toks {
		pos := st.Dim(fmt.Sprintf("%d:%d", tok.Line, tok.Col))
		if _, err := fmt.Fprintf(w, "%-7s %-9s %q\n", pos, tok.Type, tok.Literal); err != nil {
			return err
		}
	}
	return nil
}

// Program writes prog in the given format. Text output is the canonical
// parenthesised form; JSON and YAML output is a tree of node objects.
func Program(w io.Writer, prog *ast.Program, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, Tree(prog))
	case FormatYAML:
		return writeYAML(w, Tree(prog))
	}
	_, err := io.WriteString(w, prog.String())
	return err
}

// Errors writes one styled line per error.
func Errors(w io.Writer, errs []error, st Styles) error {
	for _, err := range errs {
		if _, werr := fmt.Fprintln(w, st.Error("error: "+err.Error())); werr != nil {
			return werr
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
