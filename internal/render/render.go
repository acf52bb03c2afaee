// ============================================================================
// strvec - Vectorized string primitives
// ============================================================================
//
// Package:     render
// Description: Writes sequences as indexed text, JSON or YAML
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/strvec/foundation/core/errors"
	"github.com/msto63/strvec/foundation/utils/stringx"
)

// Format is an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return FormatText, mdwerrors.InputError(mdwerrors.ModuleRender, "parse_format", s, "text, json or yaml")
	}
}

// Options configures a Renderer
type Options struct {
	Format   Format
	Color    bool
	NAString string
}

// Renderer writes results in one output format
type Renderer struct {
	format   Format
	color    bool
	naString string
}

// New creates a renderer
func New(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.NAString == "" {
		opts.NAString = "NA"
	}
	return &Renderer{format: opts.Format, color: opts.Color, naString: opts.NAString}
}

// Format returns the output format
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Sequence writes seq. Text output has one "[i] value" line per element
// with 1-based indices; JSON and YAML write a list with null for NA.
func Sequence[T any](r *Renderer, w io.Writer, seq []stringx.Value[T]) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.structured(w, plain(seq))
	}

	if len(seq) == 0 {
		_, err := fmt.Fprintln(w, r.style(NAStyle, "(leer)"))
		return err
	}

	width := len(strconv.Itoa(len(seq)))
	var b strings.Builder
	for i, v := range seq {
		idx := fmt.Sprintf("[%*d]", width, i+1)
		b.WriteString(r.style(IndexStyle, idx))
		b.WriteByte(' ')
		b.WriteString(r.element(v))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Indices writes 0-based positions, as returned by stringx.Order
func (r *Renderer) Indices(w io.Writer, positions []int) error {
	seq := make(stringx.IntSeq, len(positions))
	for i, p := range positions {
		seq[i] = stringx.Some(p)
	}
	return Sequence(r, w, seq)
}

// LengthTable writes each string with its byte and code point length.
// The value column is as wide as the longest element.
func (r *Renderer) LengthTable(w io.Writer, strs stringx.StringSeq, bytes, chars stringx.IntSeq) error {
	if r.format != FormatText {
		rows := make([]map[string]any, len(strs))
		for i := range strs {
			rows[i] = map[string]any{
				"value": plainValue(strs[i]),
				"bytes": plainValue(bytes[i]),
				"chars": plainValue(chars[i]),
			}
		}
		return r.structured(w, rows)
	}

	width := stringx.MaxNumBytes(strs) + 2
	if n := len(r.naString); width < n {
		width = n
	}
	if width < len("Wert") {
		width = len("Wert")
	}

	var b strings.Builder
	header := fmt.Sprintf("%-*s  %6s  %7s", width, "Wert", "Bytes", "Zeichen")
	b.WriteString(r.style(HeaderStyle, header))
	b.WriteByte('\n')
	for i, s := range strs {
		cell := r.naString
		if s.Valid {
			cell = strconv.Quote(s.V)
		}
		pad := width - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if s.Valid {
			b.WriteString(r.style(ValueStyle, cell))
		} else {
			b.WriteString(r.style(NAStyle, cell))
		}
		b.WriteString(strings.Repeat(" ", pad))
		fmt.Fprintf(&b, "  %6s  %7s\n", r.plainText(bytes[i]), r.plainText(chars[i]))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Value writes an arbitrary value: text uses fmt, JSON and YAML encode it
func (r *Renderer) Value(w io.Writer, v any) error {
	if r.format == FormatText {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	return r.structured(w, v)
}

// Warning writes a styled warning line
func (r *Renderer) Warning(w io.Writer, message string) {
	fmt.Fprintln(w, r.style(WarningStyle, "Warnung: ")+message)
}

// Error writes a styled error line
func (r *Renderer) Error(w io.Writer, message string) {
	fmt.Fprintln(w, r.style(ErrorStyle, "Fehler: ")+message)
}

type element interface {
	IsNA() bool
	String() string
}

func (r *Renderer) element(v element) string {
	if v.IsNA() {
		return r.style(NAStyle, r.naString)
	}
	return r.style(ValueStyle, v.String())
}

func (r *Renderer) plainText(v stringx.Value[int]) string {
	if !v.Valid {
		return r.naString
	}
	return strconv.Itoa(v.V)
}

func (r *Renderer) structured(w io.Writer, v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

func plain[T any](seq []stringx.Value[T]) []any {
	out := make([]any, len(seq))
	for i, v := range seq {
		out[i] = plainValue(v)
	}
	return out
}

func plainValue[T any](v stringx.Value[T]) any {
	if !v.Valid {
		return nil
	}
	return v.V
}
