// Package headless evaluates one calculator from configuration and writes
// the outcome to a stream, without starting the dashboard.
package headless

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/tui/components"
	"github.com/ordash/ordash/internal/util"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or yaml)", s)
}

// Value is one named number of a report.
type Value struct {
	Key      string
	Label    string
	Number   float64
	Decimals int
	Money    bool
	Unit     string
}

// Report is the outcome of one headless evaluation. Results is empty when
// Diagnostic is set.
type Report struct {
	Mode       models.Mode
	Title      string
	Solver     string
	Currency   string
	Inputs     []Value
	Results    []Value
	Diagnostic string
}

// DiagnosticError reports a calculation that produced a diagnostic instead
// of results. The report was still written.
type DiagnosticError struct {
	Mode models.Mode
	Err  error
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%s: %v", e.Mode, e.Err)
}

func (e *DiagnosticError) Unwrap() error {
	return e.Err
}

// IsDiagnostic reports whether err is a calculator diagnostic rather than a
// failure of the program itself.
func IsDiagnostic(err error) bool {
	var d *DiagnosticError
	return errors.As(err, &d)
}

// MarshalYAML encodes the report as an ordered mapping so inputs and
// results keep their display order.
func (r *Report) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		v := &yaml.Node{}
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, v)
		return nil
	}
	section := func(key string, values []Value) error {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, val := range values {
			n := &yaml.Node{}
			if err := n.Encode(val.Number); err != nil {
				return fmt.Errorf("encoding %s.%s: %w", key, val.Key, err)
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: val.Key}, n)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, m)
		return nil
	}

	if err := add("mode", string(r.Mode)); err != nil {
		return nil, err
	}
	if r.Solver != "" {
		if err := add("solver", r.Solver); err != nil {
			return nil, err
		}
	}
	if err := section("inputs", r.Inputs); err != nil {
		return nil, err
	}
	if r.Diagnostic != "" {
		if err := add("diagnostic", r.Diagnostic); err != nil {
			return nil, err
		}
		return root, nil
	}
	if err := section("results", r.Results); err != nil {
		return nil, err
	}
	return root, nil
}

// Write encodes the report in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writing yaml report: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, r.text())
		return err
	}
}

func (r *Report) text() string {
	var b strings.Builder

	b.WriteString(r.Title)
	if r.Solver != "" {
		b.WriteString(" (solver: " + r.Solver + ")")
	}
	b.WriteString("\n\n")

	inputs := components.NewKeyValueTable("Input", "Value")
	inputs.SetRows(r.rows(r.Inputs))
	b.WriteString(inputs.Render())
	b.WriteString("\n\n")

	if r.Diagnostic != "" {
		b.WriteString("diagnostic: " + r.Diagnostic + "\n")
		return b.String()
	}

	results := components.NewKeyValueTable("Result", "Value")
	results.SetRows(r.rows(r.Results))
	b.WriteString(results.Render())
	b.WriteString("\n")
	return b.String()
}

func (r *Report) rows(values []Value) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		var s string
		switch {
		case v.Money:
			s = util.FormatMoney(r.Currency, v.Number, v.Decimals)
		case v.Unit != "":
			s = util.FormatNumber(v.Number, v.Decimals) + " " + v.Unit
		default:
			s = util.FormatNumber(v.Number, v.Decimals)
		}
		rows = append(rows, []string{v.Label, s})
	}
	return rows
}
