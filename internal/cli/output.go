package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the output format for CLI commands.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Param is a single query parameter as printed by the CLI.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Params flattens query values into name order, keeping the order of
// repeated values.
func Params(v url.Values) []Param {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Param, 0, len(names))
	for _, name := range names {
		for _, value := range v[name] {
			out = append(out, Param{Name: name, Value: value})
		}
	}
	return out
}

// PrintParams outputs query parameters in the specified format.
func PrintParams(w io.Writer, v url.Values, format OutputFormat) error {
	params := Params(v)
	switch format {
	case FormatText:
		for _, p := range params {
			if _, err := fmt.Fprintf(w, "%s=%s\n", p.Name, p.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return printJSON(w, map[string][]Param{"params": params})
	case FormatYAML:
		return printYAML(w, map[string][]Param{"params": params})
	case FormatTable:
		table := tablewriter.NewWriter(w)
		table.Header("Parameter", "Value")
		for _, p := range params {
			if err := table.Append(p.Name, p.Value); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintURL outputs a request URL in the specified format.
func PrintURL(w io.Writer, u string, format OutputFormat) error {
	switch format {
	case FormatText, FormatTable:
		_, err := fmt.Fprintln(w, u)
		return err
	case FormatJSON:
		return printJSON(w, map[string]string{"url": u})
	case FormatYAML:
		return printYAML(w, map[string]string{"url": u})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintProfile outputs the effective profile in the specified format.
func PrintProfile(w io.Writer, name string, p Profile, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(w, map[string]Profile{name: p})
	case FormatYAML:
		return printYAML(w, map[string]Profile{name: p})
	case FormatText, FormatTable:
		depth := "unset"
		if p.DefaultDepth != nil {
			depth = fmt.Sprintf("%d", *p.DefaultDepth)
		}
		table := tablewriter.NewWriter(w)
		table.Header("Setting", "Value")
		rows := [][]string{
			{"profile", name},
			{"base_url", p.BaseURL},
			{"partner_id", p.PartnerID},
			{"default_depth", depth},
			{"strict", fmt.Sprintf("%t", p.Strict)},
		}
		for _, r := range rows {
			if err := table.Append(r[0], r[1]); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}
