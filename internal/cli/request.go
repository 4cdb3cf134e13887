package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/tapestry-go"
)

// DataEntry is one key/value pair, kept in the order it was given.
type DataEntry struct {
	Key   string
	Value string
}

// Input collects everything needed to build a request, from a request
// file and from flags.
type Input struct {
	Data        []DataEntry
	Audiences   []string
	ListDevices bool
	Depth       *int
}

// requestFile is the YAML layout of a request template:
//
//	data:
//	  color: blue
//	audiences: [aud1, aud2]
//	list_devices: true
//	depth: 2
type requestFile struct {
	Data        yaml.Node `yaml:"data"`
	Audiences   []string  `yaml:"audiences"`
	ListDevices bool      `yaml:"list_devices"`
	Depth       *int      `yaml:"depth"`
}

// LoadRequestFile reads a request template. Data entries keep the order
// they have in the file.
func LoadRequestFile(path string) (*Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	return ParseRequestFile(raw)
}

// ParseRequestFile parses request template YAML. Audiences are split and
// trimmed the same way as --audience flags.
func ParseRequestFile(raw []byte) (*Input, error) {
	var f requestFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}

	in := &Input{
		Audiences:   SplitAudiences(f.Audiences),
		ListDevices: f.ListDevices,
		Depth:       f.Depth,
	}

	switch {
	case f.Data.Kind == 0, f.Data.Kind == yaml.ScalarNode && f.Data.Tag == "!!null":
		// no data section
	case f.Data.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(f.Data.Content); i += 2 {
			k, v := f.Data.Content[i], f.Data.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("request file line %d: data value for %q must be a scalar", v.Line, k.Value)
			}
			in.Data = append(in.Data, DataEntry{Key: k.Value, Value: v.Value})
		}
	default:
		return nil, fmt.Errorf("request file line %d: data must be a mapping", f.Data.Line)
	}

	return in, nil
}

// ParseDataFlags parses "key=value" arguments. The first "=" splits the
// pair, so values may contain "=".
func ParseDataFlags(pairs []string) ([]DataEntry, error) {
	out := make([]DataEntry, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --data %q: expected key=value", p)
		}
		out = append(out, DataEntry{Key: k, Value: v})
	}
	return out, nil
}

// SplitAudiences expands comma-separated audience flags and drops blanks.
func SplitAudiences(values []string) []string {
	var out []string
	for _, v := range values {
		for _, aud := range strings.Split(v, ",") {
			if aud = strings.TrimSpace(aud); aud != "" {
				out = append(out, aud)
			}
		}
	}
	return out
}

// Merge returns in overlaid with other: data and audiences are
// appended, the flag is or-ed and other's depth wins when set.
func (in Input) Merge(other Input) Input {
	out := Input{
		Data:        append(slices.Clone(in.Data), other.Data...),
		Audiences:   append(slices.Clone(in.Audiences), other.Audiences...),
		ListDevices: in.ListDevices || other.ListDevices,
		Depth:       in.Depth,
	}
	if other.Depth != nil {
		out.Depth = other.Depth
	}
	return out
}

// Build turns the input into a request. With strict set every value is
// validated and all problems are reported together.
func (in Input) Build(strict bool) (*tapestry.Request, error) {
	if strict {
		b := tapestry.NewRequestStrict()
		for _, d := range in.Data {
			b.AddData(d.Key, d.Value)
		}
		b.AddAudiences(in.Audiences...)
		if in.ListDevices {
			b.ListDevices()
		}
		if in.Depth != nil {
			b.SetDepth(*in.Depth)
		}
		return b.Build().Unwrap()
	}

	req := tapestry.NewRequest()
	for _, d := range in.Data {
		req.AddData(d.Key, d.Value)
	}
	req.AddAudiences(in.Audiences...)
	if in.ListDevices {
		req.ListDevices()
	}
	if in.Depth != nil {
		req.SetDepth(*in.Depth)
	}
	return req, nil
}
