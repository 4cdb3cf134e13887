package commands

import (
	"github.com/spf13/cobra"

	"github.com/jdziat/tapestry-go"
	"github.com/jdziat/tapestry-go/internal/cli"
)

// requestOptions are the flags that describe a request.
type requestOptions struct {
	file        string
	data        []string
	audiences   []string
	listDevices bool
	depth       int
	strict      bool
}

func (r *requestOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&r.file, "file", "f", "", "YAML request template")
	f.StringArrayVarP(&r.data, "data", "d", nil, "Data entry as key=value (repeatable)")
	f.StringArrayVarP(&r.audiences, "audience", "a", nil, "Audience identifier, comma lists allowed (repeatable)")
	f.BoolVar(&r.listDevices, "list-devices", false, "Ask Tapestry to list devices")
	f.IntVar(&r.depth, "depth", 0, "Traversal depth")
	f.BoolVar(&r.strict, "strict", false, "Validate every parameter")
}

// build assembles the request from the template file and flags. Flags
// are applied after the file, so a flag value wins for the same key.
func (r *requestOptions) build(cmd *cobra.Command, profile cli.Profile) (*tapestry.Request, error) {
	in := cli.Input{}
	if r.file != "" {
		fileIn, err := cli.LoadRequestFile(r.file)
		if err != nil {
			return nil, err
		}
		in = *fileIn
	}

	data, err := cli.ParseDataFlags(r.data)
	if err != nil {
		return nil, err
	}

	flagIn := cli.Input{
		Data:        data,
		Audiences:   cli.SplitAudiences(r.audiences),
		ListDevices: r.listDevices,
	}
	if cmd.Flags().Changed("depth") {
		d := r.depth
		flagIn.Depth = &d
	}

	return in.Merge(flagIn).Build(r.strict || profile.Strict)
}
