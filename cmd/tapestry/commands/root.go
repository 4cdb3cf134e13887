package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jdziat/tapestry-go"
	"github.com/jdziat/tapestry-go/internal/cli"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	profile    string
	baseURL    string
	partnerID  string
	format     string
	verbose    bool
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "tapestry",
		Short: "Build Tapestry web API requests",
		Long: `tapestry builds request URLs and query parameters for the Tapestry web API.

It never contacts the API; pipe the printed URL into your HTTP client of choice.

Examples:
  tapestry url --audience aud1,aud2 --data color=blue --list-devices --depth 2
  tapestry params --file request.yaml --format table
  tapestry config show --profile prod`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.tapestry/config.yaml)")
	root.PersistentFlags().StringVar(&opts.profile, "profile", "", "Config profile to use")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Base URL of the Tapestry web API")
	root.PersistentFlags().StringVar(&opts.partnerID, "partner-id", "", "Partner ID sent as ta_partner_id")
	root.PersistentFlags().StringVar(&opts.format, "format", "text", "Output format (text, json, yaml, table)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose output")

	root.AddCommand(newURLCmd(opts))
	root.AddCommand(newParamsCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// outputFormat validates the --format flag.
func (o *globalOptions) outputFormat() (cli.OutputFormat, error) {
	return cli.ParseOutputFormat(o.format)
}

// resolveProfile loads the config file and applies env and flag overrides.
func (o *globalOptions) resolveProfile() (string, cli.Profile, error) {
	cfg, err := cli.LoadConfig(o.configPath)
	if err != nil {
		return "", cli.Profile{}, fmt.Errorf("configuration error: %w", err)
	}

	name := o.profile
	if name == "" {
		name = cfg.DefaultProfile
	}

	p, err := cfg.Resolve(cli.Overrides{
		Profile:   o.profile,
		BaseURL:   o.baseURL,
		PartnerID: o.partnerID,
	})
	if err != nil {
		return "", cli.Profile{}, fmt.Errorf("configuration error: %w", err)
	}
	return name, p, nil
}

// endpoint builds an Endpoint for the resolved profile. With --verbose
// the SDK's debug log goes to stderr.
func (o *globalOptions) endpoint(stderr io.Writer) (*tapestry.Endpoint, cli.Profile, error) {
	_, p, err := o.resolveProfile()
	if err != nil {
		return nil, cli.Profile{}, err
	}

	epOpts := p.Options()
	if o.verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		epOpts = append(epOpts, tapestry.WithStructuredLogger(tapestry.NewSlogAdapter(slog.New(h))))
	}

	ep, err := tapestry.NewEndpoint(epOpts...)
	if err != nil {
		return nil, cli.Profile{}, fmt.Errorf("configuration error: %w", err)
	}
	return ep, p, nil
}
