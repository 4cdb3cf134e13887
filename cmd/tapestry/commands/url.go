package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/tapestry-go/internal/cli"
)

func newURLCmd(opts *globalOptions) *cobra.Command {
	req := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the request URL",
		Long: `Build a request from flags and/or a template file and print its full URL.

Examples:
  tapestry url --audience aud1 --audience aud2 --data color=blue
  tapestry url --file request.yaml --depth 3 --partner-id 1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}

			ep, profile, err := opts.endpoint(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			r, err := req.build(cmd, profile)
			if err != nil {
				return fmt.Errorf("invalid request: %w", err)
			}

			u, err := ep.URL(r)
			if err != nil {
				return fmt.Errorf("failed to build URL: %w", err)
			}
			return cli.PrintURL(cmd.OutOrStdout(), u, format)
		},
	}
	req.register(cmd)
	return cmd
}
