package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/tapestry-go/internal/cli"
)

func newParamsCmd(opts *globalOptions) *cobra.Command {
	req := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the encoded query parameters",
		Long: `Build a request and print every query parameter it would send,
including the partner ID and default depth from the active profile.

Examples:
  tapestry params --data color=blue --format table
  tapestry params --file request.yaml --format json`,
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

			v, err := ep.Values(r)
			if err != nil {
				return fmt.Errorf("failed to encode request: %w", err)
			}
			return cli.PrintParams(cmd.OutOrStdout(), v, format)
		},
	}
	req.register(cmd)
	return cmd
}
