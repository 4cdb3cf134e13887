package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/tapestry-go/internal/cli"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective profile",
		Long: `Print the profile that url and params would use after applying the
config file, TAPESTRY_* environment variables and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}

			name, p, err := opts.resolveProfile()
			if err != nil {
				return err
			}
			return cli.PrintProfile(cmd.OutOrStdout(), name, p, format)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a configuration file with a single "default" profile at
~/.tapestry/config.yaml, or at the path given by --config.

Example:
  tapestry config init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ConfigPath(opts.configPath)
			if err != nil {
				return err
			}
			if err := cli.InitConfig(path, force); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set <profile.field|default_profile> <value>",
		Short: "Set a configuration value",
		Long: `Set one value in the configuration file. Fields are base_url,
partner_id, default_depth and strict. Missing profiles are created.

Examples:
  tapestry config set prod.base_url https://tapestry.example.com/tapestry/1
  tapestry config set prod.partner_id '${TAPESTRY_PROD_PARTNER}'
  tapestry config set default_profile prod`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ConfigPath(opts.configPath)
			if err != nil {
				return err
			}
			cfg, err := cli.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cli.SaveConfig(cfg, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s\n", args[0])
			return nil
		},
	})

	return cmd
}
