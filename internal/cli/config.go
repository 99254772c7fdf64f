package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after defaults and environment overrides
have been applied. Secrets are redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return cfg.Encode(c.Out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printSuccess(c.Out, "Configuration is valid")
			printKeyValue(c.Out, "Owner", cfg.Owner)
			printKeyValue(c.Out, "Overrides", strconv.Itoa(len(cfg.Overrides)))
			printKeyValue(c.Out, "Local projects", strconv.Itoa(len(cfg.LocalProjects())))
			return nil
		},
	})

	return cmd
}
