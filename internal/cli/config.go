package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: "Print the configuration faqdesk would run with. With --write the\n" +
			"configuration is saved to the config file, creating it if needed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer setupLogging()()

			svc := root.configService(nil)
			cfg, err := svc.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if write {
				if err := svc.Save(cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "# wrote %s\n", svc.Path())
			} else {
				fmt.Fprintf(out, "# %s\n", svc.Path())
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the effective configuration to the config file")
	return cmd
}
