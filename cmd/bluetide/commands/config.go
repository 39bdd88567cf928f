package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ErrUnknownConfigKey = errors.New("unknown config key (token, endpoint, output)")

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Read and write the persisted CLI configuration file",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [KEY]",
		Short: "Show configuration values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			token := NotAvailable
			if config.Token != "" {
				token = "***"
			}

			values := map[string]string{
				"token":    token,
				"endpoint": config.Endpoint,
				"output":   config.Output,
			}

			if len(args) == 1 {
				value, ok := values[args[0]]
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownConfigKey, args[0])
				}

				fmt.Println(value)

				return nil
			}

			return renderTable(
				[]string{"Key", "Value"},
				[][]string{
					{"token", values["token"]},
					{"endpoint", values["endpoint"]},
					{"output", values["output"]},
				},
			)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			switch args[0] {
			case "token":
				config.Token = args[1]
			case "endpoint":
				config.Endpoint = args[1]
			case "output":
				config.Output = args[1]
			default:
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, args[0])
			}

			if err := saveFileConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}
