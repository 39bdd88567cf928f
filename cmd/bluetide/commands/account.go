package commands

import (
	"context"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account information",
		Long:  "Display the account behind the configured token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := ocean.Execute(context.Background(), client, ocean.GetAccount())
			if err != nil {
				return err
			}

			if done, err := renderStructured(account); done {
				return err
			}

			return renderTable(
				[]string{"Property", "Value"},
				[][]string{
					{"Email", account.Email},
					{"UUID", account.UUID},
					{"Status", account.Status},
					{"Email Verified", formatBool(account.EmailVerified)},
					{"Droplet Limit", strconv.Itoa(account.DropletLimit)},
					{"Volume Limit", strconv.Itoa(account.VolumeLimit)},
					{"Floating IP Limit", strconv.Itoa(account.FloatingIPLimit)},
				},
			)
		},
	}
}
