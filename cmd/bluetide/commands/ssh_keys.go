package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
)

// NewSSHKeysCommand creates the ssh-keys command group
func NewSSHKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ssh-keys",
		Aliases: []string{"ssh-key", "keys"},
		Short:   "Manage SSH keys",
		Long:    "List and manage the SSH public keys registered on the account",
	}

	cmd.AddCommand(newSSHKeysListCommand())
	cmd.AddCommand(newSSHKeysGetCommand())
	cmd.AddCommand(newSSHKeysCreateCommand())
	cmd.AddCommand(newSSHKeysRenameCommand())
	cmd.AddCommand(newSSHKeysDeleteCommand())

	return cmd
}

func newSSHKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			keys, err := ocean.Execute(context.Background(), client, ocean.ListSSHKeys())
			if err != nil {
				return err
			}

			if done, err := renderStructured(keys); done {
				return err
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{strconv.Itoa(key.ID), key.Name, key.Fingerprint})
			}

			return renderTable([]string{"ID", "Name", "Fingerprint"}, rows)
		},
	}
}

func newSSHKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY_ID_OR_FINGERPRINT",
		Short: "Show one SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := ocean.Execute(context.Background(), client, ocean.GetSSHKey(args[0]).Req())
			if err != nil {
				return err
			}

			if done, err := renderStructured(key); done {
				return err
			}

			return renderTable(
				[]string{"Property", "Value"},
				[][]string{
					{"ID", strconv.Itoa(key.ID)},
					{"Name", key.Name},
					{"Fingerprint", key.Fingerprint},
					{"Public Key", key.PublicKey},
				},
			)
		},
	}
}

func newSSHKeysCreateCommand() *cobra.Command {
	var (
		name          string
		publicKey     string
		publicKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an SSH key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if publicKey == "" && publicKeyFile != "" {
				data, err := os.ReadFile(publicKeyFile)
				if err != nil {
					return fmt.Errorf("reading public key file: %w", err)
				}

				publicKey = string(data)
			}

			if name == "" || publicKey == "" {
				return ErrKeyNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := ocean.Execute(context.Background(), client, ocean.CreateSSHKey(name, publicKey))
			if err != nil {
				return err
			}

			if done, err := renderStructured(key); done {
				return err
			}

			fmt.Printf("Registered key %s (%s)\n", key.Name, key.Fingerprint)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "key name")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "public key material")
	cmd.Flags().StringVar(&publicKeyFile, "public-key-file", "", "file containing the public key")

	return cmd
}

func newSSHKeysRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename KEY_ID NAME",
		Short: "Rename an SSH key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := ocean.Execute(context.Background(), client, ocean.GetSSHKey(args[0]).Update(args[1]))
			if err != nil {
				return err
			}

			if done, err := renderStructured(key); done {
				return err
			}

			fmt.Printf("Renamed key %d to %s\n", key.ID, key.Name)

			return nil
		},
	}
}

func newSSHKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Remove an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = ocean.Execute(context.Background(), client, ocean.GetSSHKey(args[0]).Delete())
			if err != nil {
				return err
			}

			fmt.Printf("Deleted key %s\n", args[0])

			return nil
		},
	}
}
