package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/bluetide-io/bluetide/pkg/ocean"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// fileConfig is the persisted shape of ~/.bluetide/config.yml.
type fileConfig struct {
	Token    string `yaml:"token,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

func configPath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".bluetide", "config.yml"), nil
}

func loadFileConfig() fileConfig {
	config := fileConfig{}

	path, err := configPath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, &config)

	return config
}

func saveFileConfig(config fileConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file holds the token, so keep it owner-only.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		Long:  "Verify a personal access token against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Personal access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			opts := []ocean.Option{}
			if endpoint := viper.GetString("endpoint"); endpoint != "" {
				opts = append(opts, ocean.WithEndpoint(endpoint))
			}

			client, err := ocean.New(token, opts...)
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			// Verify the token before persisting it.
			account, err := ocean.Execute(context.Background(), client, ocean.GetAccount())
			if err != nil {
				return fmt.Errorf("verifying token: %w", err)
			}

			config := loadFileConfig()
			config.Token = token
			config.Endpoint = viper.GetString("endpoint")

			if err := saveFileConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", account.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "personal access token (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Long:  "Clear the stored personal access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()
			config.Token = ""

			if err := saveFileConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
