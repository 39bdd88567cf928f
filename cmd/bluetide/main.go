package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bluetide-io/bluetide/cmd/bluetide/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bluetide",
	Short: "DigitalOcean v2 CLI",
	Long: `A command-line interface for managing DigitalOcean resources.

Droplets, block storage volumes, DNS domains, SSH keys, images, snapshots,
and tags can all be listed and managed from here.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.bluetide/config.yml)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "personal access token")
	rootCmd.PersistentFlags().String("endpoint", "", "API endpoint URL override")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
	rootCmd.AddCommand(commands.NewVolumesCommand())
	rootCmd.AddCommand(commands.NewDropletsCommand())
	rootCmd.AddCommand(commands.NewDomainsCommand())
	rootCmd.AddCommand(commands.NewSSHKeysCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewSnapshotsCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewActionsCommand())
	rootCmd.AddCommand(commands.NewRegionsCommand())
	rootCmd.AddCommand(commands.NewSizesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Create config directory if it doesn't exist
		configDir := filepath.Join(home, ".bluetide")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.bluetide/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("BLUETIDE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	// DIGITALOCEAN_TOKEN is the conventional variable; honor it when no
	// token came from flags, env, or config.
	if viper.GetString("token") == "" {
		if token := os.Getenv("DIGITALOCEAN_TOKEN"); token != "" {
			viper.Set("token", token)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
