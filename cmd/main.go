package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "smc-booking-docs",
		Short:        "SMC-BookingDocs - visa booking confirmation documents",
		Long:         `SMC-BookingDocs accepts booking forms, fills the hotel confirmation xlsx template and serves the generated documents.`,
		RunE:         runServe,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logs.level from the config (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCommand(),
		newTemplateCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
