package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	port       string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config.yaml"
	}
	envPort := os.Getenv("PORT")

	cmd := &cobra.Command{
		Use:   "missfrance",
		Short: "Party scorekeeper for a Miss France election night",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on (overrides config)")
	cmd.AddCommand(NewServeCmd(&configPath, &port))
	cmd.AddCommand(NewPasswordCmd())
	return cmd
}
