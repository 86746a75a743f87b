package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/spacieba/miss-france/internal/app"
	"github.com/spacieba/miss-france/internal/auth"
	"github.com/spacieba/miss-france/internal/config"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/scorecache"
	"github.com/spacieba/miss-france/internal/services"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the party server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath, *port)
		},
	}
}

// NewPasswordCmd builds the CLI subcommand to generate an admin password.
func NewPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Generate a random admin password",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(auth.GeneratePassword())
		},
	}
}

func runServer(configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.Log.Level))

	// Setup admin authentication
	password := cfg.Admin.Password
	if password == "" {
		password = auth.GeneratePassword()
	}
	sessionAuth := auth.New(password)

	// Optional Redis scoreboard projection
	var projector services.Projector
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		projector = scorecache.New(client, appLog, 12*time.Hour)
		appLog.Info("Scoreboard projection enabled", "redis", cfg.Redis.Addr)
	}

	a, err := app.New(appLog, cfg, sessionAuth, projector)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Close()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = fmt.Sprintf("%d", cfg.Server.Port)
	}

	appLog.Info("Admin password", "password", password)
	return a.Run(":" + finalPort)
}

// loadConfig reads the YAML config, falling back to defaults when the file
// does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}
