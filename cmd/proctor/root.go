package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NeuralTrust/TrustProctor/pkg/config"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/database"
	"github.com/NeuralTrust/TrustProctor/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// registers schema migrations
	_ "github.com/NeuralTrust/TrustProctor/pkg/infra/migrations"
)

const defaultConfigPath = "./config"

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "proctor",
		Short:         "Exam proctoring API",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadEnvFile()
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	root.PersistentFlags().StringVar(&configPath, "config", envOr("CONFIG_PATH", defaultConfigPath), "directory holding config.yaml")

	root.AddCommand(newServeCommand(), newMigrateCommand(), newVersionCommand())
	return root
}

func loadEnvFile() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadConfig() (*config.Config, error) {
	if err := config.Load(configPath); err != nil {
		return nil, err
	}
	return config.GetConfig(), nil
}

func openDatabase(logger *logrus.Logger, cfg *config.Config) (*database.DB, error) {
	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}
