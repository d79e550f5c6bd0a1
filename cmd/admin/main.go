package main

import (
	"fmt"
	"os"

	"gestion_xpto/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin CLI for the business management backend",
	Long: `Admin CLI provisions and seeds the DynamoDB tables used by the
business management API.

It reads the same environment variables as the API server (AWS_REGION,
DYNAMODB_ENDPOINT, *_TABLE overrides), so pointing it at a local DynamoDB
is a matter of exporting DYNAMODB_ENDPOINT.`,
	Version: version,
}

func main() {
	logger.Setup(logger.FromEnv())

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("admin")
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
