package main

import (
	"errors"
	"fmt"

	"gestion_xpto/internal/adapter/persistence/repository"
	"gestion_xpto/internal/infrastructure/database"
	"gestion_xpto/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spf13/cobra"
)

var createTablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Create every resource table in DynamoDB",
	Long: `Create one on-demand table per resource (clients, suppliers, documents,
orders, goals, pending accounts, bank accounts, bar codes, brands, business
types, company branches). Tables that already exist are skipped.`,
	Example: `  # Provision against local DynamoDB
  DYNAMODB_ENDPOINT=http://localhost:8000 admin create-tables`,
	RunE: runCreateTables,
}

func init() {
	rootCmd.AddCommand(createTablesCmd)
}

func runCreateTables(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("create-tables")
	ddb := database.ConnectDynamoDB()

	for _, spec := range repository.AllTables() {
		name := spec.ResolvedName()
		_, err := ddb.CreateTable(cmd.Context(), &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Info().Str("table", name).Msg("table already exists, skipping")
				continue
			}
			return fmt.Errorf("create table %s: %w", name, err)
		}
		log.Info().Str("table", name).Msg("table created")
	}

	fmt.Println("All tables ready.")
	return nil
}
