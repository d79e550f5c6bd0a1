package main

import (
	"fmt"

	"gestion_xpto/internal/adapter/persistence/repository"
	"gestion_xpto/internal/domain/entities"
	"gestion_xpto/internal/infrastructure/database"
	"gestion_xpto/internal/usecase"
	"gestion_xpto/pkg/logger"

	"github.com/spf13/cobra"
)

var seedCompanyID string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo data set for one company",
	Long: `Insert a small demo data set (branch, business type, brand, client,
supplier) scoped to the given company id. Useful for smoke-testing a fresh
local stack before pointing the dashboard at it.`,
	Example: `  DYNAMODB_ENDPOINT=http://localhost:8000 admin seed --company demo-co`,
	RunE:    runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCompanyID, "company", "demo-co", "company id to seed under")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("seed")
	ctx := cmd.Context()
	ddb := database.ConnectDynamoDB()

	branchUC := usecase.NewBranchUseCase(repository.NewBranchRepository(ddb))
	branch, err := branchUC.Create(ctx, entities.CompanyBranch{
		Base:    entities.Base{CompanyID: seedCompanyID},
		Name:    "Casa Central",
		Address: "Av. Siempre Viva 742",
		Main:    true,
		Active:  true,
	})
	if err != nil {
		return fmt.Errorf("seed branch: %w", err)
	}

	businessTypeUC := usecase.NewBusinessTypeUseCase(repository.NewBusinessTypeRepository(ddb))
	businessType, err := businessTypeUC.Create(ctx, entities.BusinessType{
		Base: entities.Base{CompanyID: seedCompanyID},
		Name: "Minorista",
	})
	if err != nil {
		return fmt.Errorf("seed business type: %w", err)
	}

	brandUC := usecase.NewBrandUseCase(repository.NewBrandRepository(ddb))
	if _, err := brandUC.Create(ctx, entities.Brand{
		Base:   entities.Base{CompanyID: seedCompanyID},
		Name:   "Genérica",
		Active: true,
	}); err != nil {
		return fmt.Errorf("seed brand: %w", err)
	}

	clientUC := usecase.NewClientUseCase(repository.NewClientRepository(ddb))
	if _, err := clientUC.Create(ctx, entities.Client{
		Base:           entities.Base{CompanyID: seedCompanyID},
		Name:           "Cliente Demo",
		Email:          "cliente@example.com",
		BusinessTypeID: businessType.ID,
		BranchID:       branch.ID,
		CreditLimit:    50000,
		Active:         true,
	}); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	supplierUC := usecase.NewSupplierUseCase(repository.NewSupplierRepository(ddb))
	if _, err := supplierUC.Create(ctx, entities.Supplier{
		Base:   entities.Base{CompanyID: seedCompanyID},
		Code:   "PROV-001",
		Name:   "Proveedor Demo",
		Email:  "proveedor@example.com",
		Active: true,
	}); err != nil {
		return fmt.Errorf("seed supplier: %w", err)
	}

	log.Info().Str("company_id", seedCompanyID).Msg("demo data seeded")
	fmt.Printf("Seeded demo data for company %q.\n", seedCompanyID)
	return nil
}
