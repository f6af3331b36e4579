package main

import (
	"encoding/json"
	"fmt"

	"github.com/greenlens/backend/internal/domain"
	"github.com/greenlens/backend/internal/infrastructure/catalog"
	"github.com/greenlens/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	recCategory       string
	recPriceRange     string
	recSustainability string
	recBrand          string
)

// recommendCmd filters the catalog without starting the server
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print eco product recommendations as JSON",
	Example: `  greenlens recommend --category electronics
  greenlens recommend --price-range 25-50 --sustainability high`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recCategory, "category", domain.FilterAll, "Product category")
	recommendCmd.Flags().StringVar(&recPriceRange, "price-range", domain.FilterAll, `Price bucket, "min-max" or "min"`)
	recommendCmd.Flags().StringVar(&recSustainability, "sustainability", domain.FilterAll, "Sustainability level: high or medium")
	recommendCmd.Flags().StringVar(&recBrand, "brand", "", "Brand name substring")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	products, err := catalog.NewRepository()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	result, err := usecase.RecommendFromCatalog(cmd.Context(), products, &domain.RecommendationRequest{
		Category:            recCategory,
		PriceRange:          recPriceRange,
		SustainabilityLevel: recSustainability,
		Brand:               recBrand,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
