package database

import (
	"context"
	"fmt"

	"sportsstore-service/models"
	"sportsstore-service/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var seedProducts = []models.Product{
	{Name: "Kayak", Description: "A boat for one person", Category: "Watersports", Price: decimal.RequireFromString("275")},
	{Name: "Lifejacket", Description: "Protective and fashionable", Category: "Watersports", Price: decimal.RequireFromString("48.95")},
	{Name: "Soccer Ball", Description: "FIFA-approved size and weight", Category: "Soccer", Price: decimal.RequireFromString("19.50")},
	{Name: "Corner Flags", Description: "Give your playing field a professional touch", Category: "Soccer", Price: decimal.RequireFromString("34.95")},
	{Name: "Stadium", Description: "Flat-packed 35,000-seat stadium", Category: "Soccer", Price: decimal.RequireFromString("79500")},
	{Name: "Thinking Cap", Description: "Improve brain efficiency by 75%", Category: "Chess", Price: decimal.RequireFromString("16")},
	{Name: "Unsteady Chair", Description: "Secretly give your opponent a disadvantage", Category: "Chess", Price: decimal.RequireFromString("29.95")},
	{Name: "Human Chess Board", Description: "A fun game for the family", Category: "Chess", Price: decimal.RequireFromString("75")},
	{Name: "Bling-Bling King", Description: "Gold-plated, diamond-studded King", Category: "Chess", Price: decimal.RequireFromString("1200")},
}

// Seed fills an empty catalog with the demo products. A non-empty catalog is
// left alone.
func Seed(ctx context.Context, repo repository.ProductRepository, logger *zap.Logger) (int, error) {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: list catalog: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := range seedProducts {
		p := seedProducts[i]
		if err := repo.Save(ctx, &p); err != nil {
			return i, fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	logger.Info("Seeded catalog", zap.Int("products", len(seedProducts)))
	return len(seedProducts), nil
}
