package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"katalog/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Product is one entry of the seed file.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// LoadFile reads a JSON array of seed products.
func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return products, nil
}

// Products replaces the whole products table with the given records. Every
// record gets a fresh id and identical created/updated timestamps. The wipe
// and the inserts commit together.
func Products(ctx context.Context, db *gorm.DB, logger *zap.Logger, products []Product) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&repositories.ProductRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}

		repo := repositories.NewGORMProductRepository(tx, logger)
		for _, p := range products {
			created, err := repo.Create(ctx, p.Name, p.Price, p.Stock)
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
			}
			logger.Debug("Seeded product", zap.String("id", created.ID), zap.String("name", created.Name))
		}
		return nil
	})
}
