package repositories

import (
	"context"
	"errors"
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned by Update when the target row does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProductID is returned when an id cannot be decoded as a UUID.
	ErrInvalidProductID = errors.New("invalid product id")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, name string, price float64, stock int) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	// FindByID returns nil and no error when no product matches.
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error)
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, id string) (int64, error)
}

func parseProductID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidProductID, id, err)
	}
	return parsed, nil
}

// newProductID returns a time-ordered identifier.
func newProductID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate product id: %w", err)
	}
	return id.String(), nil
}
