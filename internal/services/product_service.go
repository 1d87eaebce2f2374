package services

import (
	"context"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, name string, price float64, stock int) (*models.Product, error) {
	return s.repo.Create(ctx, name, price, stock)
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProductByID retrieves a single product by its ID. A nil product with a
// nil error means it does not exist.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct applies a partial update to an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	return s.repo.Update(ctx, id, fields)
}

// DeleteProduct deletes a product by its ID and returns the number of rows removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
