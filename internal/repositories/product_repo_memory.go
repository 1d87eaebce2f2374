package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"katalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
	now      func() time.Time
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
		now:      time.Now,
	}
}

// Create adds a new product.
func (r *InMemoryProductRepository) Create(_ context.Context, name string, price float64, stock int) (*models.Product, error) {
	id, err := newProductID()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	product := models.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.products[id] = product
	r.order = append(r.order, id)
	return &product, nil
}

// FindAll returns all products in insertion order.
func (r *InMemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, id := range r.order {
		productList = append(productList, r.products[id])
	}
	return productList, nil
}

// FindByID returns a product by its ID, or nil when it does not exist.
func (r *InMemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	parsed, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[parsed.String()]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Update applies the supplied fields and refreshes UpdatedAt.
func (r *InMemoryProductRepository) Update(_ context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	parsed, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[parsed.String()]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	if fields.Name != nil {
		product.Name = *fields.Name
	}
	if fields.Price != nil {
		product.Price = *fields.Price
	}
	if fields.Stock != nil {
		product.Stock = *fields.Stock
	}
	product.UpdatedAt = r.now().UTC()
	r.products[product.ID] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id string) (int64, error) {
	parsed, err := parseProductID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := parsed.String()
	if _, ok := r.products[key]; !ok {
		return 0, nil
	}
	delete(r.products, key)
	for i, existing := range r.order {
		if existing == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}
