package services_test

import (
	"context"
	"fmt"
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, name string, price float64, stock int) (*models.Product, error) {
	args := m.Called(ctx, name, price, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var ctx = context.Background()

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	created := &models.Product{ID: "1", Name: "New Product", Price: 50.0, Stock: 20}

	// Test successful creation
	mockRepo.On("Create", ctx, "New Product", 50.0, 20).Return(created, nil).Once()
	product, err := service.CreateProduct(ctx, "New Product", 50.0, 20)
	assert.NoError(t, err)
	assert.Equal(t, created, product)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", ctx, "New Product", 50.0, 20).Return(nil, fmt.Errorf("database error")).Once()
	product, err = service.CreateProduct(ctx, "New Product", 50.0, 20)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Stock: 50},
	}

	mockRepo.On("FindAll", ctx).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}

	// Test successful retrieval
	mockRepo.On("FindByID", ctx, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	mockRepo.On("FindByID", ctx, "99").Return(nil, nil).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.NoError(t, err)
	assert.Nil(t, product)

	// Test malformed id error is passed through unchanged
	mockRepo.On("FindByID", ctx, "bad").Return(nil, repositories.ErrInvalidProductID).Once()
	_, err = service.GetProductByID(ctx, "bad")
	assert.ErrorIs(t, err, repositories.ErrInvalidProductID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	price := 12.0
	fields := models.ProductFields{Price: &price}
	updatedProduct := &models.Product{ID: "1", Name: "Product A", Price: 12.0, Stock: 95}

	// Test successful update
	mockRepo.On("Update", ctx, "1", fields).Return(updatedProduct, nil).Once()
	product, err := service.UpdateProduct(ctx, "1", fields)
	assert.NoError(t, err)
	assert.Equal(t, updatedProduct, product)

	// Test update failure (product not found in repo)
	mockRepo.On("Update", ctx, "99", fields).Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.UpdateProduct(ctx, "99", fields)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", ctx, "1").Return(int64(1), nil).Once()
	count, err := service.DeleteProduct(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Nothing matched is not an error
	mockRepo.On("Delete", ctx, "99").Return(int64(0), nil).Once()
	count, err = service.DeleteProduct(ctx, "99")
	assert.NoError(t, err)
	assert.Zero(t, count)
	mockRepo.AssertExpectations(t)
}
