package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"katalog/internal/logging"
	"katalog/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRecord is the row layout of the products table. Timestamps are kept
// as RFC 3339 text.
type ProductRecord struct {
	ID        string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name      string  `gorm:"column:name;type:varchar(100);not null"`
	Price     float64 `gorm:"column:price;not null"`
	Stock     int     `gorm:"column:stock;not null"`
	CreatedAt string  `gorm:"column:created_at;type:text;not null;autoCreateTime:false"`
	UpdatedAt string  `gorm:"column:updated_at;type:text;not null;autoUpdateTime:false"`
}

// TableName pins the table name used by GORM.
func (ProductRecord) TableName() string {
	return "products"
}

func (r ProductRecord) toModel() (*models.Product, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode created_at of product %s: %w", r.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode updated_at of product %s: %w", r.ID, err)
	}
	return &models.Product{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Stock:     r.Stock,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// AutoMigrate creates or updates the products table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ProductRecord{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db     *gorm.DB
	tracer trace.Tracer
	logger *zap.Logger
	now    func() time.Time
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB, logger *zap.Logger) *GORMProductRepository {
	return &GORMProductRepository{
		db:     db,
		tracer: otel.Tracer("katalog/repositories"),
		logger: logger,
		now:    time.Now,
	}
}

func (r *GORMProductRepository) fail(ctx context.Context, span trace.Span, msg string, err error, fields ...zap.Field) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	logging.Error(ctx, r.logger, msg, append(fields, zap.Error(err))...)
}

// Create inserts a new product with a fresh id and identical timestamps.
func (r *GORMProductRepository) Create(ctx context.Context, name string, price float64, stock int) (*models.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Create")
	defer span.End()

	id, err := newProductID()
	if err != nil {
		r.fail(ctx, span, "Failed to generate product id", err)
		return nil, err
	}
	span.SetAttributes(attribute.String("product.id", id))

	now := r.now().UTC()
	record := ProductRecord{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: formatTimestamp(now),
		UpdatedAt: formatTimestamp(now),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		r.fail(ctx, span, "Failed to create product", err, zap.String("name", name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &models.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FindAll retrieves all products from the database.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()

	var records []ProductRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		r.fail(ctx, span, "Failed to get all products", err)
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, record := range records {
		product, err := record.toModel()
		if err != nil {
			r.fail(ctx, span, "Failed to decode product row", err, zap.String("id", record.ID))
			return nil, err
		}
		products = append(products, *product)
	}
	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// FindByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	return r.findByID(ctx, span, id)
}

func (r *GORMProductRepository) findByID(ctx context.Context, span trace.Span, id string) (*models.Product, error) {
	span.SetAttributes(attribute.String("product.id", id))

	parsed, err := parseProductID(id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var record ProductRecord
	err = r.db.WithContext(ctx).Where("id = ?", parsed.String()).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.fail(ctx, span, "Failed to get product by id", err, zap.String("id", id))
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return record.toModel()
}

// Update merges the supplied fields into the stored row in a single write,
// refreshes updated_at and re-reads the row.
func (r *GORMProductRepository) Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Update")
	defer span.End()

	parsed, err := parseProductID(id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var name, price, stock any
	if fields.Name != nil {
		name = *fields.Name
	}
	if fields.Price != nil {
		price = *fields.Price
	}
	if fields.Stock != nil {
		stock = *fields.Stock
	}

	res := r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET
			name = COALESCE(?, name),
			price = COALESCE(?, price),
			stock = COALESCE(?, stock),
			updated_at = ?
		WHERE id = ?`,
		name, price, stock, formatTimestamp(r.now()), parsed.String(),
	)
	if res.Error != nil {
		r.fail(ctx, span, "Failed to update product", res.Error, zap.String("id", id))
		return nil, fmt.Errorf("failed to update product: %w", res.Error)
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", res.RowsAffected))

	product, err := r.findByID(ctx, span, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	return product, nil
}

// Delete removes a product by its ID and reports how many rows were removed.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	parsed, err := parseProductID(id)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("id = ?", parsed.String()).Delete(&ProductRecord{})
	if res.Error != nil {
		r.fail(ctx, span, "Failed to delete product", res.Error, zap.String("id", id))
		return 0, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", res.RowsAffected))
	return res.RowsAffected, nil
}
