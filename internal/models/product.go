package models

import "time"

// Product represents a product in the store.
type Product struct {
	ID        string
	Name      string
	Price     float64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductFields holds the columns of a partial update. A nil field keeps the
// stored value.
type ProductFields struct {
	Name  *string
	Price *float64
	Stock *int
}

// ProductResponse is the JSON representation of a Product.
type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NewProductResponse converts a Product into its response representation.
// Timestamps are rendered as RFC 3339 in UTC, keeping sub-second digits.
func NewProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// NewProductResponses converts a list of products. The result is never nil so
// an empty list encodes as [].
func NewProductResponses(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i]))
	}
	return responses
}
