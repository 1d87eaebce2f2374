package models

// CreateProductRequest is the body of POST /api/products. Price and Stock are
// pointers so a missing key can be told apart from an explicit zero.
type CreateProductRequest struct {
	Name  string   `json:"name" validate:"required,min=3,max=100"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Stock *int     `json:"stock" validate:"required,gte=0"`
}

// UpdateProductRequest is the body of PUT /api/products/:id. Every field is
// optional; absent fields keep their stored value.
type UpdateProductRequest struct {
	Name  *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock" validate:"omitempty,gte=0"`
}

// Fields returns the partial update carried by the request.
func (r UpdateProductRequest) Fields() ProductFields {
	return ProductFields{
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
}
