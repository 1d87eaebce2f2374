package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProductResponseKeepsSubSecondTimestamps(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 100_000_000, time.UTC)
	updated := created.Add(250 * time.Millisecond)

	resp := NewProductResponse(&Product{
		ID:        "0190a5a4-7c3e-7d2e-9a7b-3f1c2d4e5f60",
		Name:      "Widget",
		CreatedAt: created,
		UpdatedAt: updated,
	})

	assert.Equal(t, "2025-03-14T09:26:53.1Z", resp.CreatedAt)
	assert.Equal(t, "2025-03-14T09:26:53.35Z", resp.UpdatedAt)
	assert.NotEqual(t, resp.CreatedAt, resp.UpdatedAt)
}

func TestNewProductResponseRendersUTC(t *testing.T) {
	local := time.Date(2025, 3, 14, 11, 26, 53, 0, time.FixedZone("CEST", 2*60*60))

	resp := NewProductResponse(&Product{CreatedAt: local, UpdatedAt: local})

	assert.Equal(t, "2025-03-14T09:26:53Z", resp.CreatedAt)
}

func TestNewProductResponsesEmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, NewProductResponses(nil))
	assert.Empty(t, NewProductResponses(nil))
}
