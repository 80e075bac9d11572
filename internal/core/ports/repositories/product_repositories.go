package repositories

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// ProductRepository persists inventory items.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// FindProductsByIDs returns the found products keyed by id; callers detect
	// missing ids by absence from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}
