package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProductRepository defines the operations for product listings.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// ListAll returns products newest first. A limit <= 0 means no limit.
	ListAll(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListBySeller returns a seller's products newest first.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository defines the operations for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct returns a product's reviews newest first.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
}
