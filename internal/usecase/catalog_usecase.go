package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// CatalogUsecase covers marketplace browsing and the seller's own product
// management.
type CatalogUsecase interface {
	ListStores(ctx context.Context) ([]*entity.StoreProfile, error)
	GetStore(ctx context.Context, sellerID string) (*entity.StoreProfile, error)

	ListProducts(ctx context.Context, limit int) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListSellerProducts(ctx context.Context, sellerID string) ([]*entity.Product, error)

	CreateProduct(ctx context.Context, sellerID string, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID string, input *UpdateProductInput) error
	DeleteProduct(ctx context.Context, sellerID, productID string) error

	CreateReview(ctx context.Context, productID string, input *CreateReviewInput) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a listing.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	Images      []string `json:"images" validate:"max=10,dive,url"`
	Category    string   `json:"category" validate:"required,max=50"`
	BuyLink     string   `json:"buy_link" validate:"required,url"`
	Type        string   `json:"type" validate:"required"`
	InStock     bool     `json:"in_stock"`

	PreorderEnabled   bool       `json:"preorder_enabled"`
	PreorderStartDate *time.Time `json:"preorder_start_date,omitempty"`
	PreorderEndDate   *time.Time `json:"preorder_end_date,omitempty"`
	PreorderRepeat    string     `json:"preorder_repeat,omitempty" validate:"omitempty,oneof=none weekly"`
}

// UpdateProductInput defines the mutable fields of a listing. Nil fields
// are left unchanged.
type UpdateProductInput struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Images      *[]string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=50"`
	BuyLink     *string   `json:"buy_link,omitempty" validate:"omitempty,url"`
	InStock     *bool     `json:"in_stock,omitempty"`
}

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Text       string   `json:"text" validate:"max=1000"`
	AuthorName string   `json:"author_name" validate:"required,max=50"`
	Images     []string `json:"images" validate:"max=5,dive,url"`
}
