package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	stores   repository.StoreProfileRepository
	products repository.ProductRepository
	reviews  repository.ReviewRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	stores repository.StoreProfileRepository,
	products repository.ProductRepository,
	reviews repository.ReviewRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		stores:   stores,
		products: products,
		reviews:  reviews,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListStores returns every storefront, newest first.
func (srv *catalogService) ListStores(ctx context.Context) ([]*entity.StoreProfile, error) {
	stores, err := srv.stores.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore returns one storefront by seller id.
func (srv *catalogService) GetStore(ctx context.Context, sellerID string) (*entity.StoreProfile, error) {
	store, err := srv.stores.FindBySellerID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrStoreNotFound)
		}

		return nil, errors.Wrap(err, "failed to get store")
	}

	return store, nil
}

// ListProducts returns products for the home feed, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	products, err := srv.products.ListAll(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListSellerProducts returns a seller's listings, newest first.
func (srv *catalogService) ListSellerProducts(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	products, err := srv.products.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// CreateProduct creates a listing owned by the seller.
func (srv *catalogService) CreateProduct(ctx context.Context, sellerID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	productType := entity.ProductType(input.Type)
	if !productType.Valid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown product type: " + input.Type))
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.NewString(),
		SellerID:          sellerID,
		Name:              input.Name,
		Description:       input.Description,
		Images:            input.Images,
		Category:          input.Category,
		BuyLink:           input.BuyLink,
		Type:              productType,
		InStock:           input.InStock,
		PreorderEnabled:   input.PreorderEnabled,
		PreorderStartDate: input.PreorderStartDate,
		PreorderEndDate:   input.PreorderEndDate,
		PreorderRepeat:    entity.PreorderRepeat(input.PreorderRepeat),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.products.Create(ctx, product); err != nil {
		srv.logger.Error("failed to create product", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrProductCreationFailed)
	}
	srv.logger.Info("product created", slog.String("id", product.ID), slog.String("sellerId", sellerID))

	return product, nil
}

// UpdateProduct applies the non-nil fields of input to a listing. Only the
// owning seller may update it.
func (srv *catalogService) UpdateProduct(ctx context.Context, sellerID, productID string, input *usecase.UpdateProductInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to find product")
	}
	if product.SellerID != sellerID {
		return errors.WithStack(domainerrors.ErrNotProductOwner)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.BuyLink != nil {
		product.BuyLink = *input.BuyLink
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	product.UpdatedAt = time.Now()

	if err := srv.products.Update(ctx, product); err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes a listing. Only the owning seller may delete it.
func (srv *catalogService) DeleteProduct(ctx context.Context, sellerID, productID string) error {
	product, err := srv.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to find product")
	}
	if product.SellerID != sellerID {
		return errors.WithStack(domainerrors.ErrNotProductOwner)
	}

	if err := srv.products.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.logger.Info("product deleted", slog.String("id", productID))

	return nil
}

// CreateReview posts a review on a product.
func (srv *catalogService) CreateReview(ctx context.Context, productID string, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	if _, err := srv.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		ID:         uuid.NewString(),
		ProductID:  productID,
		Rating:     input.Rating,
		Text:       input.Text,
		AuthorName: input.AuthorName,
		Images:     input.Images,
		CreatedAt:  time.Now(),
	}

	if err := srv.reviews.Create(ctx, review); err != nil {
		srv.logger.Error("failed to create review", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrReviewCreationFailed)
	}

	return review, nil
}

// ListProductReviews returns a product's reviews, newest first.
func (srv *catalogService) ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	reviews, err := srv.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
