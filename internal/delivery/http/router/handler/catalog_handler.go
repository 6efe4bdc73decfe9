package handler

import (
	"net/http"
	"strconv"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler exposes marketplace browsing and seller product management.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	qrcode  service.QRCodeService
	limit   int
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, qrcode service.QRCodeService, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		qrcode:  qrcode,
		limit:   cfg.Catalog.HomeLimit,
	}
}

// ListStores returns every storefront, newest first.
func (h *CatalogHandler) ListStores(c echo.Context) error {
	stores, err := h.catalog.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// GetStore returns one storefront by seller id.
func (h *CatalogHandler) GetStore(c echo.Context) error {
	store, err := h.catalog.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// GetStoreQR returns a QR code PNG linking to the storefront page.
func (h *CatalogHandler) GetStoreQR(c echo.Context) error {
	sellerID := c.Param("id")

	// Only generate codes for storefronts that exist.
	if _, err := h.catalog.GetStore(c.Request().Context(), sellerID); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrcode.GenerateStoreQR(sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListProducts returns the newest listings for the home page.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	limit := h.limit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
		limit = parsed
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns one listing by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListSellerProducts returns the authenticated seller's own listings.
func (h *CatalogHandler) ListSellerProducts(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	products, err := h.catalog.ListSellerProducts(c.Request().Context(), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct creates a listing for the authenticated seller.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), identity.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct updates one of the authenticated seller's listings.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.catalog.UpdateProduct(c.Request().Context(), identity.UID, c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct removes one of the authenticated seller's listings.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), identity.UID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// CreateReview posts a review on a listing.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.catalog.CreateReview(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// ListProductReviews returns a listing's reviews, newest first.
func (h *CatalogHandler) ListProductReviews(c echo.Context) error {
	reviews, err := h.catalog.ListProductReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}
