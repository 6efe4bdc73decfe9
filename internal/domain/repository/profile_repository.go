// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrNotFound is a domain-specific error returned when a record is absent.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned by create-once operations when the record
// is already present.
var ErrAlreadyExists = errors.New("record already exists")

// SellerProfileRepository defines the operations for seller profile
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type SellerProfileRepository interface {
	// FindByUID retrieves the seller profile keyed by the identity UID.
	// Returns ErrNotFound when no profile exists.
	FindByUID(ctx context.Context, uid string) (*entity.SellerProfile, error)

	// Create persists a new seller profile. Creation happens exactly once
	// per identity; a second call for the same UID fails.
	Create(ctx context.Context, profile *entity.SellerProfile) error
}

// StoreProfileRepository defines the operations for storefront persistence.
type StoreProfileRepository interface {
	// FindBySellerID retrieves the store profile keyed by the seller UID.
	// Returns ErrNotFound when no store exists.
	FindBySellerID(ctx context.Context, sellerID string) (*entity.StoreProfile, error)

	// Upsert creates the store profile or updates the existing one, keyed
	// by SellerID. CreatedAt is preserved on update.
	Upsert(ctx context.Context, profile *entity.StoreProfile) error

	// ListAll returns every storefront, newest first.
	ListAll(ctx context.Context) ([]*entity.StoreProfile, error)
}
