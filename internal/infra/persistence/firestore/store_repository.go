package firestore

import (
	"context"
	"sort"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type storeProfileRepository struct {
	client *firestore.Client
}

// NewStoreProfileRepository is the constructor for storeProfileRepository.
func NewStoreProfileRepository(client *firestore.Client) repository.StoreProfileRepository {
	return &storeProfileRepository{client: client}
}

// FindBySellerID retrieves the store profile document keyed by the seller UID.
func (repo *storeProfileRepository) FindBySellerID(ctx context.Context, sellerID string) (*entity.StoreProfile, error) {
	snap, err := repo.client.Collection(storesCollection).Doc(sellerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to get store profile")
	}

	var doc model.StoreProfileModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode store profile")
	}

	return doc.ToEntity(), nil
}

// Upsert creates or replaces the store profile. The original CreatedAt is
// preserved when the document already exists.
func (repo *storeProfileRepository) Upsert(ctx context.Context, profile *entity.StoreProfile) error {
	ref := repo.client.Collection(storesCollection).Doc(profile.SellerID)

	doc := model.FromStoreProfile(profile)

	snap, err := ref.Get(ctx)
	switch {
	case err == nil:
		var existing model.StoreProfileModel
		if decodeErr := snap.DataTo(&existing); decodeErr == nil {
			doc.CreatedAt = existing.CreatedAt
		}
	case status.Code(err) != codes.NotFound:
		return errors.Wrap(err, "failed to check existing store profile")
	}

	if _, err := ref.Set(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to upsert store profile")
	}

	return nil
}

// ListAll returns every storefront, newest first. Sorting happens in memory
// so the collection does not need a composite index.
func (repo *storeProfileRepository) ListAll(ctx context.Context) ([]*entity.StoreProfile, error) {
	iter := repo.client.Collection(storesCollection).Documents(ctx)
	defer iter.Stop()

	var stores []*entity.StoreProfile
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate store profiles")
		}

		var doc model.StoreProfileModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode store profile")
		}

		stores = append(stores, doc.ToEntity())
	}

	sort.Slice(stores, func(i, j int) bool {
		return stores[i].CreatedAt.After(stores[j].CreatedAt)
	})

	return stores, nil
}
