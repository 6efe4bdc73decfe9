package firestore

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sellerProfileRepository struct {
	client *firestore.Client
}

// NewSellerProfileRepository is the constructor for sellerProfileRepository.
func NewSellerProfileRepository(client *firestore.Client) repository.SellerProfileRepository {
	return &sellerProfileRepository{client: client}
}

// FindByUID retrieves the seller profile document keyed by the identity UID.
func (repo *sellerProfileRepository) FindByUID(ctx context.Context, uid string) (*entity.SellerProfile, error) {
	snap, err := repo.client.Collection(sellersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to get seller profile")
	}

	var doc model.SellerProfileModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode seller profile")
	}

	return doc.ToEntity(), nil
}

// Create persists a new seller profile. The document id is the UID, so a
// second create for the same identity fails with ErrAlreadyExists.
func (repo *sellerProfileRepository) Create(ctx context.Context, profile *entity.SellerProfile) error {
	_, err := repo.client.Collection(sellersCollection).Doc(profile.UID).Create(ctx, model.FromSellerProfile(profile))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.WithStack(repository.ErrAlreadyExists)
		}

		return errors.Wrap(err, "failed to create seller profile")
	}

	return nil
}
