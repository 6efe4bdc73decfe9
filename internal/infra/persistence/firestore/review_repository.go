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
)

type reviewRepository struct {
	client *firestore.Client
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

// Create persists a new review under its pre-assigned id.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	_, err := repo.client.Collection(reviewsCollection).Doc(review.ID).Create(ctx, model.FromReview(review))
	if err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

// ListByProduct returns a product's reviews newest first, sorted in memory.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	iter := repo.client.Collection(reviewsCollection).Where("productId", "==", productID).Documents(ctx)
	defer iter.Stop()

	var reviews []*entity.Review
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate reviews")
		}

		var doc model.ReviewModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode review")
		}

		reviews = append(reviews, doc.ToEntity(snap.Ref.ID))
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	return reviews, nil
}
