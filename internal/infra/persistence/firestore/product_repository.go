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

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

// FindByID retrieves a single product document.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.WithStack(repository.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	var doc model.ProductModel
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode product")
	}

	return doc.ToEntity(snap.Ref.ID), nil
}

// ListAll returns products newest first. A limit <= 0 means no limit.
func (repo *productRepository) ListAll(ctx context.Context, limit int) ([]*entity.Product, error) {
	products, err := repo.collect(repo.client.Collection(productsCollection).Documents(ctx))
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	return products, nil
}

// ListBySeller returns a seller's products newest first. The createdAt sort
// happens in memory so the sellerId filter needs no composite index.
func (repo *productRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	query := repo.client.Collection(productsCollection).Where("sellerId", "==", sellerID)

	return repo.collect(query.Documents(ctx))
}

// Create persists a new product under its pre-assigned id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := repo.client.Collection(productsCollection).Doc(product.ID).Create(ctx, model.FromProduct(product))
	if err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

// Update replaces the product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := repo.client.Collection(productsCollection).Doc(product.ID).Set(ctx, model.FromProduct(product))
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes the product document.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.client.Collection(productsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (repo *productRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		var doc model.ProductModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode product")
		}

		products = append(products, doc.ToEntity(snap.Ref.ID))
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	return products, nil
}
