package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeKeyValueStore is an in-memory service.KeyValueStore with injectable
// failures and a write counter.
type fakeKeyValueStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	readErr  error
	writeErr error
	writes   int
}

func newFakeKeyValueStore() *fakeKeyValueStore {
	return &fakeKeyValueStore{data: make(map[string][]byte)}
}

func (s *fakeKeyValueStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr != nil {
		return nil, s.readErr
	}
	raw, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	return raw, nil
}

func (s *fakeKeyValueStore) Write(_ context.Context, key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	s.data[key] = raw
	s.writes++

	return nil
}

func (s *fakeKeyValueStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func (s *fakeKeyValueStore) stored(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data[key]
}

// fakeSellerRepo is an in-memory repository.SellerProfileRepository. The
// onFind hook runs at the start of every FindByUID and may block to
// simulate a slow fetch.
type fakeSellerRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.SellerProfile
	err      error
	onFind   func(uid string)
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{profiles: make(map[string]*entity.SellerProfile)}
}

func (r *fakeSellerRepo) FindByUID(_ context.Context, uid string) (*entity.SellerProfile, error) {
	r.mu.Lock()
	hook := r.onFind
	r.mu.Unlock()
	if hook != nil {
		hook(uid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.profiles[uid]
	if !ok {
		return nil, errors.WithStack(repository.ErrNotFound)
	}

	return profile, nil
}

func (r *fakeSellerRepo) Create(_ context.Context, profile *entity.SellerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	if _, ok := r.profiles[profile.UID]; ok {
		return errors.WithStack(repository.ErrAlreadyExists)
	}
	r.profiles[profile.UID] = profile

	return nil
}

func (r *fakeSellerRepo) put(profile *entity.SellerProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.UID] = profile
}

// fakeStoreRepo is an in-memory repository.StoreProfileRepository.
type fakeStoreRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.StoreProfile
	err      error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{profiles: make(map[string]*entity.StoreProfile)}
}

func (r *fakeStoreRepo) FindBySellerID(_ context.Context, sellerID string) (*entity.StoreProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.profiles[sellerID]
	if !ok {
		return nil, errors.WithStack(repository.ErrNotFound)
	}

	return profile, nil
}

func (r *fakeStoreRepo) Upsert(_ context.Context, profile *entity.StoreProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	if existing, ok := r.profiles[profile.SellerID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	r.profiles[profile.SellerID] = profile

	return nil
}

func (r *fakeStoreRepo) ListAll(_ context.Context) ([]*entity.StoreProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	stores := make([]*entity.StoreProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		stores = append(stores, profile)
	}

	return stores, nil
}

func (r *fakeStoreRepo) put(profile *entity.StoreProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.SellerID] = profile
}

// fakeProductRepo is an in-memory repository.ProductRepository.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	order    []string
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrNotFound)
	}

	return product, nil
}

func (r *fakeProductRepo) ListAll(_ context.Context, limit int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	var products []*entity.Product
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	return products, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	var products []*entity.Product
	for _, id := range r.order {
		if r.products[id].SellerID == sellerID {
			products = append(products, r.products[id])
		}
	}

	return products, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.products[product.ID] = product

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	delete(r.products, id)

	return nil
}

// fakeReviewRepo is an in-memory repository.ReviewRepository.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []*entity.Review
	err     error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.reviews = append(r.reviews, review)

	return nil
}

func (r *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}
