// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It is the single
// owner of the published session: every change flows through an epoch-keyed
// fetch sequence, and a sequence commits only if no newer sequence has
// started in the meantime.
type sessionService struct {
	provider service.AuthProvider
	sellers  repository.SellerProfileRepository
	stores   repository.StoreProfileRepository
	logger   *slog.Logger

	mu          sync.RWMutex
	epoch       uint64
	cur         usecase.Session
	subs        map[uint64]func(usecase.Session)
	nextSub     uint64
	unsubscribe func()
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	provider service.AuthProvider,
	sellers repository.SellerProfileRepository,
	stores repository.StoreProfileRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		provider: provider,
		sellers:  sellers,
		stores:   stores,
		logger:   logger,
		cur:      usecase.Session{Loading: true},
		subs:     make(map[uint64]func(usecase.Session)),
	}
}

// Start subscribes to the auth provider. The provider fires the callback
// once immediately, so the first sequence runs before Start returns.
func (srv *sessionService) Start(ctx context.Context) error {
	srv.mu.Lock()
	if srv.unsubscribe != nil {
		srv.mu.Unlock()

		return errors.New("session service already started")
	}
	// Placeholder until Subscribe returns; the immediate callback can fire
	// before the assignment below.
	srv.unsubscribe = func() {}
	srv.mu.Unlock()

	unsubscribe := srv.provider.Subscribe(func(identity *entity.Identity) {
		srv.handleAuthChange(ctx, identity)
	})

	srv.mu.Lock()
	srv.unsubscribe = unsubscribe
	srv.mu.Unlock()

	return nil
}

// Stop detaches from the auth provider.
func (srv *sessionService) Stop() {
	srv.mu.Lock()
	unsubscribe := srv.unsubscribe
	srv.unsubscribe = nil
	srv.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Snapshot returns the current published session.
func (srv *sessionService) Snapshot() usecase.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.cur
}

// Refresh re-runs the fetch sequence for the currently-known identity. It
// starts a new epoch, so an in-flight sequence that commits later is
// discarded as stale.
func (srv *sessionService) Refresh(ctx context.Context) {
	srv.mu.Lock()
	identity := srv.cur.Identity
	if identity == nil {
		srv.mu.Unlock()

		return
	}
	srv.epoch++
	seq := srv.epoch
	srv.cur.Loading = true
	snapshot := srv.cur
	subs := srv.subscribersLocked()
	srv.mu.Unlock()

	notify(subs, snapshot)
	srv.derive(ctx, seq, identity)
}

// OnChange registers a callback invoked after every published change.
func (srv *sessionService) OnChange(fn func(usecase.Session)) func() {
	srv.mu.Lock()
	id := srv.nextSub
	srv.nextSub++
	srv.subs[id] = fn
	srv.mu.Unlock()

	return func() {
		srv.mu.Lock()
		delete(srv.subs, id)
		srv.mu.Unlock()
	}
}

// handleAuthChange runs one identity-change sequence: flip to loading,
// then either clear everything (signed out) or fetch seller and store in
// order.
func (srv *sessionService) handleAuthChange(ctx context.Context, identity *entity.Identity) {
	srv.mu.Lock()
	srv.epoch++
	seq := srv.epoch
	srv.cur.Identity = identity
	srv.cur.Loading = true
	snapshot := srv.cur
	subs := srv.subscribersLocked()
	srv.mu.Unlock()

	notify(subs, snapshot)

	if identity == nil {
		srv.commit(seq, nil, nil, nil)

		return
	}

	srv.derive(ctx, seq, identity)
}

// derive performs the sequential seller-then-store fetch for one identity
// and commits the result. The store fetch depends on the seller fetch
// succeeding: the store lookup key equals the seller UID, and a new user
// has no store to look up.
func (srv *sessionService) derive(ctx context.Context, seq uint64, identity *entity.Identity) {
	seller := srv.fetchSeller(ctx, identity.UID)
	if seller == nil {
		srv.commit(seq, identity, nil, nil)

		return
	}

	if srv.stale(seq) {
		return
	}

	store := srv.fetchStore(ctx, identity.UID)
	if store != nil && store.SellerID != identity.UID {
		// Integrity check: a record keyed by this UID must carry it. A
		// mismatch means the data service returned something stale.
		srv.logger.Warn("store profile seller id mismatch, treating as absent",
			slog.String("uid", identity.UID), slog.String("sellerId", store.SellerID))
		store = nil
	}

	srv.commit(seq, identity, seller, store)
}

// commit publishes the result of a fetch sequence unless a newer sequence
// has started. Stale results are dropped without logging; that is the
// normal cancellation path, not an error.
func (srv *sessionService) commit(seq uint64, identity *entity.Identity, seller *entity.SellerProfile, store *entity.StoreProfile) {
	srv.mu.Lock()
	if seq != srv.epoch {
		srv.mu.Unlock()

		return
	}
	srv.cur = usecase.Session{
		Identity: identity,
		Seller:   seller,
		Store:    store,
		Loading:  false,
	}
	snapshot := srv.cur
	subs := srv.subscribersLocked()
	srv.mu.Unlock()

	srv.logger.Debug("session state committed",
		slog.String("state", string(snapshot.State())))

	notify(subs, snapshot)
}

func (srv *sessionService) stale(seq uint64) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return seq != srv.epoch
}

// fetchSeller maps every failure to "absent". The session machine does not
// distinguish a missing record from a failed lookup.
func (srv *sessionService) fetchSeller(ctx context.Context, uid string) *entity.SellerProfile {
	seller, err := srv.sellers.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			srv.logger.Debug("seller profile fetch failed, treating as absent",
				slog.String("uid", uid), slog.Any("error", err))
		}

		return nil
	}

	return seller
}

func (srv *sessionService) fetchStore(ctx context.Context, sellerID string) *entity.StoreProfile {
	store, err := srv.stores.FindBySellerID(ctx, sellerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			srv.logger.Debug("store profile fetch failed, treating as absent",
				slog.String("sellerId", sellerID), slog.Any("error", err))
		}

		return nil
	}

	return store
}

func (srv *sessionService) subscribersLocked() []func(usecase.Session) {
	subs := make([]func(usecase.Session), 0, len(srv.subs))
	for _, fn := range srv.subs {
		subs = append(subs, fn)
	}

	return subs
}

func notify(subs []func(usecase.Session), snapshot usecase.Session) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
