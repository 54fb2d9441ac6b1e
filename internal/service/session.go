package service

import (
	"context"
	"sync"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

// Snapshot is an immutable view of the session state handed to subscribers.
type Snapshot struct {
	User    *models.User
	IsAdmin bool
	Cart    []models.CartItem
}

// Session owns the reactive state of the storefront: the current user, the
// admin flag and the cart. Every mutation is mirrored to its storage key
// immediately; construction hydrates from storage. The cart deliberately
// survives login and logout, it belongs to the session, not the user.
type Session struct {
	mu    sync.Mutex
	store storage.Store

	user    *models.User
	isAdmin bool
	cart    []models.CartItem

	subs []func(Snapshot)
}

// NewSession hydrates session state from the store.
func NewSession(ctx context.Context, store storage.Store) *Session {
	s := &Session{store: store}
	store.Read(ctx, storage.KeyCurrentUser, &s.user)
	store.Read(ctx, storage.KeyAdminFlag, &s.isAdmin)
	store.Read(ctx, storage.KeyCart, &s.cart)
	return s
}

// Subscribe registers fn to be called with a snapshot after every state
// change. Subscribers run synchronously under the session lock and must
// not call back into the session.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAdmin reports whether an admin session is active.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

// Cart returns a copy of the cart lines.
func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.cart...)
}

func (s *Session) setUser(ctx context.Context, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.store.Write(ctx, storage.KeyCurrentUser, s.user)
	s.notify()
}

func (s *Session) setAdmin(ctx context.Context, isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAdmin = isAdmin
	s.store.Write(ctx, storage.KeyAdminFlag, s.isAdmin)
	s.notify()
}

func (s *Session) setCart(ctx context.Context, cart []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart
	s.store.Write(ctx, storage.KeyCart, s.cart)
	s.notify()
}

// notify must be called with the lock held.
func (s *Session) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := Snapshot{
		IsAdmin: s.isAdmin,
		Cart:    append([]models.CartItem(nil), s.cart...),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	for _, fn := range s.subs {
		fn(snap)
	}
}
