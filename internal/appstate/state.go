// Package appstate holds the mutable session state shared by the panel
// handlers: the signed-in user, the product catalog and the connectivity
// flag. All access goes through accessors; there are no package globals.
package appstate

import (
	"sync"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// Event names passed to subscribers.
const (
	EventUser     = "user"
	EventProducts = "products"
	EventOnline   = "online"
)

// Snapshot is a point-in-time copy of the state. Mutating it does not
// affect the live state.
type Snapshot struct {
	User     *domain.User     `json:"user"`
	Products []domain.Product `json:"products"`
	Online   bool             `json:"online"`
}

// State is safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	user     *domain.User
	products []domain.Product
	online   bool
	subs     []func(event string)
}

func New() *State {
	return &State{online: true}
}

// Subscribe registers fn to be called after every state change. Subscribers
// run synchronously in registration order, outside the state lock, so they
// may call back into State.
func (s *State) Subscribe(fn func(event string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		User:     copyUser(s.user),
		Products: copyProducts(s.products),
		Online:   s.online,
	}
}

func (s *State) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

func (s *State) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

func (s *State) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProducts(s.products)
}

func (s *State) SetUser(u *domain.User) {
	s.mu.Lock()
	s.user = copyUser(u)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, EventUser)
}

func (s *State) SetProducts(ps []domain.Product) {
	s.mu.Lock()
	s.products = copyProducts(ps)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, EventProducts)
}

// SetOnline records the connectivity flag. Subscribers are notified only
// when the value actually changes, so the queue flusher can report the
// probe result every cycle without flooding listeners.
func (s *State) SetOnline(online bool) {
	s.mu.Lock()
	if s.online == online {
		s.mu.Unlock()
		return
	}
	s.online = online
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, EventOnline)
}

func (s *State) snapshotSubs() []func(event string) {
	subs := make([]func(event string), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []func(event string), event string) {
	for _, fn := range subs {
		fn(event)
	}
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func copyProducts(ps []domain.Product) []domain.Product {
	if ps == nil {
		return nil
	}
	cp := make([]domain.Product, len(ps))
	copy(cp, ps)
	return cp
}
