//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/infra"
	"slot-booking/internal/usecase/shared"
)

// memStore is an in-memory order table with the same compare-and-set
// semantics as the Postgres repository.
type memStore struct {
	mu     sync.Mutex
	orders map[order.ID]*order.Order
	jobs   []memJob

	// beforeUpdate runs once before the next status write, outside the lock.
	beforeUpdate func()
}

type memJob struct {
	Kind    string
	Payload []byte
}

func newMemStore() *memStore {
	return &memStore{orders: map[order.ID]*order.Order{}}
}

func (s *memStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o.Clone()
}

func (s *memStore) get(id order.ID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		return o.Clone()
	}
	return nil
}

// holdsConfirmed reports whether a confirmed order owns slotID under key.
func (s *memStore) holdsConfirmed(key slot.Key, slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		k := o.Booking().LedgerKey()
		if o.IsConfirmed() && o.Booking().SlotID() == slotID &&
			k.Date.Equal(key.Date) && k.Location == key.Location && k.Scope == key.Scope {
			return true
		}
	}
	return false
}

func (s *memStore) jobKinds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		kinds[i] = j.Kind
	}
	return kinds
}

type memUoW struct {
	store *memStore
	err   error
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.err != nil {
		return u.err
	}
	tx := &memTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.store.mu.Lock()
	u.store.jobs = append(u.store.jobs, tx.jobs...)
	u.store.mu.Unlock()
	return nil
}

type memTx struct {
	store *memStore
	jobs  []memJob
}

func (t *memTx) Orders() shared.OrderRepository               { return (*memOrders)(t.store) }
func (t *memTx) Notifications() shared.NotificationRepository { return (*memNotifications)(t) }

type memOrders memStore

func (r *memOrders) Create(_ context.Context, o *order.Order) error {
	s := (*memStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[o.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "order exists", nil)
	}
	s.orders[o.ID()] = o.Clone()
	return nil
}

func (r *memOrders) FindByID(_ context.Context, id order.ID) (*order.Order, error) {
	if o := (*memStore)(r).get(id); o != nil {
		return o, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "order not found", nil)
}

func (r *memOrders) FindByCustomerPhone(_ context.Context, phone order.Phone) ([]*order.Order, error) {
	s := (*memStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*order.Order
	for _, o := range s.orders {
		if o.OwnedBy(phone) {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

func (r *memOrders) UpdateStatus(_ context.Context, o *order.Order, expected order.Status) error {
	s := (*memStore)(r)
	s.mu.Lock()
	hook := s.beforeUpdate
	s.beforeUpdate = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[o.ID()]
	if !ok || stored.Status() != expected {
		return infra.NewRepoErr(infra.KindNotFound, "order status changed", nil)
	}
	s.orders[o.ID()] = o.Clone()
	return nil
}

func (r *memOrders) AttachPaymentSession(_ context.Context, o *order.Order) error {
	s := (*memStore)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "order not found", nil)
	}
	s.orders[o.ID()] = o.Clone()
	return nil
}

type memNotifications memTx

func (n *memNotifications) CreateJob(_ context.Context, kind, _ string, payload []byte, _ time.Time) error {
	n.jobs = append(n.jobs, memJob{Kind: kind, Payload: payload})
	return nil
}

// memLedger is a set-per-key ledger that can be told to fail. When held is
// set, Release keeps slots it reports as owned, like the SQL release does.
type memLedger struct {
	mu       sync.Mutex
	sets     map[slot.Key]map[string]struct{}
	reserves int
	releases int
	failures int
	err      error
	held     func(key slot.Key, slotID string) bool
}

func newMemLedger() *memLedger {
	return &memLedger{sets: map[slot.Key]map[string]struct{}{}}
}

func (l *memLedger) Board(_ context.Context, date slot.Date, location string) (*slot.Board, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := slot.NewBoard(date, location)
	for k, ids := range l.sets {
		if !k.Date.Equal(date) || k.Location != location {
			continue
		}
		for id := range ids {
			b.Add(k.Scope, id)
		}
	}
	return b, nil
}

func (l *memLedger) Reserve(_ context.Context, key slot.Key, slotID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		l.failures++
		return l.err
	}
	l.reserves++
	if l.sets[key] == nil {
		l.sets[key] = map[string]struct{}{}
	}
	l.sets[key][slotID] = struct{}{}
	return nil
}

func (l *memLedger) Release(_ context.Context, key slot.Key, slotID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		l.failures++
		return l.err
	}
	l.releases++
	if l.held != nil && l.held(key, slotID) {
		return nil
	}
	delete(l.sets[key], slotID)
	return nil
}

func (l *memLedger) has(key slot.Key, slotID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.sets[key][slotID]
	return ok
}

func (l *memLedger) counts() (reserves, releases int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserves, l.releases
}

type fakeGateway struct {
	configured bool
	session    *shared.PaymentSession
	createErr  error
	status     shared.PaymentStatus
	statusErr  error
	event      *shared.WebhookEvent
	webhookErr error
	checks     int
}

func (g *fakeGateway) Configured() bool { return g.configured }

func (g *fakeGateway) CreateSession(context.Context, shared.SessionRequest) (*shared.PaymentSession, error) {
	if !g.configured {
		return nil, shared.ErrGatewayUnavailable
	}
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.session, nil
}

func (g *fakeGateway) CheckStatus(context.Context, shared.PaymentRef) (shared.PaymentStatus, error) {
	g.checks++
	if g.statusErr != nil {
		return "", g.statusErr
	}
	return g.status, nil
}

func (g *fakeGateway) ValidateWebhook(context.Context, shared.WebhookPayload) (*shared.WebhookEvent, error) {
	if g.webhookErr != nil {
		return nil, g.webhookErr
	}
	return g.event, nil
}

type fakeAuditor struct {
	missing    []slot.Entry
	orphaned   []slot.Entry
	err        error
	lastFrom   slot.Date
	lastLimits []int32
}

func (a *fakeAuditor) UnreservedConfirmed(_ context.Context, from slot.Date, limit int32) ([]slot.Entry, error) {
	a.lastFrom = from
	a.lastLimits = append(a.lastLimits, limit)
	return a.missing, a.err
}

func (a *fakeAuditor) Orphaned(_ context.Context, from slot.Date, limit int32) ([]slot.Entry, error) {
	a.lastLimits = append(a.lastLimits, limit)
	return a.orphaned, a.err
}

var errBoom = errors.New("boom")
