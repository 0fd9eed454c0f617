package shared

import (
	"context"
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Orders() OrderRepository
	Notifications() NotificationRepository
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id order.ID) (*order.Order, error)
	// FindByCustomerPhone returns orders newest first.
	FindByCustomerPhone(ctx context.Context, phone order.Phone) ([]*order.Order, error)
	// UpdateStatus persists o's status fields only if the stored status still
	// equals expected. A lost race is reported as infra.KindNotFound.
	UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error
	AttachPaymentSession(ctx context.Context, o *order.Order) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// SlotLedger stores which slot ids are taken per reservation record.
// Reserve and Release are idempotent set operations. Release leaves the slot
// in place while any confirmed order still holds it, checked in the same write.
type SlotLedger interface {
	Board(ctx context.Context, date slot.Date, location string) (*slot.Board, error)
	Reserve(ctx context.Context, key slot.Key, slotID string) error
	Release(ctx context.Context, key slot.Key, slotID string) error
}

// LedgerAuditor finds disagreements between confirmed orders and the ledger.
type LedgerAuditor interface {
	UnreservedConfirmed(ctx context.Context, from slot.Date, limit int32) ([]slot.Entry, error)
	Orphaned(ctx context.Context, from slot.Date, limit int32) ([]slot.Entry, error)
}
