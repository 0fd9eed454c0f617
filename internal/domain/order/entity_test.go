//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/pkg/errs"
	"slot-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, int64(2499), actual.Amount())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Nil(t, actual.PaidAt())
		assert.Nil(t, actual.CancelledAt())
		assert.True(t, strings.HasPrefix(actual.ID().String(), "EF"))
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "phone is normalized",
				mutate: func(b *builder.OrderBuilder) { b.WithPhone("98765-43210") },
			},
			{
				name:   "short phone",
				mutate: func(b *builder.OrderBuilder) { b.WithPhone("12345") },
				errIs:  order.ErrInvalidPhone,
			},
			{
				name:   "blank name",
				mutate: func(b *builder.OrderBuilder) { b.Name = "   " },
				errIs:  order.ErrCustomerNameRequired,
			},
			{
				name: "bad email",
				mutate: func(b *builder.OrderBuilder) {
					bad := "not-an-email"
					b.Email = &bad
				},
				errIs: order.ErrInvalidEmail,
			},
			{
				name: "blank email is dropped",
				mutate: func(b *builder.OrderBuilder) {
					blank := " "
					b.Email = &blank
				},
			},
			{
				name:   "missing slot",
				mutate: func(b *builder.OrderBuilder) { b.SlotID = "" },
				errIs:  order.ErrIncompleteBooking,
			},
			{
				name:   "zero date",
				mutate: func(b *builder.OrderBuilder) { b.Date = slot.Date{} },
				errIs:  order.ErrIncompleteBooking,
			},
			{
				name:   "non-positive price",
				mutate: func(b *builder.OrderBuilder) { b.Price = 0 },
				errIs:  order.ErrInvalidAmount,
			},
		})
	})

	t.Run("ids are unique", func(t *testing.T) {
		now := time.Now()
		seen := map[order.ID]struct{}{}
		for range 100 {
			id := order.NewID(now)
			_, dup := seen[id]
			require.False(t, dup)
			seen[id] = struct{}{}
		}
	})

	t.Run("ledger key is package scoped", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		key := o.Booking().LedgerKey()
		pkg, ok := key.Scope.Package()
		assert.True(t, ok)
		assert.Equal(t, "Gold", pkg)
		assert.Equal(t, "Surat", key.Location)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, s)

	_, err = order.ParseStatus("refunded")
	assert.True(t, errs.Is(err, order.ErrInvalidStatus), "got %v", err)
}

func TestTransition_LedgerEffect(t *testing.T) {
	cases := []struct {
		from, to order.Status
		want     order.LedgerEffect
	}{
		{order.StatusPending, order.StatusConfirmed, order.LedgerReserve},
		{order.StatusFailed, order.StatusConfirmed, order.LedgerReserve},
		{order.StatusCancelled, order.StatusConfirmed, order.LedgerReserve},
		{order.StatusConfirmed, order.StatusCancelled, order.LedgerRelease},
		{order.StatusConfirmed, order.StatusPending, order.LedgerRelease},
		{order.StatusConfirmed, order.StatusFailed, order.LedgerRelease},
		{order.StatusPending, order.StatusCancelled, order.LedgerNone},
		{order.StatusPending, order.StatusFailed, order.LedgerNone},
		{order.StatusConfirmed, order.StatusConfirmed, order.LedgerNone},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			o, err := builder.NewOrderBuilder().BuildWithStatus(tc.from)
			require.NoError(t, err)

			tr, err := o.TransitionTo(tc.to, order.SourceAdmin, time.Now(), "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, tr.LedgerEffect())
			assert.Equal(t, tc.to, o.Status())
		})
	}
}

func TestOrder_Confirm(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tr, err := o.Confirm(order.SourceWebhook, at)
	require.NoError(t, err)
	assert.True(t, tr.Changed())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, at, *o.PaidAt())

	again, err := o.Confirm(order.SourceClientVerify, at.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, again.Changed())
	assert.Equal(t, order.LedgerNone, again.LedgerEffect())
	assert.Equal(t, at, *o.PaidAt())
}

func TestOrder_TransitionTo_Invalid(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)

	_, err = o.TransitionTo(order.Status("refunded"), order.SourceAdmin, time.Now(), "")
	assert.True(t, errs.Is(err, order.ErrInvalidStatus), "got %v", err)
	assert.Equal(t, order.StatusPending, o.Status())
}

func TestOrder_Cancel(t *testing.T) {
	owner, err := order.NewPhone("9876543210")
	require.NoError(t, err)
	stranger, err := order.NewPhone("9000000000")
	require.NoError(t, err)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("owner cancels confirmed order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildWithStatus(order.StatusConfirmed)
		require.NoError(t, err)

		tr, err := o.Cancel(order.CustomerRequester(owner), "plans changed", at)
		require.NoError(t, err)
		assert.Equal(t, order.LedgerRelease, tr.LedgerEffect())
		assert.Equal(t, order.SourceCustomer, tr.Source)
		require.NotNil(t, o.CancellationReason())
		assert.Equal(t, "plans changed", *o.CancellationReason())
		require.NotNil(t, o.CancelledAt())
	})

	t.Run("pending cancel releases nothing", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		tr, err := o.Cancel(order.AnonymousRequester(), "", at)
		require.NoError(t, err)
		assert.Equal(t, order.LedgerNone, tr.LedgerEffect())
		assert.Nil(t, o.CancellationReason())
	})

	t.Run("phone mismatch", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildWithStatus(order.StatusConfirmed)
		require.NoError(t, err)

		_, err = o.Cancel(order.CustomerRequester(stranger), "", at)
		assert.True(t, errs.Is(err, errs.ErrOwnershipMismatch), "got %v", err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("already cancelled", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildWithStatus(order.StatusCancelled)
		require.NoError(t, err)

		_, err = o.Cancel(order.CustomerRequester(owner), "", at)
		assert.True(t, errs.Is(err, errs.ErrAlreadyCancelled), "got %v", err)
	})

	t.Run("admin skips ownership", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildWithStatus(order.StatusConfirmed)
		require.NoError(t, err)

		tr, err := o.Cancel(order.AdminRequester(), "", at)
		require.NoError(t, err)
		assert.Equal(t, order.SourceAdmin, tr.Source)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.True(t, errs.Is(err, c.errIs), "got %v", err)
			}
		})
	}
}
