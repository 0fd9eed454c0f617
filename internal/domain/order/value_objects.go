package order

import (
	"crypto/rand"
	"encoding/hex"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"slot-booking/internal/domain/slot"
)

const PhoneLength = 10

// ID is the public order identifier: "EF" + base36 millis + 6 hex chars.
type ID string

func NewID(now time.Time) ID {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	var buf [3]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return ID("EF" + ts + strings.ToUpper(hex.EncodeToString(buf[:])))
}

func (id ID) String() string { return string(id) }

// NormalizePhone keeps only the digits of raw.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type Phone string

func NewPhone(raw string) (Phone, error) {
	digits := NormalizePhone(raw)
	if len(digits) != PhoneLength {
		return "", ErrInvalidPhone
	}
	return Phone(digits), nil
}

func (p Phone) String() string { return string(p) }

type Customer struct {
	name  string
	phone Phone
	email *string
}

func NewCustomer(name, phone string, email *string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrCustomerNameRequired
	}
	p, err := NewPhone(phone)
	if err != nil {
		return Customer{}, err
	}
	var em *string
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed != "" {
			if _, err := mail.ParseAddress(trimmed); err != nil {
				return Customer{}, ErrInvalidEmail
			}
			em = &trimmed
		}
	}
	return Customer{name: name, phone: p, email: em}, nil
}

func ReconstructCustomer(name string, phone Phone, email *string) Customer {
	return Customer{name: name, phone: phone, email: email}
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Phone() Phone   { return c.phone }
func (c Customer) Email() *string { return c.email }

// Booking is the customer's selection with price and features frozen at creation.
type Booking struct {
	location  string
	date      slot.Date
	slotID    string
	slotLabel string
	pkg       string
	price     int64
	features  []string
}

func NewBooking(location string, date slot.Date, slotID, slotLabel, pkg string, price int64, features []string) (Booking, error) {
	if location == "" || date.IsZero() || slotID == "" || pkg == "" {
		return Booking{}, ErrIncompleteBooking
	}
	if price <= 0 {
		return Booking{}, ErrInvalidAmount
	}
	return Booking{
		location:  location,
		date:      date,
		slotID:    slotID,
		slotLabel: slotLabel,
		pkg:       pkg,
		price:     price,
		features:  slices.Clone(features),
	}, nil
}

func (b Booking) Location() string   { return b.location }
func (b Booking) Date() slot.Date    { return b.date }
func (b Booking) SlotID() string     { return b.slotID }
func (b Booking) SlotLabel() string  { return b.slotLabel }
func (b Booking) Package() string    { return b.pkg }
func (b Booking) Price() int64       { return b.price }
func (b Booking) Features() []string { return slices.Clone(b.features) }

// LedgerKey is the reservation record this booking occupies once confirmed.
func (b Booking) LedgerKey() slot.Key {
	return slot.NewKey(b.date, b.location, slot.Scoped(b.pkg))
}

// Requester identifies who asks for a cancellation.
type Requester struct {
	phone *Phone
	admin bool
}

func CustomerRequester(phone Phone) Requester { return Requester{phone: &phone} }

// AnonymousRequester is a public caller that did not state a phone.
func AnonymousRequester() Requester { return Requester{} }

func AdminRequester() Requester { return Requester{admin: true} }

func (r Requester) IsAdmin() bool { return r.admin }

func (r Requester) Phone() (Phone, bool) {
	if r.phone == nil {
		return "", false
	}
	return *r.phone, true
}
