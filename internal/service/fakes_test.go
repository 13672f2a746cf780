package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/payment"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/clinicbook/api/internal/repository"
	"github.com/clinicbook/api/pkg/payments"
	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the document store. Its mutex plays
// the role of the database's uniqueness constraint and row locks: exactly one
// concurrent writer wins a key, and confirmation is serialized per booking.
type fakeStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*booking.Booking
	payments map[uuid.UUID]*payment.Payment // keyed by booking ID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: make(map[uuid.UUID]*booking.Booking),
		payments: make(map[uuid.UUID]*payment.Payment),
	}
}

var _ booking.Repository = (*fakeStore)(nil)
var _ payment.Repository = (*fakeStore)(nil)

func (s *fakeStore) Create(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.Treatment == b.Treatment && existing.Date == b.Date && existing.Patient == b.Patient {
			cp := *existing
			return &booking.DuplicateBookingError{Existing: &cp}
		}
	}

	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *fakeStore) ListByDate(_ context.Context, date string) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.Date == date {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) ListByPatient(_ context.Context, patient string) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.Patient == patient {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) Confirm(_ context.Context, bookingID uuid.UUID, transactionID string, amount int64, currency string) (*booking.Booking, *payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, nil, booking.ErrBookingNotFound
	}
	if b.Status == booking.StatusPaid {
		return nil, nil, booking.ErrAlreadyPaid
	}

	p := &payment.Payment{
		ID:            uuid.New(),
		CreatedAt:     time.Now(),
		BookingID:     bookingID,
		Amount:        amount,
		Currency:      currency,
		TransactionID: transactionID,
		Patient:       b.Patient,
	}
	s.payments[bookingID] = p

	b.Status = booking.StatusPaid
	b.TransactionID = transactionID

	bcp, pcp := *b, *p
	return &bcp, &pcp, nil
}

func (s *fakeStore) GetByBookingID(_ context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[bookingID]
	if !ok {
		return nil, payment.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

type fakeTreatmentRepo struct {
	treatments []*treatment.Treatment
}

var _ treatment.Repository = (*fakeTreatmentRepo)(nil)

func (r *fakeTreatmentRepo) List(_ context.Context) ([]*treatment.Treatment, error) {
	out := make([]*treatment.Treatment, len(r.treatments))
	copy(out, r.treatments)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTreatmentRepo) GetByName(_ context.Context, name string) (*treatment.Treatment, error) {
	for _, t := range r.treatments {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, treatment.ErrTreatmentNotFound
}

func (r *fakeTreatmentRepo) ListNames(_ context.Context) ([]*treatment.NameProjection, error) {
	all, _ := r.List(context.Background())
	out := make([]*treatment.NameProjection, 0, len(all))
	for _, t := range all {
		out = append(out, &treatment.NameProjection{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

var _ UserRepository = (*fakeUserRepo)(nil)
var _ UserDirectory = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if existing, ok := r.users[key]; ok {
		existing.Name = u.Name
		cp := *existing
		return &cp, nil
	}

	stored := &domain.User{
		ID:    uuid.New(),
		Email: key,
		Name:  u.Name,
		Role:  u.Role,
	}
	if stored.Role == "" {
		stored.Role = domain.RolePatient
	}
	r.users[key] = stored
	cp := *stored
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, email string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

type fakeGateway struct {
	lastAmount int64
}

var _ PaymentIntentCreator = (*fakeGateway)(nil)

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64) (*payments.Intent, error) {
	g.lastAmount = amount
	return &payments.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       amount,
		Currency:     "usd",
	}, nil
}
