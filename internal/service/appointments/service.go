// Package appointments owns the authoritative appointment collection: the
// lifecycle operations (create, cancel, complete), the query surface, and
// the mirroring of every mutation into the durable slot.
package appointments

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/catalog"
	"barbearia/internal/domain"
	"barbearia/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service keeps the collection in memory and writes the full collection to
// the durable slot after every successful mutation. The in-memory state is
// authoritative for the session: slot failures are logged and swallowed.
type Service struct {
	mu    sync.Mutex
	appts []domain.Appointment

	slot store.DurableSlot
	log  *slog.Logger
	now  func() time.Time
}

// NewService builds a service backed by slot and loads any previously saved
// collection. A load or parse failure is logged, not returned; the service
// simply starts empty.
func NewService(ctx context.Context, slot store.DurableSlot, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		slot: slot,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}

	data, found, err := slot.Load(ctx)
	if err != nil {
		log.Error("appointments load failed", slog.Any("err", err))
		return s
	}
	if !found {
		return s
	}

	var appts []domain.Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		log.Error("appointments parse failed", slog.Any("err", err))
		return s
	}
	s.appts = appts
	log.Info("appointments loaded", slog.Int("count", len(appts)))
	return s
}

// CreateInput carries everything except the fields the store assigns itself
// (id, createdAt, status).
type CreateInput struct {
	ProviderID       string
	ProviderName     string
	ProviderAvatar   string
	ProviderLocation string
	CustomerID       string
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    string
	Services         []string
	ServicePrices    map[string]float64
	TotalPrice       float64
	Date             string
	Time             string
	Duration         int
	Notes            string
}

// Create assigns a fresh id, stamps the creation time, forces the initial
// status to confirmed and persists. Input shape is the caller's
// responsibility; use Book for the validated path.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Appointment{}, err
	}

	appt := domain.Appointment{
		ID:               id.String(),
		ProviderID:       in.ProviderID,
		ProviderName:     in.ProviderName,
		ProviderAvatar:   in.ProviderAvatar,
		ProviderLocation: in.ProviderLocation,
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		CustomerEmail:    in.CustomerEmail,
		Services:         in.Services,
		ServicePrices:    in.ServicePrices,
		TotalPrice:       in.TotalPrice,
		Date:             in.Date,
		Time:             in.Time,
		Duration:         in.Duration,
		Status:           domain.StatusConfirmed,
		CreatedAt:        s.now(),
		Notes:            in.Notes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = append(s.appts, appt)
	s.persistLocked(ctx)

	s.log.Info("appointment created",
		slog.String("id", appt.ID),
		slog.String("provider", appt.ProviderName),
	)
	return appt, nil
}

// BookInput is a customer-initiated booking request against a catalog entry.
type BookInput struct {
	Customer      domain.User
	CustomerName  string
	CustomerPhone string
	Provider      catalog.Barber
	Services      []string
	Date          string
	Time          string
	Notes         string
}

// Book validates the booking, assembles the provider/customer snapshot with
// per-service prices, total price and total duration, and creates the
// appointment.
func (s *Service) Book(ctx context.Context, in BookInput) (domain.Appointment, error) {
	if strings.TrimSpace(in.Date) == "" {
		return domain.Appointment{}, validationError("date is required")
	}
	if strings.TrimSpace(in.Time) == "" {
		return domain.Appointment{}, validationError("time is required")
	}
	if len(in.Services) == 0 {
		return domain.Appointment{}, validationError("at least one service is required")
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = strings.TrimSpace(in.Customer.Name)
	}
	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		phone = strings.TrimSpace(in.Customer.Phone)
	}
	if name == "" {
		return domain.Appointment{}, validationError("customer name is required")
	}
	if phone == "" {
		return domain.Appointment{}, validationError("customer phone is required")
	}

	prices := make(map[string]float64, len(in.Services))
	total := 0.0
	duration := 0
	for _, svc := range in.Services {
		price, ok := in.Provider.Prices[svc]
		if !ok {
			return domain.Appointment{}, validationError("service not offered: " + svc)
		}
		prices[svc] = price
		total += price
		duration += catalog.ServiceDuration(svc)
	}

	return s.Create(ctx, CreateInput{
		ProviderID:       in.Provider.ID,
		ProviderName:     in.Provider.Name,
		ProviderAvatar:   in.Provider.Avatar,
		ProviderLocation: in.Provider.Location,
		CustomerID:       in.Customer.ID,
		CustomerName:     name,
		CustomerPhone:    phone,
		CustomerEmail:    in.Customer.Email,
		Services:         in.Services,
		ServicePrices:    prices,
		TotalPrice:       total,
		Date:             in.Date,
		Time:             in.Time,
		Duration:         duration,
		Notes:            in.Notes,
	})
}

// Cancel transitions an appointment to cancelled and stamps the cancelling
// party, time and optional reason together. It returns store.ErrNotFound for
// an unknown id and store.ErrConflict when the appointment is already in a
// terminal state.
func (s *Service) Cancel(ctx context.Context, id string, by domain.CancelledBy, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return store.ErrNotFound
	}
	if s.appts[i].Status.Terminal() {
		return store.ErrConflict
	}

	at := s.now()
	s.appts[i].Status = domain.StatusCancelled
	s.appts[i].CancelledBy = by
	s.appts[i].CancelledAt = &at
	s.appts[i].CancelReason = reason
	s.persistLocked(ctx)

	s.log.Info("appointment cancelled", slog.String("id", id), slog.String("by", string(by)))
	return nil
}

// Complete transitions an appointment to completed. Same lookup and
// terminal-state rules as Cancel; no cancellation fields are touched.
func (s *Service) Complete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return store.ErrNotFound
	}
	if s.appts[i].Status.Terminal() {
		return store.ErrConflict
	}

	s.appts[i].Status = domain.StatusCompleted
	s.persistLocked(ctx)

	s.log.Info("appointment completed", slog.String("id", id))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return s.appts[i], nil
}

// ListByCustomer returns the customer's appointments, newest-created first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Appointment
	for _, a := range s.appts {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ListByProvider returns the provider's appointments in chronological
// schedule order, ascending by (date, time) regardless of creation order.
// Dates are "2006-01-02" and times "15:04", so lexicographic order is
// chronological.
func (s *Service) ListByProvider(ctx context.Context, providerID string) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Appointment
	for _, a := range s.appts {
		if a.ProviderID == providerID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// CancelledByProviderSince returns the customer's appointments cancelled by
// the provider after the given instant, the feed behind client-side
// cancellation notices.
func (s *Service) CancelledByProviderSince(ctx context.Context, customerID string, since time.Time) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range s.ListByCustomer(ctx, customerID) {
		if a.Status == domain.StatusCancelled &&
			a.CancelledBy == domain.CancelledByProvider &&
			a.CancelledAt != nil && a.CancelledAt.After(since) {
			out = append(out, a)
		}
	}
	return out
}

// UpcomingByProvider returns the provider's schedule from the given day
// onward, excluding cancelled appointments. day is "2006-01-02".
func (s *Service) UpcomingByProvider(ctx context.Context, providerID, day string) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range s.ListByProvider(ctx, providerID) {
		if a.Date >= day && a.Status != domain.StatusCancelled {
			out = append(out, a)
		}
	}
	return out
}

// ExportJSON serializes the whole collection as formatted JSON.
func (s *Service) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appts := s.appts
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return json.MarshalIndent(appts, "", "  ")
}

// ImportJSON fully replaces the collection with the parsed blob (no merge)
// and persists it. A parse failure leaves the collection untouched.
func (s *Service) ImportJSON(ctx context.Context, data []byte) error {
	var appts []domain.Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = appts
	s.persistLocked(ctx)

	s.log.Info("appointments imported", slog.Int("count", len(appts)))
	return nil
}

func (s *Service) indexLocked(id string) int {
	for i, a := range s.appts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the full collection to the slot. Failures are logged
// and swallowed; the in-memory collection stays authoritative.
func (s *Service) persistLocked(ctx context.Context) {
	data, err := json.MarshalIndent(s.appts, "", "  ")
	if err != nil {
		s.log.Error("appointments serialize failed", slog.Any("err", err))
		return
	}
	if err := s.slot.Save(ctx, data); err != nil {
		s.log.Error("appointments save failed", slog.Any("err", err))
	}
}
