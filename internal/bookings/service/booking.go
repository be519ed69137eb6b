package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dogroom/internal/bookings/validator"
	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/events"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

// BookingView is a booking with its host and user populated for display.
type BookingView struct {
	model.Booking
	Host *model.Host `json:"host,omitempty"`
	User *model.User `json:"user,omitempty"`
}

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (model.Booking, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	List(ctx context.Context, userID, hostID string) ([]BookingView, error)
	Accept(ctx context.Context, id string) (model.Booking, error)
	Reject(ctx context.Context, id string) (model.Booking, error)
	Cancel(ctx context.Context, id string) (model.Booking, error)
}

type bookingService struct {
	bookings  *store.Collection[model.Booking]
	hosts     *store.Collection[model.Host]
	users     *store.Collection[model.User]
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	bookings *store.Collection[model.Booking],
	hosts *store.Collection[model.Host],
	users *store.Collection[model.User],
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		hosts:     hosts,
		users:     users,
		validator: bookingValidator,
		publisher: publisher,
		log:       log,
	}
}

// Create checks the candidate interval against the host's active bookings
// and inserts the booking in the same store transaction, so two concurrent
// requests for overlapping dates cannot both succeed.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (model.Booking, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.log.Warn("Booking validation failed", "error", err)
		return model.Booking{}, apperrors.Validation("Invalid booking input", map[string]any{"error": err.Error()})
	}

	if req.From <= 0 || req.To <= 0 || req.From >= req.To {
		return model.Booking{}, apperrors.InvalidRange("booking range must satisfy from < to")
	}

	hostExists, err := s.hosts.Exists(req.HostID)
	if err != nil {
		return model.Booking{}, err
	}
	if !hostExists {
		return model.Booking{}, apperrors.NotFoundWithID("host", req.HostID)
	}

	booking := model.Booking{
		ID:        uuid.New().String(),
		HostID:    req.HostID,
		UserID:    req.UserID,
		From:      req.From,
		To:        req.To,
		Status:    model.BookingPending,
		CreatedAt: time.Now().UnixMilli(),
	}

	booking, err = s.bookings.CreateIf(booking, func(existing []model.Booking) error {
		for _, b := range existing {
			if b.HostID != req.HostID || !b.Active() {
				continue
			}
			if b.Overlaps(req.From, req.To) {
				return apperrors.Conflict("Dates are not available. Please select a different range.")
			}
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}

	s.publish(ctx, events.BookingCreated, booking)
	s.log.Info("Booking created",
		"id", booking.ID,
		"host_id", booking.HostID,
		"user_id", booking.UserID,
		"from", booking.From,
		"to", booking.To,
	)
	return booking, nil
}

func (s *bookingService) GetByID(_ context.Context, id string) (model.Booking, error) {
	if id == "" {
		return model.Booking{}, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	return s.bookings.Get(id)
}

// List returns bookings filtered by user and/or host, each populated with
// its host and user records.
func (s *bookingService) List(_ context.Context, userID, hostID string) ([]BookingView, error) {
	all, err := s.bookings.All()
	if err != nil {
		return nil, err
	}

	views := []BookingView{}
	hostCache := map[string]*model.Host{}
	userCache := map[string]*model.User{}
	for _, b := range all {
		if userID != "" && b.UserID != userID {
			continue
		}
		if hostID != "" && b.HostID != hostID {
			continue
		}
		views = append(views, BookingView{
			Booking: b,
			Host:    s.lookupHost(hostCache, b.HostID),
			User:    s.lookupUser(userCache, b.UserID),
		})
	}
	return views, nil
}

func (s *bookingService) Accept(ctx context.Context, id string) (model.Booking, error) {
	return s.setStatus(ctx, id, model.BookingConfirmed, events.BookingConfirmed)
}

func (s *bookingService) Reject(ctx context.Context, id string) (model.Booking, error) {
	return s.setStatus(ctx, id, model.BookingRejected, events.BookingRejected)
}

func (s *bookingService) Cancel(ctx context.Context, id string) (model.Booking, error) {
	return s.setStatus(ctx, id, model.BookingCancelled, events.BookingCancelled)
}

// setStatus applies the lifecycle rules atomically: pending may move to any
// terminal status, confirmed may still be cancelled, everything else is a
// conflict.
func (s *bookingService) setStatus(ctx context.Context, id, status, eventType string) (model.Booking, error) {
	if id == "" {
		return model.Booking{}, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.bookings.Mutate(id, func(b model.Booking) (model.Booking, error) {
		if !allowedTransition(b.Status, status) {
			return b, apperrors.Conflict(fmt.Sprintf("booking cannot change from %s to %s", b.Status, status))
		}
		b.Status = status
		return b, nil
	})
	if err != nil {
		return model.Booking{}, err
	}

	s.publish(ctx, eventType, booking)
	s.log.Info("Booking status updated", "id", id, "status", status)
	return booking, nil
}

func allowedTransition(from, to string) bool {
	switch from {
	case model.BookingPending:
		return to == model.BookingConfirmed || to == model.BookingRejected || to == model.BookingCancelled
	case model.BookingConfirmed:
		return to == model.BookingCancelled
	default:
		return false
	}
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking model.Booking) {
	if err := s.publisher.BookingChanged(ctx, eventType, booking); err != nil {
		s.log.Warn("Failed to publish booking event", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) lookupHost(cache map[string]*model.Host, id string) *model.Host {
	if h, ok := cache[id]; ok {
		return h
	}
	host, err := s.hosts.Get(id)
	if err != nil {
		cache[id] = nil
		return nil
	}
	cache[id] = &host
	return &host
}

func (s *bookingService) lookupUser(cache map[string]*model.User, id string) *model.User {
	if u, ok := cache[id]; ok {
		return u
	}
	user, err := s.users.Get(id)
	if err != nil {
		cache[id] = nil
		return nil
	}
	cache[id] = &user
	return &user
}
