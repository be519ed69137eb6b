package service

import (
	"context"

	"github.com/google/uuid"

	"dogroom/internal/hosts/validator"
	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

// ReviewView is a review with its author populated.
type ReviewView struct {
	model.Review
	User *model.User `json:"user,omitempty"`
}

// HostDetails is the full host record plus its populated reviews.
type HostDetails struct {
	model.Host
	Reviews []ReviewView `json:"reviews"`
}

type HostService interface {
	List(ctx context.Context, cursor string, limit int) (*store.Page[model.Host], error)
	Get(ctx context.Context, id string) (*HostDetails, error)
	Create(ctx context.Context, host model.Host) (model.Host, error)
}

type hostService struct {
	hosts     *store.Collection[model.Host]
	reviews   *store.Collection[model.Review]
	users     *store.Collection[model.User]
	validator *validator.HostValidator
	log       *logger.Logger
}

func NewHostService(
	hosts *store.Collection[model.Host],
	reviews *store.Collection[model.Review],
	users *store.Collection[model.User],
	hostValidator *validator.HostValidator,
	log *logger.Logger,
) HostService {
	return &hostService{
		hosts:     hosts,
		reviews:   reviews,
		users:     users,
		validator: hostValidator,
		log:       log,
	}
}

func (s *hostService) List(_ context.Context, cursor string, limit int) (*store.Page[model.Host], error) {
	return s.hosts.List(cursor, limit)
}

func (s *hostService) Get(_ context.Context, id string) (*HostDetails, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Host ID cannot be empty")
	}

	host, err := s.hosts.Get(id)
	if err != nil {
		return nil, err
	}

	allReviews, err := s.reviews.All()
	if err != nil {
		return nil, err
	}

	details := &HostDetails{Host: host, Reviews: []ReviewView{}}
	userCache := map[string]*model.User{}
	for _, review := range allReviews {
		if review.HostID != id {
			continue
		}
		details.Reviews = append(details.Reviews, ReviewView{
			Review: review,
			User:   s.lookupUser(userCache, review.UserID),
		})
	}
	return details, nil
}

// Create normalizes and validates the host at the write boundary, so stored
// records always carry finite coordinates and clean tag sets.
func (s *hostService) Create(_ context.Context, host model.Host) (model.Host, error) {
	s.validator.Normalize(&host)
	if err := s.validator.Validate(&host); err != nil {
		s.log.Warn("Host validation failed", "error", err)
		return model.Host{}, apperrors.Validation("Invalid host input", map[string]any{"error": err.Error()})
	}

	if host.ID == "" {
		host.ID = uuid.New().String()
	}

	created, err := s.hosts.Create(host)
	if err != nil {
		return model.Host{}, err
	}

	s.log.Info("Host created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *hostService) lookupUser(cache map[string]*model.User, id string) *model.User {
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
