package service

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/sanitizer"
	"dogroom/pkg/store"
	"dogroom/pkg/validate"
)

type ReviewService interface {
	ListByHost(ctx context.Context, hostID string) ([]model.Review, error)
	Create(ctx context.Context, req *model.ReviewRequest) (model.Review, error)
}

type reviewService struct {
	reviews  *store.Collection[model.Review]
	hosts    *store.Collection[model.Host]
	validate *validator.Validate
	log      *logger.Logger
}

func NewReviewService(
	reviews *store.Collection[model.Review],
	hosts *store.Collection[model.Host],
	log *logger.Logger,
) ReviewService {
	return &reviewService{
		reviews:  reviews,
		hosts:    hosts,
		validate: validator.New(),
		log:      log,
	}
}

func (s *reviewService) ListByHost(_ context.Context, hostID string) ([]model.Review, error) {
	if hostID == "" {
		return nil, apperrors.InvalidInput("hostId is required")
	}

	all, err := s.reviews.All()
	if err != nil {
		return nil, err
	}

	out := []model.Review{}
	for _, review := range all {
		if review.HostID == hostID {
			out = append(out, review)
		}
	}
	return out, nil
}

// Create stores the review and folds it into the host's aggregate rating,
// updating the running mean and the review count through the host's atomic
// mutation contract.
func (s *reviewService) Create(_ context.Context, req *model.ReviewRequest) (model.Review, error) {
	req.Comment = sanitizer.SanitizeText(req.Comment)
	if err := validate.Struct(s.validate, req); err != nil {
		s.log.Warn("Review validation failed", "error", err)
		return model.Review{}, apperrors.Validation("Invalid review input", map[string]any{"error": err.Error()})
	}

	hostExists, err := s.hosts.Exists(req.HostID)
	if err != nil {
		return model.Review{}, err
	}
	if !hostExists {
		return model.Review{}, apperrors.NotFoundWithID("host", req.HostID)
	}

	review := model.Review{
		ID:      uuid.New().String(),
		HostID:  req.HostID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
		TS:      time.Now().UnixMilli(),
	}

	review, err = s.reviews.Create(review)
	if err != nil {
		return model.Review{}, err
	}

	if _, err := s.hosts.Mutate(req.HostID, func(h model.Host) (model.Host, error) {
		newCount := h.ReviewsCount + 1
		h.Rating = roundRating((h.Rating*float64(h.ReviewsCount) + float64(review.Rating)) / float64(newCount))
		h.ReviewsCount = newCount
		return h, nil
	}); err != nil {
		// The review itself is stored; a stale aggregate is recoverable.
		s.log.Error("Failed to update host rating aggregate", "host_id", req.HostID, "error", err)
	}

	s.log.Info("Review created", "id", review.ID, "host_id", review.HostID, "rating", review.Rating)
	return review, nil
}

func roundRating(r float64) float64 {
	return math.Round(r*100) / 100
}
