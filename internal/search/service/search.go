package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"

	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/sanitizer"
	"dogroom/pkg/store"
	"dogroom/pkg/validate"
)

// MaxResults caps how many previews a single search returns.
const MaxResults = 20

const (
	fullServiceMatchBonus = 50
	petSizeMatchBonus     = 25
)

type SearchService interface {
	Search(ctx context.Context, req *model.SearchRequest) ([]model.HostPreview, error)
}

type searchService struct {
	hosts    *store.Collection[model.Host]
	validate *validator.Validate
	log      *logger.Logger
}

func NewSearchService(hosts *store.Collection[model.Host], log *logger.Logger) SearchService {
	return &searchService{
		hosts:    hosts,
		validate: validator.New(),
		log:      log,
	}
}

// Search filters hosts by pet size and required services, scores the
// survivors and returns the top previews sorted by descending score. The
// sort is stable, so hosts with equal scores keep their index order.
func (s *searchService) Search(_ context.Context, req *model.SearchRequest) ([]model.HostPreview, error) {
	req.PetSize = sanitizer.SanitizeTag(req.PetSize)
	req.Services = sanitizer.SanitizeSlice(req.Services, sanitizer.SanitizeTag)

	if err := validate.Struct(s.validate, req); err != nil {
		s.log.Warn("Search validation failed", "error", err)
		return nil, apperrors.Validation("Invalid search input", map[string]any{"error": err.Error()})
	}

	hosts, err := s.hosts.All()
	if err != nil {
		return nil, err
	}

	previews := []model.HostPreview{}
	for _, host := range hosts {
		if req.PetSize != "" && !host.AllowsPetSize(req.PetSize) {
			continue
		}
		if len(req.Services) > 0 && !host.OffersAll(req.Services) {
			continue
		}
		previews = append(previews, preview(host, req))
	}

	sort.SliceStable(previews, func(i, j int) bool {
		return previews[i].Score > previews[j].Score
	})

	if len(previews) > MaxResults {
		previews = previews[:MaxResults]
	}

	s.log.Debug("Search completed",
		"pet_size", req.PetSize,
		"services", req.Services,
		"results", len(previews),
	)
	return previews, nil
}

func preview(host model.Host, req *model.SearchRequest) model.HostPreview {
	score := host.Rating*100 + float64(host.ReviewsCount)
	if len(req.Services) > 0 && host.OffersAll(req.Services) {
		score += fullServiceMatchBonus
	}
	if req.PetSize != "" && host.AllowsPetSize(req.PetSize) {
		score += petSizeMatchBonus
	}

	return model.HostPreview{
		ID:            host.ID,
		Name:          host.Name,
		Avatar:        host.Avatar,
		PricePerNight: host.PricePerNight,
		Rating:        host.Rating,
		Tags:          host.Tags,
		Location:      host.Location.Normalized(),
		Score:         score,
	}
}
