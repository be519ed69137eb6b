package service_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dogroom/internal/reviews/service"
	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

type fixture struct {
	hosts *store.Collection[model.Host]
	svc   service.ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	reviews, err := store.NewCollection[model.Review](s, "review")
	require.NoError(t, err)
	hosts, err := store.NewCollection[model.Host](s, "host")
	require.NoError(t, err)

	_, err = hosts.Create(model.Host{
		ID:              "h1",
		Name:            "Test Host",
		Rating:          4.0,
		ReviewsCount:    3,
		Tags:            []string{model.ServiceBoarding},
		PricePerNight:   50,
		AllowedPetSizes: []string{model.PetSizeSmall},
	})
	require.NoError(t, err)

	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	return &fixture{hosts: hosts, svc: service.NewReviewService(reviews, hosts, log)}
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	f := newFixture(t)

	review, err := f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "h1",
		UserID:  "u1",
		Rating:  5,
		Comment: "Wonderful stay, very attentive.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, review.ID)
	require.NotZero(t, review.TS)

	host, err := f.hosts.Get("h1")
	require.NoError(t, err)
	require.Equal(t, 4, host.ReviewsCount)
	// (4.0*3 + 5) / 4 = 4.25
	require.Equal(t, 4.25, host.Rating)
}

func TestCreateReviewRoundsRating(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "h1",
		UserID:  "u1",
		Rating:  3,
		Comment: "Fine.",
	})
	require.NoError(t, err)

	// (4.0*3 + 3) / 4 = 3.75, already two decimals; add one more.
	_, err = f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "h1",
		UserID:  "u2",
		Rating:  4,
		Comment: "Good.",
	})
	require.NoError(t, err)

	host, err := f.hosts.Get("h1")
	require.NoError(t, err)
	// (3.75*4 + 4) / 5 = 3.8
	require.Equal(t, 3.8, host.Rating)
	require.Equal(t, 5, host.ReviewsCount)
}

func TestCreateReviewUnknownHost(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "missing",
		UserID:  "u1",
		Rating:  5,
		Comment: "Great.",
	})
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestCreateReviewValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "h1",
		UserID:  "u1",
		Rating:  6,
		Comment: "Too good to be true.",
	})
	require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	_, err = f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID: "h1",
		UserID: "u1",
		Rating: 4,
	})
	require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestCreateReviewSanitizesComment(t *testing.T) {
	f := newFixture(t)

	review, err := f.svc.Create(context.Background(), &model.ReviewRequest{
		HostID:  "h1",
		UserID:  "u1",
		Rating:  4,
		Comment: "  lovely   place \n indeed ",
	})
	require.NoError(t, err)
	require.Equal(t, "lovely place indeed", review.Comment)
}

func TestListByHost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, &model.ReviewRequest{
			HostID:  "h1",
			UserID:  "u1",
			Rating:  4,
			Comment: "Solid.",
		})
		require.NoError(t, err)
	}

	reviews, err := f.svc.ListByHost(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	reviews, err = f.svc.ListByHost(ctx, "other")
	require.NoError(t, err)
	require.Empty(t, reviews)

	_, err = f.svc.ListByHost(ctx, "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
