package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/sanitizer"
	"dogroom/pkg/store"
)

type UserService interface {
	List(ctx context.Context, cursor string, limit int) (*store.Page[model.User], error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, name, avatar string) (model.User, error)
}

type userService struct {
	users *store.Collection[model.User]
	log   *logger.Logger
}

func NewUserService(users *store.Collection[model.User], log *logger.Logger) UserService {
	return &userService{users: users, log: log}
}

func (s *userService) List(_ context.Context, cursor string, limit int) (*store.Page[model.User], error) {
	return s.users.List(cursor, limit)
}

func (s *userService) Get(_ context.Context, id string) (model.User, error) {
	if id == "" {
		return model.User{}, apperrors.InvalidInput("User ID cannot be empty")
	}
	return s.users.Get(id)
}

func (s *userService) Create(_ context.Context, name, avatar string) (model.User, error) {
	name = sanitizer.SanitizeText(name)
	if name == "" {
		return model.User{}, apperrors.InvalidInput("name is required")
	}

	user := model.User{
		ID:     uuid.New().String(),
		Name:   name,
		Avatar: sanitizer.SanitizeURL(avatar),
	}

	user, err := s.users.Create(user)
	if err != nil {
		return model.User{}, err
	}

	s.log.Info("User created", "id", user.ID)
	return user, nil
}
