package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

type userService struct {
	users repository.UserRepository
}

func newUserService(users repository.UserRepository) *userService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
