package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
)

// UsersService manages the account list for user administration. Deletion
// is optimistic.
type UsersService interface {
	Refresh(ctx context.Context) error
	List() []models.User
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type usersService struct {
	gw   api.Gateway
	list *optimistic.List[models.User]
}

func NewUsersService(gw api.Gateway, notifier *optimistic.Notifier) UsersService {
	return &usersService{
		gw:   gw,
		list: optimistic.NewList(func(u models.User) string { return u.Id.String() }, notifier),
	}
}

func (s *usersService) Refresh(ctx context.Context) error {
	var users []models.User
	if err := s.gw.Get(ctx, "/users", &users); err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}
	s.list.Replace(users)
	return nil
}

func (s *usersService) List() []models.User {
	return s.list.Items()
}

func (s *usersService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.gw.Get(ctx, "/users/"+id.String(), &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

func (s *usersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.list.Remove(ctx, "delete user", id.String(),
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/users/"+id.String(), nil)
		})
}
