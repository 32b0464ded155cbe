// Package services contains the application services of the RedHub client:
// thin orchestration over the gateway, the session state and the optimistic
// list coordinators. The interactive views talk to these interfaces only.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/logging"
)

// AuthService drives the session lifecycle against the gateway.
//
// Contract:
//   - Login: exchange email/password for a credential and establish the session.
//   - Register: create an account; the caller logs in separately afterwards.
//   - Logout: clear the stored credential and fall back to anonymous.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte, nick, birthday string) error
	Logout(ctx context.Context) error
}

type authService struct {
	gw      api.Gateway
	session *session.State
	log     logging.Logger
}

func NewAuthService(gw api.Gateway, st *session.State, log logging.Logger) AuthService {
	return &authService{gw: gw, session: st, log: log.With("component", "auth")}
}

// Login posts credentials to /login. The response body is the raw credential
// string; establishing the session decodes, validates and persists it.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.gw.PostText(ctx, "/login", models.LoginRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.session.Login(ctx, token); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}

// Register creates a new account. The account id is generated client-side.
func (a *authService) Register(ctx context.Context, email string, password []byte, nick, birthday string) error {
	req := models.RegisterRequest{
		Id:       uuid.New(),
		Email:    email,
		Password: string(password),
		Nick:     nick,
		Birthday: birthday,
	}
	if err := a.gw.Post(ctx, "/register", req, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	a.log.Info(ctx, "account registered", "id", req.Id.String(), "email", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
