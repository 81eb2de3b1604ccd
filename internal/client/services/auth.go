// Package services contains the application services of the MDD client:
// credentialing, topics, subscriptions, posts, comments and profile. They
// orchestrate the REST client and the session store; terminal concerns stay
// in the cli package.
package services

import (
	"context"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// AuthService performs the two credentialing operations and bootstraps the
// session from their result.
//
// Contract:
//   - Register: create an account, then adopt the returned token.
//   - Login: authenticate by username or email, then adopt the returned token.
//   - Logout: drop the session and the stored token.
//
// On success the session is always re-derived from the returned token, never
// from the response's identity fields.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, session *session.Store) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return nil, err
	}

	resp, err := a.client.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return a.session.AcceptToken(ctx, resp.Token)
}

func (a *authService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if err := validateLogin(identifier, password); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, models.LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return nil, err
	}

	return a.session.AcceptToken(ctx, resp.Token)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
