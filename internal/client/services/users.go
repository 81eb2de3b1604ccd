package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/api"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/session"
)

// ProfileUpdate carries the fields the user wants to change; nil fields are
// left untouched by the server.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UserService updates the current user's profile.
type UserService interface {
	// UpdateProfile sends the changed fields and, on success, replaces the
	// session user wholesale with the server's view.
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error)
}

type userService struct {
	client  api.Client
	session *session.Store
}

func NewUserService(client api.Client, session *session.Store) UserService {
	return &userService{client: client, session: session}
}

func (s *userService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	if err := validateProfileUpdate(update); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateProfile(ctx, user.ID, models.UpdateProfileRequest{
		Username: update.Username,
		Email:    update.Email,
		Password: update.Password,
	})
	if err != nil {
		return nil, err
	}

	s.session.SetCurrentUser(*updated)
	return updated, nil
}

func validateProfileUpdate(update ProfileUpdate) error {
	errs := validation.Errors{}
	if update.Email != nil {
		errs["email"] = validation.Validate(*update.Email, validation.Required.Error("L'email est requis"), is.Email.Error("Email invalide"))
	}
	if update.Username != nil {
		errs["username"] = validation.Validate(*update.Username, validation.Required.Error("Le nom d'utilisateur est requis"))
	}
	if update.Password != nil {
		errs["password"] = ValidatePassword(*update.Password)
	}
	return errs.Filter()
}
