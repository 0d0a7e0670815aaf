package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/book2screen/book2screen/internal/platform/apperr"
	"github.com/book2screen/book2screen/internal/platform/constants"
	"github.com/book2screen/book2screen/internal/platform/sec"
	"github.com/book2screen/book2screen/internal/platform/validate"
	"github.com/book2screen/book2screen/pkg/identifier"
	"github.com/book2screen/book2screen/pkg/uuidv7"
)

// TokenIssuer mints access tokens for established sessions.
type TokenIssuer interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// LoginInput carries the mock login form fields. Only the email is
// inspected; the password is stored but never checked.
type LoginInput struct {
	Email    string
	Password string
	Name     string
}

// Session pairs the active profile with its access token.
type Session struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}

type Service struct {
	store      *Store
	tokens     TokenIssuer
	adminEmail string
	logger     *slog.Logger
}

func NewService(store *Store, tokens TokenIssuer, adminEmail string, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		tokens:     tokens,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Login always succeeds for any well-formed email. The admin role is
// granted exactly when the email equals the reserved administrator
// address; every other address gets a regular user session. A new login
// replaces any existing session wholesale.
func (service *Service) Login(ctx context.Context, input LoginInput) (Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	if err := validator.Err(); err != nil {
		return Session{}, err
	}

	role := sec.RoleUser
	if input.Email == service.adminEmail {
		role = sec.RoleAdmin
	}

	name := input.Name
	if name == "" {
		if role == sec.RoleAdmin {
			name = DefaultAdminName
		} else {
			name = DefaultUserName
		}
	}

	profile := UserProfile{
		ID:             identifier.Must(identifier.PrefixUser),
		Name:           name,
		Email:          input.Email,
		Password:       input.Password,
		Bio:            DefaultBio,
		FavoriteGenres: []string{},
		Role:           string(role),
		AvatarURL:      DefaultAvatarURL,
	}
	service.store.Replace(profile)

	token, err := service.tokens.GenerateAccessToken(profile.ID, profile.Name, profile.Role, constants.SessionTokenTTL)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	service.logger.Info("session_started",
		slog.String("session_id", uuidv7.New()),
		slog.String("user_id", profile.ID),
		slog.String("role", profile.Role),
	)
	return Session{AccessToken: token, User: profile}, nil
}

// Logout ends the session unconditionally; logging out with no active
// session is not an error.
func (service *Service) Logout(ctx context.Context) {
	service.store.Clear()
	service.logger.Info("session_ended")
}

// Profile returns the active profile.
func (service *Service) Profile(ctx context.Context) (UserProfile, error) {
	profile, ok := service.store.Current()
	if !ok {
		return UserProfile{}, apperr.Unauthorized("No active session")
	}
	return profile, nil
}

// UpdateProfile replaces the active profile wholesale with the given
// one. Without an active session the update is silently dropped, and
// the submitted profile is echoed back either way.
func (service *Service) UpdateProfile(ctx context.Context, profile UserProfile) (UserProfile, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, profile.Name).
		Required(FieldEmail, profile.Email).Email(FieldEmail, profile.Email)
	if err := validator.Err(); err != nil {
		return UserProfile{}, err
	}

	if !service.store.Update(profile) {
		service.logger.Warn("profile_update_skipped_no_session")
		return profile, nil
	}

	service.logger.Info("profile_updated", slog.String("user_id", profile.ID))
	return profile, nil
}
