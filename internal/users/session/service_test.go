package session_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/platform/apperr"
	"github.com/book2screen/book2screen/internal/users/session"
)

// stubIssuer returns a fixed token and records the role it signed.
type stubIssuer struct {
	signedRole string
}

func (s *stubIssuer) GenerateAccessToken(_, _, role string, _ time.Duration) (string, error) {
	s.signedRole = role
	return "stub-token", nil
}

const adminEmail = "admin@gmail.com"

func newSessionService() (*session.Service, *session.Store, *stubIssuer) {
	store := session.NewStore()
	issuer := &stubIssuer{}
	service := session.NewService(store, issuer, adminEmail, slog.Default())
	return service, store, issuer
}

/*
TestService_Login_RoleAssignment verifies that exactly the reserved email gets
the admin role, unconditionally, and everyone else is a user.
*/
func TestService_Login_RoleAssignment(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		expectedRole string
	}{
		{"reserved_admin_email", adminEmail, "admin"},
		{"regular_email", "alice@example.com", "user"},
		{"admin_like_but_different", "admin@example.com", "user"},
		{"case_differs_from_reserved", "Admin@gmail.com", "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, issuer := newSessionService()

			established, err := service.Login(context.Background(), session.LoginInput{
				Email:    tt.email,
				Password: "anything at all",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRole, established.User.Role)
			assert.Equal(t, tt.expectedRole, issuer.signedRole)
			assert.Equal(t, "stub-token", established.AccessToken)
		})
	}
}

/*
TestService_Login_Defaults checks the profile defaults for blank form fields.
*/
func TestService_Login_Defaults(t *testing.T) {
	service, _, _ := newSessionService()
	ctx := context.Background()

	admin, err := service.Login(ctx, session.LoginInput{Email: adminEmail})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultAdminName, admin.User.Name)
	assert.Equal(t, session.DefaultBio, admin.User.Bio)
	assert.Equal(t, session.DefaultAvatarURL, admin.User.AvatarURL)
	assert.Empty(t, admin.User.FavoriteGenres)
	assert.True(t, strings.HasPrefix(admin.User.ID, "usr-"))

	reader, err := service.Login(ctx, session.LoginInput{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultUserName, reader.User.Name)

	named, err := service.Login(ctx, session.LoginInput{Email: "alice@example.com", Name: "Alice M."})
	require.NoError(t, err)
	assert.Equal(t, "Alice M.", named.User.Name)
}

/*
TestService_Login_ReplacesExistingSession verifies the single process-wide
session: a second login displaces the first wholesale.
*/
func TestService_Login_ReplacesExistingSession(t *testing.T) {
	service, store, _ := newSessionService()
	ctx := context.Background()

	_, err := service.Login(ctx, session.LoginInput{Email: adminEmail})
	require.NoError(t, err)

	second, err := service.Login(ctx, session.LoginInput{Email: "bob@example.com"})
	require.NoError(t, err)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, second.User.ID, current.ID)
	assert.Equal(t, "user", current.Role)
}

/*
TestService_Login_RejectsMalformedEmail is the only way a login can fail.
*/
func TestService_Login_RejectsMalformedEmail(t *testing.T) {
	service, store, _ := newSessionService()

	_, err := service.Login(context.Background(), session.LoginInput{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, ok := store.Current()
	assert.False(t, ok)
}

/*
TestService_Logout clears the session and tolerates an empty store.
*/
func TestService_Logout(t *testing.T) {
	service, store, _ := newSessionService()
	ctx := context.Background()

	service.Logout(ctx) // no session yet, still fine

	_, err := service.Login(ctx, session.LoginInput{Email: "alice@example.com"})
	require.NoError(t, err)
	service.Logout(ctx)

	_, ok := store.Current()
	assert.False(t, ok)

	_, err = service.Profile(ctx)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_UpdateProfile covers the wholesale replace and the silent no-op
without a session.
*/
func TestService_UpdateProfile(t *testing.T) {
	service, store, _ := newSessionService()
	ctx := context.Background()

	// No session: the update is dropped but not an error.
	_, err := service.UpdateProfile(ctx, session.UserProfile{Name: "Ghost", Email: "ghost@example.com"})
	require.NoError(t, err)
	_, ok := store.Current()
	assert.False(t, ok)

	established, err := service.Login(ctx, session.LoginInput{Email: "alice@example.com"})
	require.NoError(t, err)

	updated := established.User
	updated.Bio = "Reads two books a week."
	updated.FavoriteGenres = []string{"Sci-Fi", "Thriller"}

	_, err = service.UpdateProfile(ctx, updated)
	require.NoError(t, err)

	current, err := service.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Reads two books a week.", current.Bio)
	assert.Equal(t, []string{"Sci-Fi", "Thriller"}, current.FavoriteGenres)
}
