// Copyright (c) 2026 Book2Screen. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a generated token can be verified
and carries the original claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "book2screen.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("usr-1", "Book Lover", "user", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "usr-1", claims.UserID)
	assert.Equal(t, "Book Lover", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "book2screen.app", claims.Issuer)
}

/*
TestTokenService_Expired verifies that expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "book2screen.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("usr-1", "Book Lover", "user", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that tokens signed with a different
secret fail verification.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-a", "book2screen.app")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "book2screen.app")
	require.NoError(t, err)

	token, err := signer.GenerateAccessToken("usr-1", "Book Lover", "admin", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_EmptySecret verifies that the constructor rejects an empty key.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "book2screen.app")
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast covers the role hierarchy comparisons.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_user", sec.RoleAdmin, sec.RoleUser, true},
		{"user_fails_admin", sec.RoleUser, sec.RoleAdmin, false},
		{"user_meets_user", sec.RoleUser, sec.RoleUser, true},
		{"unknown_fails_user", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.target))
		})
	}
}
