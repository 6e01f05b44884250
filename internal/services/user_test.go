package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"seminarmanager/internal/domain"
)

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		repo     *mockUserRepository
		wantErr  error
	}{
		{
			name:     "success",
			email:    "Jo@Example.com",
			password: "correct-horse",
			repo:     &mockUserRepository{},
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "correct-horse",
			repo:     &mockUserRepository{},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    "jo@example.com",
			password: "short",
			repo:     &mockUserRepository{},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "duplicate email",
			email:    "jo@example.com",
			password: "correct-horse",
			repo:     &mockUserRepository{createErr: domain.ErrDuplicateEmail},
			wantErr:  domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(tt.repo, &mockHasher{}, &mockTokenIssuer{}, time.Hour)
			user, err := svc.SignUp(ctx, tt.email, tt.password, "Jo", "Doe")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "jo@example.com", user.Email)
			require.Equal(t, "hash:salt:"+tt.password, user.PasswordHash)
			require.NotEmpty(t, user.ID)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{usersByEmail: map[string]*domain.User{
		"jo@example.com": {
			ID:           "user-1",
			Email:        "jo@example.com",
			Salt:         "salt",
			PasswordHash: "hash:salt:correct-horse",
		},
	}}
	svc := NewUserService(repo, &mockHasher{}, &mockTokenIssuer{}, time.Hour)

	t.Run("success", func(t *testing.T) {
		token, user, err := svc.Login(ctx, " Jo@Example.com ", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, "token-user-1", token)
		require.Equal(t, "user-1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "jo@example.com", "battery-staple")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "correct-horse")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
