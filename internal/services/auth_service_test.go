package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Stsam98/employee-service/internal/auth"
	"github.com/Stsam98/employee-service/internal/models"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user         *models.User
	err          error
	existsResult bool
	existsErr    error
	count        int
	countErr     error
	created      []*models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = len(m.created) + 1
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, models.ErrUserNotFound
	}
	return m.user, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existsResult, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func newTestAuthService(repo *mockUserRepository) *authService {
	tokenGen := auth.NewTokenGenerator("test-secret", 2*time.Hour)
	return NewAuthService(repo, tokenGen, zap.NewNop(), "SeedPass1!")
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		repo          *mockUserRepository
		expectedError error
	}{
		{
			name:     "success",
			username: "newuser",
			password: "Password123!",
			repo:     &mockUserRepository{},
		},
		{
			name:          "empty username",
			username:      "",
			password:      "Password123!",
			repo:          &mockUserRepository{},
			expectedError: models.ErrMissingCredentials,
		},
		{
			name:          "whitespace username",
			username:      "   ",
			password:      "Password123!",
			repo:          &mockUserRepository{},
			expectedError: models.ErrMissingCredentials,
		},
		{
			name:          "empty password",
			username:      "newuser",
			password:      "",
			repo:          &mockUserRepository{},
			expectedError: models.ErrMissingCredentials,
		},
		{
			name:          "duplicate username",
			username:      "taken",
			password:      "Password123!",
			repo:          &mockUserRepository{existsResult: true},
			expectedError: models.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(tt.repo)

			user, err := svc.Register(context.Background(), &models.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, tt.username, user.Username)
			// The stored hash must verify against the plaintext and never equal it
			assert.NotEqual(t, tt.password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &models.User{ID: 3, Username: "testuser", PasswordHash: string(passwordHash)}

	t.Run("success returns a valid token", func(t *testing.T) {
		repo := &mockUserRepository{user: existing}
		svc := newTestAuthService(repo)

		token, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "testuser",
			Password: "Password123!",
		})

		require.NoError(t, err)
		userID, err := auth.NewTokenGenerator("test-secret", 2*time.Hour).Validate(token)
		require.NoError(t, err)
		assert.Equal(t, 3, userID)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		wrongPassword := &mockUserRepository{user: existing}
		unknownUser := &mockUserRepository{}

		svc := newTestAuthService(wrongPassword)
		_, errWrong := svc.Login(context.Background(), &models.LoginRequest{
			Username: "testuser",
			Password: "nope",
		})

		svc = newTestAuthService(unknownUser)
		_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
			Username: "ghost",
			Password: "Password123!",
		})

		assert.ErrorIs(t, errWrong, models.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{user: existing})

		_, err := svc.Login(context.Background(), &models.LoginRequest{})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		svc := newTestAuthService(&mockUserRepository{err: errors.New("db down")})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "testuser",
			Password: "Password123!",
		})

		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestAuthService_Seed(t *testing.T) {
	t.Run("empty table gets the fixed accounts", func(t *testing.T) {
		repo := &mockUserRepository{count: 0}
		svc := newTestAuthService(repo)

		require.NoError(t, svc.Seed(context.Background()))

		require.Len(t, repo.created, len(seedUsernames))
		for i, username := range seedUsernames {
			assert.Equal(t, username, repo.created[i].Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[i].PasswordHash), []byte("SeedPass1!")))
		}
	})

	t.Run("non-empty table is untouched", func(t *testing.T) {
		repo := &mockUserRepository{count: 5}
		svc := newTestAuthService(repo)

		require.NoError(t, svc.Seed(context.Background()))
		assert.Empty(t, repo.created)
	})

	t.Run("count error propagates", func(t *testing.T) {
		repo := &mockUserRepository{countErr: errors.New("db down")}
		svc := newTestAuthService(repo)

		assert.Error(t, svc.Seed(context.Background()))
	})
}
