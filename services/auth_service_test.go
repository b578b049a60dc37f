package services

import (
	"context"
	"testing"

	"github.com/Dosada05/esports-db/models"
	"github.com/Dosada05/esports-db/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return repositories.ErrUserUsernameConflict
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

type fakeTokenRepo struct {
	tokens map[int]string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[int]string)}
}

func (f *fakeTokenRepo) GetOrCreate(_ context.Context, userID int, newKey string) (*models.AuthToken, error) {
	if key, ok := f.tokens[userID]; ok {
		return &models.AuthToken{Key: key, UserID: userID}, nil
	}
	f.tokens[userID] = newKey
	return &models.AuthToken{Key: newKey, UserID: userID}, nil
}

func (f *fakeTokenRepo) GetUserByKey(_ context.Context, key string) (*models.User, error) {
	return nil, repositories.ErrTokenNotFound
}

func (f *fakeTokenRepo) DeleteByUser(_ context.Context, userID int) error {
	delete(f.tokens, userID)
	return nil
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "  ", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, _, err = svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())

	user, token, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, token, 40)
	assert.Empty(t, user.PasswordHash, "hash must not leak out of the service")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo())

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "different1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := NewAuthService(userRepo, tokenRepo)

	_, registerToken, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	t.Run("reuses existing token", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, registerToken, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "wrongpass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), LoginInput{Username: "bob", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, userRepo.Create(context.Background(), &models.User{
			Username:     "sleepy",
			PasswordHash: string(hash),
			IsActive:     false,
		}))

		_, _, err = svc.Login(context.Background(), LoginInput{Username: "sleepy", Password: "secret123"})
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := NewAuthService(userRepo, tokenRepo)

	user, _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user.ID))
	assert.Empty(t, tokenRepo.tokens)
}
