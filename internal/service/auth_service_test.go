package service

import (
	"context"
	"testing"

	"fleet_manager/internal/model"
	"fleet_manager/internal/utils"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users  []*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestAuthService() (AuthService, *utils.JWTUtil, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtUtil := utils.NewJWTUtil("test-secret", 24)
	return NewAuthService(repo, jwtUtil), jwtUtil, repo
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	svc, jwtUtil, _ := newTestAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "alice", "alice@example.com", "password123", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash, "plaintext must never be stored")

	loggedIn, loginToken, err := svc.Login(ctx, "alice", "password123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	// The token's embedded identity resolves back to the same user
	claims, err := jwtUtil.ValidateToken(loginToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_LoginUniformFailureMessage(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123", "")
	assert.NoError(t, err)

	// Unknown username and wrong password must be indistinguishable
	_, _, errUnknown := svc.Login(ctx, "ghost", "password123")
	_, _, errWrongPw := svc.Login(ctx, "alice", "wrongpassword")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123", "")
	assert.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice", "other@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123", "")
	assert.NoError(t, err)

	_, _, err = svc.Register(ctx, "bob", "alice@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "alice", "alice@example.com", "password123", "admin")
	assert.NoError(t, err)

	got, err := svc.CurrentUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, model.RoleAdmin, got.Role)

	_, err = svc.CurrentUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
