package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	created := *user
	created.ID = f.nextID
	f.nextID++
	f.byEmail[created.Email] = &created
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

// fakeTokenManager хеширует пароль обратимым префиксом вместо bcrypt
type fakeTokenManager struct{}

func (fakeTokenManager) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeTokenManager) CheckPassword(password, hash string) bool {
	return hash == "hash:"+password
}

func (fakeTokenManager) GenerateToken(userID int64) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeUserRepo) *Service {
	return NewService(repo, fakeTokenManager{}, nopLogger{})
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Ivan Petrov",
		Email:    "ivan@example.com",
		Phone:    "+7 (900) 123-45-67",
		Password: "s3cret-password",
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, "ivan@example.com", resp.User.Email)
	assert.Equal(t, "Ivan Petrov", resp.User.Name)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	req := validRegisterRequest()
	req.Email = "  Ivan@Example.COM "

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", resp.User.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	tests := []struct {
		name   string
		mutate func(req *models.RegisterRequest)
	}{
		{"empty name", func(r *models.RegisterRequest) { r.Name = "  " }},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"email without at sign", func(r *models.RegisterRequest) { r.Email = "ivan.example.com" }},
		{"phone too short", func(r *models.RegisterRequest) { r.Phone = "12345" }},
		{"phone too long", func(r *models.RegisterRequest) { r.Phone = "1234567890123456" }},
		{"password too short", func(r *models.RegisterRequest) { r.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ivan@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Password: "s3cret-password"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc := newService(newFakeUserRepo())

	created, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", profile.Email)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
