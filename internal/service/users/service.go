package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo UserRepository
	tokens   TokenManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenManager, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и выпускает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: hash,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.GenerateToken(created.ID)
	if err != nil {
		s.logger.Error("Register: failed to generate token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - failed to generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d", created.ID)
	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(created),
	}, nil
}

// Login проверяет учетные данные и выпускает токен
// Не раскрывает, что именно неверно - email или пароль
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		s.logger.Warn("Login: missing email or password")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !s.tokens.CheckPassword(req.Password, user.PasswordHash) {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("Login: failed to generate token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(user),
	}, nil
}

// GetProfile получает профиль пользователя по ID
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// validateRegisterRequest проверяет поля запроса регистрации
func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	digits := countDigits(req.Phone)
	if digits < domain.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d-%d digits",
			ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			ErrInvalidInput, domain.MinPasswordLength)
	}

	return nil
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
