package service

import (
	"strings"

	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries a customer signup request.
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// UserLoginResult is a successful customer login.
type UserLoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserAuthService registers and authenticates customer accounts.
type UserAuthService struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUserAuthService creates the customer auth service.
func NewUserAuthService(users repository.UserRepository, jwtCfg config.JWTConfig) *UserAuthService {
	return &UserAuthService{users: users, jwtCfg: jwtCfg}
}

// Register creates a customer account. The phone number is the login
// identifier and must be unused.
func (s *UserAuthService) Register(in RegisterInput) (*models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.FirstName == "" || in.LastName == "" || in.Phone == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.users.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	logger.Infow("user_registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a customer by phone and password and issues a token.
func (s *UserAuthService) Login(phone, password string) (*UserLoginResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := IssueToken(s.jwtCfg, user.ID, TokenRoleUser)
	if err != nil {
		return nil, err
	}

	logger.Infow("user_logged_in", "user_id", user.ID)
	return &UserLoginResult{Token: token, User: user}, nil
}

// GetUser returns a customer account.
func (s *UserAuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
