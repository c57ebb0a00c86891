package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/eventlane/eventlane-go/internal/crypto"
	"github.com/eventlane/eventlane-go/internal/model"
	"github.com/eventlane/eventlane-go/internal/repository"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("no user found with the email address")
	ErrInvalidCredentials = errors.New("password did not match")
)

// emailPattern requires a local part, an @ and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	store  UserStore
	scheme crypto.PasswordScheme
	secret string
	ttl    time.Duration
}

// NewAuthService creates a new AuthService. The password scheme decides
// how credentials are stored and compared; no other code touches that.
func NewAuthService(store UserStore, scheme crypto.PasswordScheme, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		store:  store,
		scheme: scheme,
		secret: secret,
		ttl:    ttl,
	}
}

// Register validates the submitted info and creates the user account.
// All validation happens before any store write.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" || req.DisplayName == "" || req.AccountCreated.CreatedAt == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	stored, err := s.scheme.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          req.Email,
		Password:       stored,
		DisplayName:    req.DisplayName,
		PhotoURL:       req.PhotoURL,
		AccountCreated: req.AccountCreated,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and issues a session token bound to the email.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, model.UserView, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", model.UserView{}, ErrUserNotFound
		}
		return "", model.UserView{}, err
	}

	if !s.scheme.Verify(req.Password, user.Password) {
		return "", model.UserView{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateSessionToken(user.Email, s.secret, s.ttl)
	if err != nil {
		return "", model.UserView{}, err
	}

	view := model.UserView{
		Email:    user.Email,
		Name:     user.DisplayName,
		PhotoURL: user.PhotoURL,
	}
	return token, view, nil
}

// Profile retrieves the full stored user record for a verified identity.
func (s *AuthService) Profile(ctx context.Context, email string) (*model.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SessionTTL reports the configured session lifetime.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}
