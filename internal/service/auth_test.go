package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventlane/eventlane-go/internal/crypto"
	"github.com/eventlane/eventlane-go/internal/model"
	"github.com/eventlane/eventlane-go/internal/repository"
)

type fakeUserStore struct {
	users   map[string]model.User
	creates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	f.creates++
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, crypto.PlainScheme{}, "test-secret", 2*time.Hour)
}

func validRegistration() model.RegisterRequest {
	return model.RegisterRequest{
		Email:          "user@example.com",
		Password:       "secret123",
		DisplayName:    "Test User",
		AccountCreated: model.AccountCreated{CreatedAt: "2024-01-01T10:00:00Z"},
	}
}

func TestRegister_MissingFields(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	cases := []struct {
		name   string
		mutate func(*model.RegisterRequest)
	}{
		{"email", func(r *model.RegisterRequest) { r.Email = "" }},
		{"password", func(r *model.RegisterRequest) { r.Password = "" }},
		{"displayName", func(r *model.RegisterRequest) { r.DisplayName = "" }},
		{"createdAt", func(r *model.RegisterRequest) { r.AccountCreated.CreatedAt = "" }},
	}

	for _, tc := range cases {
		req := validRegistration()
		tc.mutate(&req)

		_, err := svc.Register(context.Background(), req)
		if err != ErrMissingFields {
			t.Errorf("missing %s: expected ErrMissingFields, got %v", tc.name, err)
		}
	}

	if store.creates != 0 {
		t.Errorf("expected no store writes, got %d", store.creates)
	}
}

func TestRegister_InvalidEmailFormat(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	for _, email := range []string{"no-at-sign", "no-dot@domain", "spaces in@local.tld", "@missing.local"} {
		req := validRegistration()
		req.Email = email

		_, err := svc.Register(context.Background(), req)
		if err != ErrInvalidEmail {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestRegister_ShortPasswordRejectedBeforeWrite(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	req := validRegistration()
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	if err != ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if store.creates != 0 {
		t.Errorf("expected no store writes, got %d", store.creates)
	}
}

func TestRegister_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	user, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.ID.IsZero() {
		t.Error("expected an assigned id on the created user")
	}
	if user.Password != "secret123" {
		t.Errorf("expected password stored verbatim under the plain scheme, got %q", user.Password)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), validRegistration())
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(store.users) != 1 {
		t.Errorf("expected 1 stored user after duplicate attempt, got %d", len(store.users))
	}
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	req := validRegistration()
	req.PhotoURL = "https://example.com/p.png"
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	token, view, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != req.Email {
		t.Errorf("token identity = %q, want %q", claims.Email, req.Email)
	}

	if view.Email != req.Email || view.Name != req.DisplayName || view.PhotoURL != req.PhotoURL {
		t.Errorf("unexpected user view: %+v", view)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	token, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Error("expected no token on failed login")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, _, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfile(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := svc.Profile(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	if user.DisplayName != "Test User" {
		t.Errorf("unexpected display name %q", user.DisplayName)
	}

	if _, err := svc.Profile(context.Background(), "gone@example.com"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound for missing user, got %v", err)
	}
}
