package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/internal/domain"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/internal/repository"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/config"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/crypto"
	jwtpkg "github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/jwt"
)

type userRepoMock struct {
	createFunc     func(ctx context.Context, user *domain.User) error
	getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	getByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
}

func (m *userRepoMock) CreateUser(ctx context.Context, user *domain.User) error {
	if m.createFunc == nil {
		return errors.New("unexpected CreateUser call")
	}
	return m.createFunc(ctx, user)
}

func (m *userRepoMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByIDFunc(ctx, id)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.APIConfig {
	return config.APIConfig{
		JWTSecret:  "service-test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func validSignup() SignupInput {
	return SignupInput{
		Name:            "A",
		Email:           "a@b.com",
		TargetRole:      "Software Engineer",
		ExperienceLevel: "Fresher",
		Password:        "abcdef",
	}
}

func TestSignupRegistersUser(t *testing.T) {
	var stored *domain.User
	repo := &userRepoMock{
		createFunc: func(_ context.Context, user *domain.User) error {
			stored = user
			return nil
		},
	}
	svc := New(repo, newLogger(), testConfig())

	in := validSignup()
	in.Email = " A@B.com "

	user, token, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if stored == nil {
		t.Fatalf("expected user persisted")
	}
	if user.Email != "a@b.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if string(user.PasswordHash) == "abcdef" {
		t.Fatalf("password must not be stored in plaintext")
	}
	if err := crypto.ComparePassword(user.PasswordHash, "abcdef"); err != nil {
		t.Fatalf("stored hash must verify the original password: %v", err)
	}
	claims, err := jwtpkg.Parse(token, testConfig().JWTSecret)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token bound to %q, want %q", claims.UserID, user.ID)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	cases := map[string]func(*SignupInput){
		"name":            func(in *SignupInput) { in.Name = "" },
		"email":           func(in *SignupInput) { in.Email = "  " },
		"targetRole":      func(in *SignupInput) { in.TargetRole = "" },
		"experienceLevel": func(in *SignupInput) { in.ExperienceLevel = "" },
		"password":        func(in *SignupInput) { in.Password = "" },
	}
	for name, mutate := range cases {
		in := validSignup()
		mutate(&in)
		_, _, err := svc.Signup(context.Background(), in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("missing %s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	for _, email := range []string{"plain", "a@b", "a@b.", "@b.com", "a b@c.com"} {
		in := validSignup()
		in.Email = email
		_, _, err := svc.Signup(context.Background(), in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("email %q: expected ValidationError, got %v", email, err)
		}
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	in := validSignup()
	in.Password = "abcde"
	_, _, err := svc.Signup(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := &userRepoMock{
		getByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "existing", Email: email}, nil
		},
	}
	svc := New(repo, newLogger(), testConfig())

	if _, _, err := svc.Signup(context.Background(), validSignup()); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSignupDuplicateEmailInsertRace(t *testing.T) {
	// Pre-check passes, but a concurrent signup wins the insert and the
	// store's unique constraint fires.
	repo := &userRepoMock{
		createFunc: func(_ context.Context, _ *domain.User) error {
			return repository.ErrDuplicateEmail
		},
	}
	svc := New(repo, newLogger(), testConfig())

	if _, _, err := svc.Signup(context.Background(), validSignup()); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSignupStoreFailureIsInternal(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &userRepoMock{
		createFunc: func(_ context.Context, _ *domain.User) error {
			return storeErr
		},
	}
	svc := New(repo, newLogger(), testConfig())

	_, _, err := svc.Signup(context.Background(), validSignup())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	var verr *ValidationError
	if errors.As(err, &verr) || errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store failure must not masquerade as a user-facing kind: %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := crypto.HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &userRepoMock{
		getByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			if email != "a@b.com" {
				t.Fatalf("expected normalized lookup, got %q", email)
			}
			return &domain.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := New(repo, newLogger(), testConfig())

	user, token, err := svc.Login(context.Background(), " A@B.com ", "abcdef")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %q", user.ID)
	}
	claims, err := jwtpkg.Parse(token, testConfig().JWTSecret)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("token bound to %q, want user-1", claims.UserID)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	for _, c := range []struct{ email, password string }{
		{"", "abcdef"},
		{"a@b.com", ""},
		{"  ", "abcdef"},
	} {
		_, _, err := svc.Login(context.Background(), c.email, c.password)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("email=%q password=%q: expected ValidationError, got %v", c.email, c.password, err)
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := crypto.HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &userRepoMock{
		getByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			if email == "a@b.com" {
				return &domain.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := New(repo, newLogger(), testConfig())

	_, _, wrongPassword := svc.Login(context.Background(), "a@b.com", "wrong")
	_, _, unknownEmail := svc.Login(context.Background(), "nope@b.com", "x")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure paths must be indistinguishable: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthorizeRoundTrip(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	token, err := jwtpkg.Generate("user-1", testConfig().JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.Authorize(token)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %q", claims.UserID)
	}
}

func TestAuthorizeRejectsExpired(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	token, err := jwtpkg.Generate("user-1", testConfig().JWTSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Authorize(token); !errors.Is(err, jwtpkg.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestAuthorizeRejectsEmptyToken(t *testing.T) {
	svc := New(&userRepoMock{}, newLogger(), testConfig())

	if _, err := svc.Authorize("   "); !errors.Is(err, jwtpkg.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
