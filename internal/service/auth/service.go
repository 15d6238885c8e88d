// Package auth holds the identity directory and the zero-or-one current
// session identity.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
)

// ErrInvalidCredentials is returned for every login failure. It never
// reveals whether the email, the secret or the role was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an email already present in the
// directory, regardless of role.
var ErrEmailTaken = errors.New("email already registered")

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// Service is the session store: a fixed identity directory seeded with the
// fixture users, plus identities added through Register, and the current
// authenticated identity. No lockout, no rate limiting, no tokens.
type Service struct {
	mu      sync.Mutex
	users   []domain.User
	creds   map[string][]byte // email -> bcrypt hash
	current *domain.User

	log *slog.Logger
}

type seedUser struct {
	user   domain.User
	secret string
}

var seedUsers = []seedUser{
	{
		user: domain.User{
			ID:       "1",
			Name:     "Carlos Mendes",
			Email:    "carlos@barbeiro.com",
			Role:     domain.RoleProvider,
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Location: "Centro, São Paulo",
			Phone:    "(11) 99999-9999",
		},
		secret: "123456",
	},
	{
		user: domain.User{
			ID:     "2",
			Name:   "João Silva",
			Email:  "joao@cliente.com",
			Role:   domain.RoleCustomer,
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Phone:  "(11) 88888-8888",
		},
		secret: "123456",
	},
}

// NewService builds the session store with the fixture directory. The
// fixture secrets are hashed at construction so the directory never holds
// plaintext.
func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		creds: make(map[string][]byte, len(seedUsers)),
		log:   log,
	}
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.secret), bcrypt.DefaultCost)
		if err != nil {
			// bcrypt only fails for invalid cost; the seed cost is fixed.
			panic("auth: seed credential hash: " + err.Error())
		}
		s.users = append(s.users, su.user)
		s.creds[su.user.Email] = hash
	}
	return s
}

// Login authenticates by exact email and role match plus secret
// verification, and sets the current identity on success.
func (s *Service) Login(ctx context.Context, email, secret string, role domain.Role) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *domain.User
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Role == role {
			found = &s.users[i]
			break
		}
	}

	hash, ok := s.creds[email]
	if found == nil || !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	u := *found
	s.current = &u
	s.log.Info("login", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, nil
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
	Phone           string
	Location        string
}

// Register creates a new identity, stores its credential and sets it as the
// current identity; no re-login is needed. A duplicate email fails with
// ErrEmailTaken and creates nothing.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return domain.User{}, validationError("name, email and password are required")
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return domain.User{}, validationError("passwords do not match")
	}
	if len(in.Password) < 6 {
		return domain.User{}, validationError("password must be at least 6 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return domain.User{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     in.Role,
		Phone:    strings.TrimSpace(in.Phone),
		Location: strings.TrimSpace(in.Location),
	}
	s.users = append(s.users, u)
	s.creds[email] = hash

	cur := u
	s.current = &cur
	s.log.Info("registered", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, nil
}

// Logout clears the current identity unconditionally.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the authenticated identity, if any.
func (s *Service) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}
