package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

const (
	MinPasswordLen = 8

	// DefaultRole is assigned when registration supplies no role. Role is
	// client-supplied and unverified; normalizeRole is the single seam to
	// harden later.
	DefaultRole = "employee"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the credential store consumed by AuthService.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// TokenIssuer mints a signed access token for the given identity.
type TokenIssuer interface {
	Issue(userID int64, name, role string) (string, error)
}

type AuthService struct {
	Users  UserStore
	Tokens TokenIssuer
}

func NewAuthService(u UserStore, t TokenIssuer) *AuthService {
	return &AuthService{Users: u, Tokens: t}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

func normalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return DefaultRole
	}
	return role
}

// Register hashes the password and stores a new user. The plaintext is never
// persisted or logged. A taken email yields ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (int64, error) {
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	id, err := s.Users.Create(ctx, strings.TrimSpace(name), email, string(hash), normalizeRole(role))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return id, nil
}

// Login verifies credentials and mints an access token embedding the user's
// id, name and role. Unknown email and bad password are distinguishable
// outcomes, matching the system's original behaviour.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}
	token, err := s.Tokens.Issue(u.ID, u.Name, u.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	// zero out password hash before returning
	u.PasswordHash = ""
	return token, u, nil
}
