package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DevWithNeha/payroll-system/internal/middleware"
	"github.com/DevWithNeha/payroll-system/internal/model"
)

// --- fakes ---

type fakeUserStore struct {
	createID   int64
	createErr  error
	gotName    string
	gotEmail   string
	gotHash    string
	gotRole    string
	createdCnt int

	getOut *model.User
	getErr error
}

func (f *fakeUserStore) Create(ctx context.Context, name, email, passwordHash, role string) (int64, error) {
	f.createdCnt++
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.gotName, f.gotEmail, f.gotHash, f.gotRole = name, email, passwordHash, role
	return f.createID, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Issue(userID int64, name, role string) (string, error) {
	return f.token, f.err
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
}

// --- register ---

func TestRegister_HashesAndDefaultsRole(t *testing.T) {
	store := &fakeUserStore{createID: 5}
	s := NewAuthService(store, &fakeIssuer{token: "t"})

	id, err := s.Register(context.Background(), " Neha ", "neha@example.com", "supersafe1", "")
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
	require.Equal(t, "Neha", store.gotName)
	require.Equal(t, "employee", store.gotRole)

	// stored value is a bcrypt hash of the password, never the plaintext
	require.NotEqual(t, "supersafe1", store.gotHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.gotHash), []byte("supersafe1")))
}

func TestRegister_KeepsExplicitRole(t *testing.T) {
	store := &fakeUserStore{createID: 1}
	s := NewAuthService(store, &fakeIssuer{})

	_, err := s.Register(context.Background(), "A", "a@example.com", "supersafe1", "admin")
	require.NoError(t, err)
	require.Equal(t, "admin", store.gotRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{createErr: uniqueViolation()}
	s := NewAuthService(store, &fakeIssuer{})

	_, err := s.Register(context.Background(), "A", "a@example.com", "supersafe1", "")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_Validation(t *testing.T) {
	s := NewAuthService(&fakeUserStore{}, &fakeIssuer{})

	_, err := s.Register(context.Background(), "A", "not-an-email", "supersafe1", "")
	require.Error(t, err)

	_, err = s.Register(context.Background(), "A", "a@example.com", "short", "")
	require.Error(t, err)
}

func TestRegister_StoreFailureClassified(t *testing.T) {
	store := &fakeUserStore{createErr: errors.New("connection refused")}
	s := NewAuthService(store, &fakeIssuer{})

	_, err := s.Register(context.Background(), "A", "a@example.com", "supersafe1", "")
	require.ErrorIs(t, err, ErrDataSource)
	require.NotContains(t, err.Error(), "supersafe1")
}

// --- login ---

func storedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &model.User{ID: 9, Name: "Neha", Email: "neha@example.com", PasswordHash: string(hash), Role: "employee"}
}

func TestLogin_Success_TokenCarriesIdentity(t *testing.T) {
	codec := middleware.NewTokenCodec("test-secret", 10*time.Hour)
	store := &fakeUserStore{getOut: storedUser(t, "correct horse")}
	s := NewAuthService(store, codec)

	token, user, err := s.Login(context.Background(), "neha@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, int64(9), user.ID)
	require.Empty(t, user.PasswordHash)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(9), claims.UserID)
	require.Equal(t, "Neha", claims.Name)
	require.Equal(t, "employee", claims.Role)
	require.Equal(t, 10*time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestLogin_WrongPassword(t *testing.T) {
	store := &fakeUserStore{getOut: storedUser(t, "right")}
	s := NewAuthService(store, &fakeIssuer{token: "never"})

	token, _, err := s.Login(context.Background(), "neha@example.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)
	require.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	store := &fakeUserStore{getErr: pgx.ErrNoRows}
	s := NewAuthService(store, &fakeIssuer{})

	_, _, err := s.Login(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_StoreFailureClassified(t *testing.T) {
	store := &fakeUserStore{getErr: errors.New("timeout")}
	s := NewAuthService(store, &fakeIssuer{})

	_, _, err := s.Login(context.Background(), "neha@example.com", "pw")
	require.ErrorIs(t, err, ErrDataSource)
}
