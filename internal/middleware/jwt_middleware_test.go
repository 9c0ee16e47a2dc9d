package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 10*time.Hour)

	tok, err := codec.Issue(42, "Neha", "employee")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 || claims.Name != "Neha" || claims.Role != "employee" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != 10*time.Hour {
		t.Fatalf("expiry not 10h after issuance: %v", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", -1*time.Second)

	tok, err := codec.Issue(1, "a", "employee")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := codec.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)

	tok, err := codec.Issue(1, "a", "employee")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip one character of the signature segment
	last := tok[len(tok)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := tok[:len(tok)-1] + string(flipped)

	if _, err := codec.Verify(tampered); err == nil {
		t.Fatalf("expected error for tampered signature, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right-secret", time.Hour).Issue(1, "a", "employee")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenCodec("wrong-secret", time.Hour).Verify(tok); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenCodec("k", time.Hour).Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func gateRequest(t *testing.T, codec *TokenCodec, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		return c.JSON(http.StatusOK, echo.Map{"id": claims.UserID, "role": claims.Role})
	}

	err := JWTMiddleware(codec)(next)(c)
	require.NoError(t, err)
	return rec
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	rec := gateRequest(t, codec, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	rec := gateRequest(t, codec, "Basic dXNlcjpwdw==")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	rec := gateRequest(t, codec, "Bearer garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	tok, err := codec.Issue(7, "Neha", "admin")
	require.NoError(t, err)

	rec := gateRequest(t, codec, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":7`)
	require.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestJWTMiddleware_BearerCaseInsensitive(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	tok, err := codec.Issue(7, "Neha", "employee")
	require.NoError(t, err)

	for _, scheme := range []string{"bearer", "BEARER", "Bearer"} {
		rec := gateRequest(t, codec, strings.Join([]string{scheme, tok}, " "))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
