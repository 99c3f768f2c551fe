package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

type fakeParser struct {
	claims *auth.Claims
	err    error
	got    string
}

func (f *fakeParser) ParseToken(tokenString string) (*auth.Claims, error) {
	f.got = tokenString
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func callProtected(t *testing.T, parser *fakeParser, authHeader string) (*httptest.ResponseRecorder, *auth.Claims) {
	t.Helper()

	var gotClaims *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/visitors", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	Auth(parser, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, gotClaims
}

func TestAuth_ValidToken(t *testing.T) {
	parser := &fakeParser{claims: &auth.Claims{UserID: 7, Username: "reception", Role: "staff"}}

	rec, claims := callProtected(t, parser, "Bearer token-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token-123", parser.got)

	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "reception", claims.Username)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, claims := callProtected(t, &fakeParser{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tests := []string{
		"token-123",
		"Basic dXNlcjpwdw==",
	}

	for _, header := range tests {
		rec, _ := callProtected(t, &fakeParser{}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_RejectedToken(t *testing.T) {
	parser := &fakeParser{err: auth.ErrInvalidToken}

	rec, claims := callProtected(t, parser, "Bearer expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, claims)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	parser := &fakeParser{claims: &auth.Claims{UserID: 1}}

	rec, _ := callProtected(t, parser, "bearer token-123")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
}
