package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddleware(t *testing.T) {
	var passedSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		passedSubject, _ = GetExternalID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := JWTMiddleware(jwtTestSecret)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + signToken(t, jwtTestSecret, jwt.MapClaims{"sub": "ext_1", "exp": time.Now().Add(time.Hour).Unix()}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   apperrors.ErrInvalidAuthHeader.Error(),
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   apperrors.ErrInvalidAuthHeader.Error(),
		},
		{
			name:       "wrong signing key",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"sub": "ext_1", "exp": time.Now().Add(time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
			wantBody:   apperrors.ErrInvalidToken.Error(),
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, jwtTestSecret, jwt.MapClaims{"sub": "ext_1", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
			wantBody:   apperrors.ErrInvalidToken.Error(),
		},
		{
			name:       "missing subject",
			authHeader: "Bearer " + signToken(t, jwtTestSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
			wantBody:   apperrors.ErrInvalidToken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passedSubject = ""
			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ext_1", passedSubject)
			}
		})
	}
}
