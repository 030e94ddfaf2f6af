package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

var testSecret = []byte("test-secret")

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims SessionClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() SessionClaims {
	return SessionClaims{
		Name: "Desk Operator",
		Role: "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "op-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func sessionRouter(t *testing.T) (*ginext.Engine, *domain.Session) {
	var seen domain.Session
	r := ginext.New("test")
	r.Use(Session(testSecret, newTestLogger(t)))
	r.GET("/me", func(c *ginext.Context) {
		seen, _ = domain.SessionFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestSession_ValidToken(t *testing.T) {
	r, seen := sessionRouter(t)
	token := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Session{OperatorID: "op-1", Name: "Desk Operator", Role: "staff", Token: token}, *seen)
}

func TestSession_Rejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSubject := validClaims()
	noSubject.Subject = ""

	cases := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"missing header", "", "authorization header required"},
		{"not bearer", "Basic abc", "authorization header required"},
		{"garbage", "Bearer not-a-jwt", "invalid token"},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), "invalid token"},
		{"wrong alg", "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, validClaims()), "invalid token"},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, expired), "token has expired"},
		{"no subject", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noSubject), "invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := sessionRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
