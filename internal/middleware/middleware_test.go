package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

const testSecret = "test-secret"

type resolverFunc func(ctx context.Context, sess *session.Session, subject string) (*models.User, error)

func (f resolverFunc) Resolve(ctx context.Context, sess *session.Session, subject string) (*models.User, error) {
	return f(ctx, sess, subject)
}

func signToken(t *testing.T, claims models.JWTClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRouter(resolver IdentityResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(testSecret, resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		sess := SessionFrom(c)
		fromCtx := session.FromContext(c.Request.Context())
		token, _ := sess.Token()
		c.JSON(http.StatusOK, gin.H{
			"user":  sess.UserID(),
			"role":  string(sess.Role()),
			"email": sess.Email(),
			"token": token,
			"same":  fromCtx == sess,
		})
	})
	r.GET("/me", handlers...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateWithFullClaims(t *testing.T) {
	token := signToken(t, models.JWTClaims{
		UserID: "tutor-1",
		Email:  "tutor@example.com",
		Role:   "tutor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwt.SigningMethodHS256)

	w := get(newRouter(nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"tutor-1"`)
	assert.Contains(t, w.Body.String(), `"role":"tutor"`)
	assert.Contains(t, w.Body.String(), `"same":true`)
	assert.Contains(t, w.Body.String(), `"token":"`+token+`"`)
}

func TestAuthenticateResolvesSubjectOnlyTokens(t *testing.T) {
	token := signToken(t, models.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "student@example.com"},
	}, jwt.SigningMethodHS256)

	var gotSubject string
	resolver := resolverFunc(func(_ context.Context, sess *session.Session, subject string) (*models.User, error) {
		gotSubject = subject
		_, ok := sess.Token()
		assert.True(t, ok)
		return &models.User{ID: "stu-1", Email: subject, Role: "student"}, nil
	})

	w := get(newRouter(resolver), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student@example.com", gotSubject)
	assert.Contains(t, w.Body.String(), `"user":"stu-1"`)
	assert.Contains(t, w.Body.String(), `"role":"student"`)
}

func TestAuthenticateRejects(t *testing.T) {
	expired := signToken(t, models.JWTClaims{
		UserID: "tutor-1", Role: "tutor",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}, jwt.SigningMethodHS256)
	wrongAlg := signToken(t, models.JWTClaims{UserID: "tutor-1", Role: "tutor"}, jwt.SigningMethodHS512)
	failing := resolverFunc(func(context.Context, *session.Session, string) (*models.User, error) {
		return nil, appErrors.ErrUpstreamUnavailable
	})
	subjectOnly := signToken(t, models.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.c"}}, jwt.SigningMethodHS256)

	cases := []struct {
		name     string
		resolver IdentityResolver
		token    string
		status   int
	}{
		{"missing header", nil, "", http.StatusUnauthorized},
		{"garbage", nil, "not-a-jwt", http.StatusUnauthorized},
		{"expired", nil, expired, http.StatusUnauthorized},
		{"wrong algorithm", nil, wrongAlg, http.StatusUnauthorized},
		{"subject only without resolver", nil, subjectOnly, http.StatusUnauthorized},
		{"resolver unavailable", failing, subjectOnly, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newRouter(tc.resolver), tc.token)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	studentToken := signToken(t, models.JWTClaims{UserID: "stu-1", Role: "student"}, jwt.SigningMethodHS256)
	adminToken := signToken(t, models.JWTClaims{UserID: "adm-1", Role: "admin"}, jwt.SigningMethodHS256)

	r := newRouter(nil, RequireRoles(session.RoleTutor, session.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, get(r, studentToken).Code)
	assert.Equal(t, http.StatusOK, get(r, adminToken).Code)
}

func TestMetricsMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/calendar/:year/:month", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/calendar/2024/3", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.EqualValues(t, 1, metrics.Snapshot().RequestsTotal)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `path="/calendar/:year/:month"`)
}

func TestMetricsMiddlewareSkipsAndCollapsesUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics, "/metrics"))
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	assert.EqualValues(t, 1, metrics.Snapshot().RequestsTotal)
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `path="unmatched"`)
	assert.NotContains(t, w.Body.String(), "/nope/123")
}
