package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"library-app/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
	os.Exit(m.Run())
}

func guardedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", AuthMiddleware(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
		})
	})
	return r, mock
}

func ping(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, identity uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"identity": identity,
		"exp":      exp.Unix(),
	})
	s, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return s
}

func TestAuthMissingHeader(t *testing.T) {
	r, _ := guardedRouter(t)

	w := ping(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Authorization header missing"}`, w.Body.String())
}

func TestAuthWrongScheme(t *testing.T) {
	r, _ := guardedRouter(t)

	w := ping(r, "Bearer sometoken")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "JWT token malformed"}`, w.Body.String())
}

func TestAuthGarbageToken(t *testing.T) {
	r, _ := guardedRouter(t)

	w := ping(r, "JWT not.a.token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid or expired token"}`, w.Body.String())
}

func TestAuthExpiredToken(t *testing.T) {
	r, _ := guardedRouter(t)

	token := signToken(t, 7, time.Now().Add(-time.Hour))
	w := ping(r, "JWT "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid or expired token"}`, w.Body.String())
}

func TestAuthDeletedUser(t *testing.T) {
	r, mock := guardedRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	token := signToken(t, 7, time.Now().Add(time.Hour))
	w := ping(r, "JWT "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid or expired token"}`, w.Body.String())
}

func TestAuthValidToken(t *testing.T) {
	r, mock := guardedRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).
			AddRow(7, "reader", 0))

	token := signToken(t, 7, time.Now().Add(time.Hour))
	w := ping(r, "JWT "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 7}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMissingSecret(t *testing.T) {
	old := config.JWT_SECRET
	config.JWT_SECRET = ""
	defer func() { config.JWT_SECRET = old }()

	r, _ := guardedRouter(t)

	w := ping(r, "JWT whatever")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
