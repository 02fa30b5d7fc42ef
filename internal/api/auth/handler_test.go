package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"library-app/config"
	"library-app/internal/domain/users"

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

func loginRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	h := NewHandler(db)
	r := gin.New()
	r.POST("/auth", h.Login)
	return r, mock
}

func login(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	var c users.Credential
	require.NoError(t, c.Set(plain))
	v, err := c.Value()
	require.NoError(t, err)
	return v.(string)
}

func TestLogin(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username`).
		WithArgs("reader", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(7, "reader", hashOf(t, "opensesame"), 0))

	w := login(r, `{"username": "reader", "password": "opensesame"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotEmpty(t, got.AccessToken)

	token, err := jwt.Parse(got.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["identity"])
	assert.NotNil(t, claims["exp"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(7, "reader", hashOf(t, "opensesame"), 0))

	w := login(r, `{"username": "reader", "password": "wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials"}`, w.Body.String())
}

func TestLoginUnknownUser(t *testing.T) {
	r, mock := loginRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := login(r, `{"username": "ghost", "password": "whatever"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials"}`, w.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := loginRouter(t)

	w := login(r, `{"username": "reader"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = login(r, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
