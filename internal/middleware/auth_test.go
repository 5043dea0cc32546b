package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wisteria-dev/taskboard-api/internal/auth"
	"github.com/wisteria-dev/taskboard-api/internal/constants"
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMiddlewareTest(t *testing.T) (*gin.Engine, *auth.TokenIssuer, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	user := &models.User{
		Name:         "Asha",
		Email:        "a@x.com",
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	userRepo := repository.NewUserRepository(db)

	r := gin.New()
	r.GET("/protected", RequireAuth(issuer, userRepo), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "is_admin": IsAdmin(c)})
	})
	r.GET("/admin", RequireAuth(issuer, userRepo), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": true})
	})

	return r, issuer, user
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, issuer, user := setupMiddlewareTest(t)

	token, err := issuer.Issue(user.ID)
	require.NoError(t, err)

	w := request(r, "/protected", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	r, _, _ := setupMiddlewareTest(t)

	w := request(r, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r, _, user := setupMiddlewareTest(t)

	expired := auth.NewTokenIssuer([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue(user.ID)
	require.NoError(t, err)

	w := request(r, "/protected", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r, _, _ := setupMiddlewareTest(t)

	w := request(r, "/protected", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	r, issuer, _ := setupMiddlewareTest(t)

	// Token for a user that does not exist.
	token, err := issuer.Issue(9999)
	require.NoError(t, err)

	w := request(r, "/protected", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	r, issuer, user := setupMiddlewareTest(t)

	token, err := issuer.Issue(user.ID)
	require.NoError(t, err)

	w := request(r, "/admin", token)
	require.Equal(t, http.StatusForbidden, w.Code)
}
