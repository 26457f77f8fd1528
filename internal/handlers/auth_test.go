package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/interntrack/api/internal/auth"
	"github.com/interntrack/api/internal/database"
	"github.com/interntrack/api/internal/dto"
	"github.com/interntrack/api/internal/models"
	"github.com/interntrack/api/internal/repository"
	"github.com/interntrack/api/internal/services"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingSender) SendHTML(to []string, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, subject)
	return nil
}

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	tokens      *auth.TokenIssuer
	sender      *recordingSender
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	database.SetDB(db)

	sender := &recordingSender{}
	userRepo := repository.NewUserRepository(db)
	emails := services.NewEmailService(sender, "http://localhost:5173", zerolog.Nop())
	authService := services.NewAuthService(userRepo, emails)
	tokens := auth.NewTokenIssuer("test-secret")
	handler := NewAuthHandler(authService, tokens)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		tokens:      tokens,
		sender:      sender,
	}
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	return w
}

func authRouter(env authTestEnv) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/register", env.handler.Register)
	r.POST("/api/auth/login", env.handler.Login)
	r.POST("/api/auth/forgot-password", env.handler.ForgotPassword)
	r.POST("/api/auth/reset-password/:token", env.handler.ResetPassword)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "Secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "new@example.com", response.User.Email)

	// the issued token must validate back to the created user
	userID, err := env.tokens.Validate(response.Token)
	require.NoError(t, err)
	require.Equal(t, response.User.ID, userID)
}

func TestAuthHandler_Register_WeakPasswords(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1", "8 characters"},
		{"no uppercase", "abc12345", "uppercase"},
		{"no lowercase", "ABC12345", "lowercase"},
		{"no digit", "Abcdefgh", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/auth/register", map[string]string{
				"name":     "User",
				"email":    "weak@example.com",
				"password": tt.password,
			})

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	payload := map[string]string{
		"name":     "User",
		"email":    "dup@example.com",
		"password": "Secret123",
	}

	w := postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "Secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "existing@example.com", response.User.Email)
}

func TestAuthHandler_Login_GenericErrorOnAnyMismatch(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	// wrong password and unknown account produce the same response body
	wrongPassword := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "WrongPass1",
	})
	unknownUser := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Secret123",
	})

	require.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	require.Equal(t, http.StatusBadRequest, unknownUser.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	require.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}

func TestAuthHandler_ForgotPassword_GenericResponse(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	known := postJSON(t, r, "/api/auth/forgot-password", map[string]string{"email": "existing@example.com"})
	unknown := postJSON(t, r, "/api/auth/forgot-password", map[string]string{"email": "nobody@example.com"})

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.Equal(t, known.Body.String(), unknown.Body.String())

	// only the known account actually got a token
	var user models.User
	require.NoError(t, env.db.Where("email = ?", "existing@example.com").First(&user).Error)
	require.NotNil(t, user.ResetToken)
	require.NotNil(t, user.ResetTokenExpires)
	require.WithinDuration(t, time.Now().Add(time.Hour), *user.ResetTokenExpires, time.Minute)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.authService.ForgotPassword("existing@example.com"))

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "existing@example.com").First(&user).Error)
	require.NotNil(t, user.ResetToken)
	token := *user.ResetToken

	w := postJSON(t, r, "/api/auth/reset-password/"+token, map[string]string{
		"password": "NewSecret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// token is single use
	w = postJSON(t, r, "/api/auth/reset-password/"+token, map[string]string{
		"password": "OtherSecret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired reset token")

	// new password works, old one does not
	_, err = env.authService.Login(services.LoginInput{Email: "existing@example.com", Password: "NewSecret123"})
	require.NoError(t, err)
	_, err = env.authService.Login(services.LoginInput{Email: "existing@example.com", Password: "Secret123"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthHandler_ResetPassword_ExpiredToken(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authRouter(env)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	token := "deadbeef"
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expired,
		}).Error)

	w := postJSON(t, r, "/api/auth/reset-password/"+token, map[string]string{
		"password": "NewSecret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired reset token")
}
