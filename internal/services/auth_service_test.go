package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fitlog-dev/fitlog/internal/auth"
	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/repositories"
	"github.com/fitlog-dev/fitlog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*services.AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.User{}))

	tokens := auth.NewTokenManager("test_jwt_secret", time.Hour)
	userRepo := repositories.NewGormUserRepository(database)

	return services.NewAuthService(userRepo, tokens), database
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	service, database := setupService(t)

	user, token, err := service.Register("Alice", "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", user.Email)

	var stored models.User
	require.NoError(t, database.First(&stored, "email = ?", "a@x.com").Error)

	assert.NotEqual(t, "password1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")))
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	service, _ := setupService(t)

	user, _, err := service.Register("Alice", "  Alice@Example.COM ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, _, err = service.Register("Other", "alice@example.com", "password2")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAuthService_LoginUniformFailure(t *testing.T) {
	service, _ := setupService(t)

	_, _, err := service.Register("Alice", "a@x.com", "password1")
	require.NoError(t, err)

	_, _, wrongPassword := service.Login("a@x.com", "nope-nope")
	_, _, unknownEmail := service.Login("b@x.com", "password1")

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	service, _ := setupService(t)

	registered, _, err := service.Register("Alice", "a@x.com", "password1")
	require.NoError(t, err)

	_, token, err := service.Login("a@x.com", "password1")
	require.NoError(t, err)

	user, err := service.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_AuthenticateRejectsForeignToken(t *testing.T) {
	service, _ := setupService(t)

	registered, _, err := service.Register("Alice", "a@x.com", "password1")
	require.NoError(t, err)

	foreign := auth.NewTokenManager("some_other_secret", time.Hour)
	token, err := foreign.Issue(registered.ID)
	require.NoError(t, err)

	_, err = service.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_AuthenticateRejectsDeletedUser(t *testing.T) {
	service, database := setupService(t)

	registered, token, err := service.Register("Alice", "a@x.com", "password1")
	require.NoError(t, err)

	require.NoError(t, database.Delete(&models.User{}, "id = ?", registered.ID).Error)

	_, err = service.Authenticate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
