package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisteria-dev/taskboard-api/internal/models"
	"github.com/wisteria-dev/taskboard-api/internal/repository"
	"github.com/wisteria-dev/taskboard-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db)), db
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
		Role:     "developer",
		Title:    "Engineer",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "supersecret", user.PasswordHash, "stored value must be a hash")
	require.True(t, user.IsActive)

	got, err := svc.Login(LoginInput{Email: "a@x.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestAuthService_Login_UnifiedError(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(LoginInput{Email: "a@x.com", Password: "nope-nope"})
	_, noUserErr := svc.Login(LoginInput{Email: "ghost@x.com", Password: "supersecret"})

	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	require.ErrorIs(t, noUserErr, ErrInvalidCredentials)
	require.Equal(t, wrongPassErr.Error(), noUserErr.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestAuthService_Login_DeactivatedBeforePassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.SetActive(user.ID, false)
	require.NoError(t, err)

	// Deactivation is reported regardless of password correctness.
	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrAccountDeactivated)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	first, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		Name:     "Imposter",
		Email:    "a@x.com",
		Password: "othersecret",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	// First record unaffected.
	got, err := svc.GetUser(first.ID)
	require.NoError(t, err)
	require.Equal(t, "Asha", got.Name)
}

func TestAuthService_ChangePassword_Rehashes(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, svc.ChangePassword(user.ID, "new-password-1"))

	updated, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	require.NotEqual(t, oldHash, updated.PasswordHash)
	require.NotEqual(t, "new-password-1", updated.PasswordHash)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "new-password-1"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "a@x.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
		Title:    "Engineer",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Name: "Asha K", Role: "lead"})
	require.NoError(t, err)
	require.Equal(t, "Asha K", updated.Name)
	require.Equal(t, "lead", updated.Role)
	require.Equal(t, "Engineer", updated.Title, "empty fields stay untouched")
}

func TestAuthService_DeleteUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "a@x.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUser(user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	require.ErrorIs(t, svc.DeleteUser(user.ID), ErrUserNotFound)
}

func TestAuthService_ListTeam_Search(t *testing.T) {
	svc, _ := setupAuthService(t)

	for _, u := range []RegisterInput{
		{Name: "Asha", Email: "a@x.com", Password: "supersecret", Title: "Engineer"},
		{Name: "Bram", Email: "b@x.com", Password: "supersecret", Title: "Designer"},
	} {
		_, err := svc.Register(u)
		require.NoError(t, err)
	}

	params := utils.PaginationParams{Page: 1, Limit: 20, Offset: 0}

	all, total, err := svc.ListTeam("", params)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.EqualValues(t, 2, total)

	designers, total, err := svc.ListTeam("design", params)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Bram", designers[0].Name)
}
