package service_test

import (
	"testing"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/repository"
	"popview/internal/api/service"
	"popview/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db), 4)

	t.Run("HashesPasswordAndAssignsID", func(t *testing.T) {
		user, err := svc.Create(ctx, dto.CreateUserDTO{
			Name:     "Anna",
			Age:      25,
			Email:    "anna@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, auth.VerifyPassword(user.Password, "secret123"))
	})

	t.Run("DuplicateEmailConflict", func(t *testing.T) {
		_, err := svc.Create(ctx, dto.CreateUserDTO{
			Name:     "Annie",
			Age:      26,
			Email:    "anna@example.com",
			Password: "other",
		})
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		// never a second row
		assert.EqualValues(t, 1, countRows(t, db, &models.User{}, "email = ?", "anna@example.com"))
	})
}

func TestUserService_Get(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db), 4)
	seeded := seedUser(t, db, "bob@example.com")

	got, err := svc.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, got.Email)

	_, err = svc.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db), 4)
	user := seedUser(t, db, "carla@example.com")

	t.Run("PartialUpdateOnlyTouchesSuppliedFields", func(t *testing.T) {
		updated, err := svc.Update(ctx, user.ID, dto.UpdateUserDTO{Name: strPtr("Carla B")})
		require.NoError(t, err)
		assert.Equal(t, "Carla B", updated.Name)
		assert.Equal(t, "carla@example.com", updated.Email)
		assert.Equal(t, user.Age, updated.Age)
	})

	t.Run("EmptyUpdateRejectedAndStorageUnchanged", func(t *testing.T) {
		var before models.User
		require.NoError(t, db.First(&before, user.ID).Error)

		_, err := svc.Update(ctx, user.ID, dto.UpdateUserDTO{})
		assert.ErrorIs(t, err, service.ErrNoFields)

		var after models.User
		require.NoError(t, db.First(&after, user.ID).Error)
		assert.Equal(t, before, after)
	})

	t.Run("PasswordRehashed", func(t *testing.T) {
		updated, err := svc.Update(ctx, user.ID, dto.UpdateUserDTO{Password: strPtr("newpass")})
		require.NoError(t, err)
		assert.NoError(t, auth.VerifyPassword(updated.Password, "newpass"))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, 99999, dto.UpdateUserDTO{Name: strPtr("nobody")})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewUserService(repository.NewUserRepository(db), 4)

	user := seedUser(t, db, "dave@example.com")
	list := seedList(t, db, user.ID, false)
	title := seedTitle(t, db, "The Expanse")
	require.NoError(t, db.Create(&models.UserTitle{UserID: user.ID, TitleID: title.ID, Rating: 3}).Error)

	require.NoError(t, svc.Delete(ctx, user.ID))

	// links are gone, the list row itself survives
	assert.EqualValues(t, 0, countRows(t, db, &models.UserList{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.UserTitle{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.List{}, "id = ?", list.ID))

	assert.ErrorIs(t, svc.Delete(ctx, user.ID), service.ErrUserNotFound)
}
