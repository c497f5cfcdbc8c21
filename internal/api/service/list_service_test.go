package service_test

import (
	"testing"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/repository"
	"popview/internal/api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewListService(repository.NewListRepository(db), nil)
	owner := seedUser(t, db, "owner@example.com")

	t.Run("CreatesListAndOwnerLinkTogether", func(t *testing.T) {
		list, err := svc.Create(ctx, dto.CreateListDTO{
			Title:   "Favourites",
			Private: boolPtr(false),
			OwnerID: owner.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, list.ID)
		assert.EqualValues(t, 1, countRows(t, db, &models.UserList{}, "user_id = ? AND list_id = ?", owner.ID, list.ID))
	})

	t.Run("MissingOwnerLeavesNothingBehind", func(t *testing.T) {
		before := countRows(t, db, &models.List{}, "")

		_, err := svc.Create(ctx, dto.CreateListDTO{
			Title:   "Orphan",
			Private: boolPtr(true),
			OwnerID: 99999,
		})
		assert.ErrorIs(t, err, service.ErrUserNotFound)

		// the transaction rolled back: no list row, no link row
		assert.Equal(t, before, countRows(t, db, &models.List{}, ""))
		assert.EqualValues(t, 0, countRows(t, db, &models.UserList{}, "user_id = ?", 99999))
	})
}

func TestListService_GetByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewListService(repository.NewListRepository(db), nil)

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	seedList(t, db, owner.ID, false)
	seedList(t, db, owner.ID, true)

	lists, err := svc.GetByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	// a user who owns nothing is reported as not-found, not an empty list
	_, err = svc.GetByUser(ctx, other.ID)
	assert.ErrorIs(t, err, service.ErrNoListsForUser)
}

func TestListService_GetPublic(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewListService(repository.NewListRepository(db), nil)

	owner := seedUser(t, db, "owner@example.com")
	pub := seedList(t, db, owner.ID, false)
	seedList(t, db, owner.ID, true)

	lists, err := svc.GetPublic(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, pub.ID, lists[0].ID)
}

func TestListService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewListService(repository.NewListRepository(db), nil)
	owner := seedUser(t, db, "owner@example.com")
	list := seedList(t, db, owner.ID, true)

	t.Run("PartialUpdate", func(t *testing.T) {
		updated, err := svc.Update(ctx, list.ID, dto.UpdateListDTO{Private: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.Private)
		assert.Equal(t, list.Title, updated.Title)
	})

	t.Run("EmptyUpdateRejected", func(t *testing.T) {
		_, err := svc.Update(ctx, list.ID, dto.UpdateListDTO{})
		assert.ErrorIs(t, err, service.ErrNoFields)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, 99999, dto.UpdateListDTO{Title: strPtr("ghost")})
		assert.ErrorIs(t, err, service.ErrListNotFound)
	})
}

func TestListService_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewListService(repository.NewListRepository(db), nil)

	owner := seedUser(t, db, "owner@example.com")
	list := seedList(t, db, owner.ID, false)
	title := seedTitle(t, db, "Dune")
	require.NoError(t, db.Create(&models.ListTitle{ListID: list.ID, TitleID: title.ID}).Error)

	require.NoError(t, svc.Delete(ctx, list.ID))

	assert.EqualValues(t, 0, countRows(t, db, &models.ListTitle{}, "list_id = ?", list.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.UserList{}, "list_id = ?", list.ID))
	// the title and the owner survive
	assert.EqualValues(t, 1, countRows(t, db, &models.Title{}, "id = ?", title.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.User{}, "id = ?", owner.ID))

	assert.ErrorIs(t, svc.Delete(ctx, list.ID), service.ErrListNotFound)
}
