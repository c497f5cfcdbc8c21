package service_test

import (
	"context"
	"testing"

	"popview/database"
	"popview/internal/api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates a private in-memory SQLite database with foreign keys
// enforced. The pool is pinned to one connection so the handle keeps a
// single memory database for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Age:      30,
		Email:    email,
		Password: "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedList(t *testing.T, db *gorm.DB, ownerID int64, private bool) models.List {
	t.Helper()
	list := models.List{Title: "Watchlist", Private: private}
	require.NoError(t, db.Create(&list).Error)
	require.NoError(t, db.Create(&models.UserList{UserID: ownerID, ListID: list.ID}).Error)
	return list
}

func seedTitle(t *testing.T, db *gorm.DB, name string) models.Title {
	t.Helper()
	title := models.Title{Name: name, Platforms: "netflix", Rating: 3.5}
	require.NoError(t, db.Create(&title).Error)
	return title
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&count).Error)
	return count
}

// pointer helpers
func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }

var ctx = context.Background()
