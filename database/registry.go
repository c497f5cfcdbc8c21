package database

import "popview/internal/api/models"

// PersistentModels returns the schema-managed models. Link tables come
// after the entities they reference so their foreign keys resolve during
// migration.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.List{},
		&models.Title{},
		&models.UserList{},
		&models.ListTitle{},
		&models.UserTitle{},
	}
}
