package repository

import (
	"context"
	"fmt"

	"popview/internal/api/models"

	"gorm.io/gorm"
)

type ListRepository interface {
	CreateWithOwner(ctx context.Context, list *models.List, ownerID int64) error
	GetByID(ctx context.Context, id int64) (*models.List, error)
	GetAll(ctx context.Context) ([]models.List, error)
	GetPublic(ctx context.Context) ([]models.List, error)
	GetByUser(ctx context.Context, userID int64) ([]models.List, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.List, error)
	Delete(ctx context.Context, id int64) error
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

// CreateWithOwner inserts the list row and its owner link as one transaction.
// The owner existence check runs on the same connection, so a concurrent
// delete of the owner can't slip between the check and the link insert.
func (r *listRepository) CreateWithOwner(ctx context.Context, list *models.List, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, ownerID).Error; err != nil {
			return err
		}
		if err := tx.Create(list).Error; err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		link := models.UserList{UserID: ownerID, ListID: list.ID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("create owner link: %w", err)
		}
		return nil
	})
}

func (r *listRepository) GetByID(ctx context.Context, id int64) (*models.List, error) {
	var list models.List
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) GetAll(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if err := r.db.WithContext(ctx).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) GetPublic(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if err := r.db.WithContext(ctx).Where("private = ?", false).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) GetByUser(ctx context.Context, userID int64) ([]models.List, error) {
	var lists []models.List
	err := r.db.WithContext(ctx).
		Joins("JOIN user_lists ON user_lists.list_id = lists.id").
		Where("user_lists.user_id = ?", userID).
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("lists for user: %w", err)
	}
	return lists, nil
}

func (r *listRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.List, error) {
	result := r.db.WithContext(ctx).Model(&models.List{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *listRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.List{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
