package repository

import (
	"context"
	"fmt"

	"popview/internal/api/models"

	"gorm.io/gorm"
)

type TitleRepository interface {
	Create(ctx context.Context, title *models.Title) error
	GetByID(ctx context.Context, id int64) (*models.Title, error)
	GetAll(ctx context.Context) ([]models.Title, error)
	GetByList(ctx context.Context, listID int64) ([]models.Title, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Title, error)
	Delete(ctx context.Context, id int64) error
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(ctx context.Context, title *models.Title) error {
	if err := r.db.WithContext(ctx).Create(title).Error; err != nil {
		return fmt.Errorf("create title: %w", err)
	}
	return nil
}

func (r *titleRepository) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	var title models.Title
	if err := r.db.WithContext(ctx).First(&title, id).Error; err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) GetAll(ctx context.Context) ([]models.Title, error) {
	var titles []models.Title
	if err := r.db.WithContext(ctx).Find(&titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *titleRepository) GetByList(ctx context.Context, listID int64) ([]models.Title, error) {
	var titles []models.Title
	err := r.db.WithContext(ctx).
		Joins("JOIN list_titles ON list_titles.title_id = titles.id").
		Where("list_titles.list_id = ?", listID).
		Find(&titles).Error
	if err != nil {
		return nil, fmt.Errorf("titles for list: %w", err)
	}
	return titles, nil
}

func (r *titleRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Title, error) {
	result := r.db.WithContext(ctx).Model(&models.Title{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *titleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Title{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
