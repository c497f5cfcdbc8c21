package repository

import (
	"context"
	"fmt"

	"popview/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InteractionRepository manages the user_titles link table and its comment
// and rating attributes.
type InteractionRepository interface {
	Upsert(ctx context.Context, interaction *models.UserTitle) error
	GetByUserAndTitle(ctx context.Context, userID, titleID int64) ([]models.UserTitle, error)
	GetCommentedByTitle(ctx context.Context, titleID int64) ([]models.UserTitle, error)
	Update(ctx context.Context, userID, titleID int64, fields map[string]interface{}) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Upsert inserts the interaction, or overwrites comment and rating when the
// (user, title) pair already exists. The conflict target is the composite
// primary key, so concurrent upserts can't produce a second row.
func (r *interactionRepository) Upsert(ctx context.Context, interaction *models.UserTitle) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "title_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"comment", "rating"}),
		}).
		Create(interaction).Error
	if err != nil {
		return fmt.Errorf("upsert interaction: %w", err)
	}
	return nil
}

func (r *interactionRepository) GetByUserAndTitle(ctx context.Context, userID, titleID int64) ([]models.UserTitle, error) {
	var interactions []models.UserTitle
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title_id = ?", userID, titleID).
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// GetCommentedByTitle returns only rows that carry a comment; rating-only
// interactions are skipped.
func (r *interactionRepository) GetCommentedByTitle(ctx context.Context, titleID int64) ([]models.UserTitle, error) {
	var interactions []models.UserTitle
	err := r.db.WithContext(ctx).
		Where("title_id = ? AND comment IS NOT NULL", titleID).
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *interactionRepository) Update(ctx context.Context, userID, titleID int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserTitle{}).
		Where("user_id = ? AND title_id = ?", userID, titleID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
