package repository

import (
	"context"
	"fmt"

	"popview/internal/api/models"

	"gorm.io/gorm"
)

// MembershipRepository manages the list_titles link table.
type MembershipRepository interface {
	Attach(ctx context.Context, listID, titleID int64) error
	Detach(ctx context.Context, listID, titleID int64) error
	Exists(ctx context.Context, listID, titleID int64) (bool, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Attach inserts the link row. The composite primary key rejects a
// duplicate pair at the storage layer; callers translate that with
// IsUniqueViolation.
func (r *membershipRepository) Attach(ctx context.Context, listID, titleID int64) error {
	link := models.ListTitle{ListID: listID, TitleID: titleID}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *membershipRepository) Detach(ctx context.Context, listID, titleID int64) error {
	result := r.db.WithContext(ctx).
		Where("list_id = ? AND title_id = ?", listID, titleID).
		Delete(&models.ListTitle{})
	if result.Error != nil {
		return fmt.Errorf("detach title: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *membershipRepository) Exists(ctx context.Context, listID, titleID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ListTitle{}).
		Where("list_id = ? AND title_id = ?", listID, titleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
