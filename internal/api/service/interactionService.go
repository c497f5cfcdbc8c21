package service

import (
	"context"
	"errors"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/repository"

	"gorm.io/gorm"
)

// InteractionService manages per-user comments and ratings on titles.
type InteractionService interface {
	UpsertComment(ctx context.Context, userID, titleID int64, req dto.UpsertCommentDTO) error
	GetComments(ctx context.Context, userID, titleID int64) ([]models.UserTitle, error)
	GetCommentsForTitle(ctx context.Context, titleID int64) ([]models.UserTitle, error)
	UpdateComment(ctx context.Context, userID, titleID int64, req dto.UpdateCommentDTO) error
	ClearComment(ctx context.Context, userID, titleID int64) error
	SetRating(ctx context.Context, userID, titleID int64, rating float64) error
}

type interactionService struct {
	repo      repository.InteractionRepository
	userRepo  repository.UserRepository
	titleRepo repository.TitleRepository
}

func NewInteractionService(repo repository.InteractionRepository, userRepo repository.UserRepository, titleRepo repository.TitleRepository) InteractionService {
	return &interactionService{repo: repo, userRepo: userRepo, titleRepo: titleRepo}
}

// UpsertComment inserts the interaction or overwrites comment and rating on
// the existing (user, title) row. Both sides are checked first so a missing
// user or title comes back as a domain not-found, not an integrity failure.
func (s *interactionService) UpsertComment(ctx context.Context, userID, titleID int64, req dto.UpsertCommentDTO) error {
	if !ValidRating(req.Rating) {
		return ErrInvalidRating
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTitleNotFound
		}
		return err
	}

	comment := req.Comment
	interaction := models.UserTitle{
		UserID:  userID,
		TitleID: titleID,
		Comment: &comment,
		Rating:  req.Rating,
	}
	return s.repo.Upsert(ctx, &interaction)
}

func (s *interactionService) GetComments(ctx context.Context, userID, titleID int64) ([]models.UserTitle, error) {
	interactions, err := s.repo.GetByUserAndTitle(ctx, userID, titleID)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, ErrNoCommentsFound
	}
	return interactions, nil
}

func (s *interactionService) GetCommentsForTitle(ctx context.Context, titleID int64) ([]models.UserTitle, error) {
	interactions, err := s.repo.GetCommentedByTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, ErrNoCommentsFound
	}
	return interactions, nil
}

func (s *interactionService) UpdateComment(ctx context.Context, userID, titleID int64, req dto.UpdateCommentDTO) error {
	if !req.HasChanges() {
		return ErrNoFields
	}
	if req.Rating != nil && !ValidRating(*req.Rating) {
		return ErrInvalidRating
	}
	if err := s.repo.Update(ctx, userID, titleID, req.Fields()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInteractionNotFound
		}
		return err
	}
	return nil
}

// ClearComment blanks the comment and zeroes the rating but keeps the row.
func (s *interactionService) ClearComment(ctx context.Context, userID, titleID int64) error {
	fields := map[string]interface{}{
		"comment": nil,
		"rating":  float64(0),
	}
	if err := s.repo.Update(ctx, userID, titleID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInteractionNotFound
		}
		return err
	}
	return nil
}

func (s *interactionService) SetRating(ctx context.Context, userID, titleID int64, rating float64) error {
	if !ValidRating(rating) {
		return ErrInvalidRating
	}
	if err := s.repo.Update(ctx, userID, titleID, map[string]interface{}{"rating": rating}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInteractionNotFound
		}
		return err
	}
	return nil
}
