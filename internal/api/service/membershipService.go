package service

import (
	"context"
	"errors"

	"popview/internal/api/repository"

	"gorm.io/gorm"
)

// MembershipService manages which titles belong to which lists.
type MembershipService interface {
	Attach(ctx context.Context, listID, titleID int64) error
	Detach(ctx context.Context, listID, titleID int64) error
}

type membershipService struct {
	repo      repository.MembershipRepository
	listRepo  repository.ListRepository
	titleRepo repository.TitleRepository
}

func NewMembershipService(repo repository.MembershipRepository, listRepo repository.ListRepository, titleRepo repository.TitleRepository) MembershipService {
	return &membershipService{repo: repo, listRepo: listRepo, titleRepo: titleRepo}
}

// Attach verifies both sides exist before touching the link table, so the
// caller can tell a missing list from a missing title from a duplicate. The
// duplicate pre-check is advisory; the composite key settles concurrent
// attaches and the unique violation maps to the same error.
func (s *membershipService) Attach(ctx context.Context, listID, titleID int64) error {
	if _, err := s.listRepo.GetByID(ctx, listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}
	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTitleNotFound
		}
		return err
	}

	exists, err := s.repo.Exists(ctx, listID, titleID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInList
	}

	if err := s.repo.Attach(ctx, listID, titleID); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyInList
		}
		return err
	}
	return nil
}

func (s *membershipService) Detach(ctx context.Context, listID, titleID int64) error {
	if err := s.repo.Detach(ctx, listID, titleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInList
		}
		return err
	}
	return nil
}
