package service

import (
	"context"
	"errors"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/repository"
	"popview/internal/cache"

	"gorm.io/gorm"
)

type ListService interface {
	Create(ctx context.Context, req dto.CreateListDTO) (*models.List, error)
	GetByID(ctx context.Context, id int64) (*models.List, error)
	GetAll(ctx context.Context) ([]models.List, error)
	GetPublic(ctx context.Context) ([]models.List, error)
	GetByUser(ctx context.Context, userID int64) ([]models.List, error)
	Update(ctx context.Context, id int64, req dto.UpdateListDTO) (*models.List, error)
	Delete(ctx context.Context, id int64) error
}

type listService struct {
	repo  repository.ListRepository
	cache *cache.Cache
}

func NewListService(repo repository.ListRepository, c *cache.Cache) ListService {
	return &listService{repo: repo, cache: c}
}

// Create verifies the owner and writes the list and the ownership link as
// one atomic unit; either both rows land or neither does.
func (s *listService) Create(ctx context.Context, req dto.CreateListDTO) (*models.List, error) {
	list := req.ToModel()
	if err := s.repo.CreateWithOwner(ctx, &list, req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !list.Private {
		s.cache.Invalidate(ctx, cache.PublicListsKey)
	}
	return &list, nil
}

func (s *listService) GetByID(ctx context.Context, id int64) (*models.List, error) {
	list, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *listService) GetAll(ctx context.Context) ([]models.List, error) {
	return s.repo.GetAll(ctx)
}

func (s *listService) GetPublic(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if hit, err := s.cache.GetJSON(ctx, cache.PublicListsKey, &lists); err == nil && hit {
		return lists, nil
	}

	lists, err := s.repo.GetPublic(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.PublicListsKey, lists)
	return lists, nil
}

// GetByUser reports not-found when the user owns nothing, matching the
// existing API consumers.
func (s *listService) GetByUser(ctx context.Context, userID int64) ([]models.List, error) {
	lists, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, ErrNoListsForUser
	}
	return lists, nil
}

func (s *listService) Update(ctx context.Context, id int64, req dto.UpdateListDTO) (*models.List, error) {
	if !req.HasChanges() {
		return nil, ErrNoFields
	}
	list, err := s.repo.Update(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	// privacy may have flipped either way
	s.cache.Invalidate(ctx, cache.PublicListsKey)
	return list, nil
}

// Delete removes the list row; list_titles and user_lists links cascade.
func (s *listService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, cache.PublicListsKey)
	return nil
}
