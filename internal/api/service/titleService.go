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

type TitleService interface {
	Create(ctx context.Context, req dto.CreateTitleDTO) (*models.Title, error)
	GetByID(ctx context.Context, id int64) (*models.Title, error)
	GetAll(ctx context.Context) ([]models.Title, error)
	GetByList(ctx context.Context, listID int64) ([]models.Title, error)
	Update(ctx context.Context, id int64, req dto.UpdateTitleDTO) (*models.Title, error)
	Delete(ctx context.Context, id int64) error
}

type titleService struct {
	repo  repository.TitleRepository
	cache *cache.Cache
}

func NewTitleService(repo repository.TitleRepository, c *cache.Cache) TitleService {
	return &titleService{repo: repo, cache: c}
}

func (s *titleService) Create(ctx context.Context, req dto.CreateTitleDTO) (*models.Title, error) {
	title := req.ToModel()
	if err := s.repo.Create(ctx, &title); err != nil {
		return nil, err
	}
	return &title, nil
}

func (s *titleService) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	var cached models.Title
	if hit, err := s.cache.GetJSON(ctx, cache.TitleKey(id), &cached); err == nil && hit {
		return &cached, nil
	}

	title, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	s.cache.SetJSON(ctx, cache.TitleKey(id), title)
	return title, nil
}

func (s *titleService) GetAll(ctx context.Context) ([]models.Title, error) {
	return s.repo.GetAll(ctx)
}

// GetByList reports not-found when the list holds nothing, matching the
// existing API consumers.
func (s *titleService) GetByList(ctx context.Context, listID int64) ([]models.Title, error) {
	titles, err := s.repo.GetByList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, ErrNoTitlesInList
	}
	return titles, nil
}

func (s *titleService) Update(ctx context.Context, id int64, req dto.UpdateTitleDTO) (*models.Title, error) {
	if !req.HasChanges() {
		return nil, ErrNoFields
	}
	title, err := s.repo.Update(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TitleKey(id))
	return title, nil
}

// Delete removes the title row; list_titles and user_titles links cascade.
func (s *titleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTitleNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, cache.TitleKey(id))
	return nil
}
