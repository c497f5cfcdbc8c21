package service

import (
	"context"
	"errors"

	"popview/internal/api/dto"
	"popview/internal/api/models"
	"popview/internal/api/repository"
	"popview/internal/auth"

	"gorm.io/gorm"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserDTO) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo       repository.UserRepository
	bcryptCost int
}

func NewUserService(repo repository.UserRepository, bcryptCost int) UserService {
	return &userService{repo: repo, bcryptCost: bcryptCost}
}

// Create hashes the raw password before anything touches storage. The email
// uniqueness check rides on the database constraint so two concurrent
// registrations can't both land.
func (s *userService) Create(ctx context.Context, req dto.CreateUserDTO) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := req.ToModel()
	user.Password = hash
	if err := s.repo.Create(ctx, &user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) Update(ctx context.Context, id int64, req dto.UpdateUserDTO) (*models.User, error) {
	if !req.HasChanges() {
		return nil, ErrNoFields
	}

	fields := req.Fields()
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}

	user, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user row; the user_lists and user_titles links cascade
// at the storage layer. List rows themselves survive.
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
