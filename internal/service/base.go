package service

import (
	"errors"
	"fmt"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BaseService handles business logic for manufacturing bases
type BaseService struct {
	repo      repository.BaseRepositoryInterface
	validator *validator.Validate
}

// Ensure BaseService implements BaseServiceInterface
var _ BaseServiceInterface = (*BaseService)(nil)

// NewBaseService creates a new base service
func NewBaseService(repo repository.BaseRepositoryInterface, validator *validator.Validate) *BaseService {
	return &BaseService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBaseRequest represents the request to create a base
type CreateBaseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateBaseRequest represents the request to update a base
type UpdateBaseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// BaseResponse represents a base in API responses
type BaseResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Create creates a new base
func (s *BaseService) Create(req *CreateBaseRequest) (*BaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Base names are unique
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing base: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrBaseExists
	}

	base := &models.Base{
		Name: req.Name,
	}
	if err := s.repo.Create(base); err != nil {
		return nil, fmt.Errorf("failed to create base: %w", err)
	}

	return s.toResponse(base), nil
}

// GetByID retrieves a base by ID
func (s *BaseService) GetByID(id uint) (*BaseResponse, error) {
	base, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, fmt.Errorf("failed to get base: %w", err)
	}

	return s.toResponse(base), nil
}

// List retrieves all bases ordered by name
func (s *BaseService) List(search string) ([]BaseResponse, error) {
	bases, err := s.repo.List(search)
	if err != nil {
		return nil, fmt.Errorf("failed to list bases: %w", err)
	}

	responses := make([]BaseResponse, len(bases))
	for i, base := range bases {
		responses[i] = *s.toResponse(&base)
	}
	return responses, nil
}

// Update updates a base
func (s *BaseService) Update(id uint, req *UpdateBaseRequest) (*BaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	base, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, fmt.Errorf("failed to get base: %w", err)
	}

	if req.Name != base.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing base: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrBaseExists
		}
	}

	base.Name = req.Name
	if err := s.repo.Update(base); err != nil {
		return nil, fmt.Errorf("failed to update base: %w", err)
	}

	return s.toResponse(base), nil
}

// Delete deletes a base. The database rejects the delete while workshops
// still reference the base; that failure is surfaced to the caller.
func (s *BaseService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBaseNotFound
		}
		return fmt.Errorf("failed to get base: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete base: %w", err)
	}
	return nil
}

// toResponse converts a base model to response
func (s *BaseService) toResponse(base *models.Base) *BaseResponse {
	return &BaseResponse{
		ID:        base.ID,
		Name:      base.Name,
		CreatedAt: base.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: base.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
