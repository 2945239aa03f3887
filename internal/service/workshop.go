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

// WorkshopService handles business logic for workshops
type WorkshopService struct {
	repo      repository.WorkshopRepositoryInterface
	baseRepo  repository.BaseRepositoryInterface
	validator *validator.Validate
}

// Ensure WorkshopService implements WorkshopServiceInterface
var _ WorkshopServiceInterface = (*WorkshopService)(nil)

// NewWorkshopService creates a new workshop service
func NewWorkshopService(repo repository.WorkshopRepositoryInterface, baseRepo repository.BaseRepositoryInterface, validator *validator.Validate) *WorkshopService {
	return &WorkshopService{
		repo:      repo,
		baseRepo:  baseRepo,
		validator: validator,
	}
}

// CreateWorkshopRequest represents the request to create a workshop
type CreateWorkshopRequest struct {
	BaseID    uint             `json:"baseId" validate:"required"`
	Name      string           `json:"name" validate:"required,min=1,max=100"`
	BusyLevel models.BusyLevel `json:"busyLevel" validate:"omitempty,min=1,max=4"`
}

// UpdateWorkshopRequest represents the request to update a workshop
type UpdateWorkshopRequest struct {
	BaseID    *uint             `json:"baseId,omitempty"`
	Name      string            `json:"name" validate:"required,min=1,max=100"`
	BusyLevel *models.BusyLevel `json:"busyLevel,omitempty" validate:"omitempty,min=1,max=4"`
}

// WorkshopResponse represents a workshop in API responses
type WorkshopResponse struct {
	ID        uint             `json:"id"`
	BaseID    uint             `json:"baseId"`
	BaseName  string           `json:"baseName,omitempty"`
	Name      string           `json:"name"`
	BusyLevel models.BusyLevel `json:"busyLevel"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// Create creates a new workshop under an existing base
func (s *WorkshopService) Create(req *CreateWorkshopRequest) (*WorkshopResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Verify the parent base exists
	if _, err := s.baseRepo.GetByID(req.BaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, fmt.Errorf("failed to verify base: %w", err)
	}

	busyLevel := req.BusyLevel
	if busyLevel == 0 {
		busyLevel = models.BusyLevelNormal
	}
	if !busyLevel.IsValid() {
		return nil, apperrors.NewValidationError("busyLevel", "must be between 1 and 4")
	}

	workshop := &models.Workshop{
		BaseID:    req.BaseID,
		Name:      req.Name,
		BusyLevel: busyLevel,
	}
	if err := s.repo.Create(workshop); err != nil {
		return nil, fmt.Errorf("failed to create workshop: %w", err)
	}

	return s.toResponse(workshop), nil
}

// GetByID retrieves a workshop by ID
func (s *WorkshopService) GetByID(id uint) (*WorkshopResponse, error) {
	workshop, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}

	return s.toResponse(workshop), nil
}

// List retrieves workshops, optionally filtered by base and name substring
func (s *WorkshopService) List(baseID *uint, search string) ([]WorkshopResponse, error) {
	workshops, err := s.repo.List(baseID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	responses := make([]WorkshopResponse, len(workshops))
	for i, workshop := range workshops {
		responses[i] = *s.toResponse(&workshop)
	}
	return responses, nil
}

// Update updates a workshop
func (s *WorkshopService) Update(id uint, req *UpdateWorkshopRequest) (*WorkshopResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	workshop, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}

	if req.BaseID != nil && *req.BaseID != workshop.BaseID {
		if _, err := s.baseRepo.GetByID(*req.BaseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBaseNotFound
			}
			return nil, fmt.Errorf("failed to verify base: %w", err)
		}
		workshop.BaseID = *req.BaseID
		workshop.Base = nil
	}

	workshop.Name = req.Name
	if req.BusyLevel != nil {
		if !req.BusyLevel.IsValid() {
			return nil, apperrors.NewValidationError("busyLevel", "must be between 1 and 4")
		}
		workshop.BusyLevel = *req.BusyLevel
	}

	if err := s.repo.Update(workshop); err != nil {
		return nil, fmt.Errorf("failed to update workshop: %w", err)
	}

	return s.toResponse(workshop), nil
}

// Delete deletes a workshop; the database rejects it while equipment remains
func (s *WorkshopService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkshopNotFound
		}
		return fmt.Errorf("failed to get workshop: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workshop: %w", err)
	}
	return nil
}

// toResponse converts a workshop model to response
func (s *WorkshopService) toResponse(workshop *models.Workshop) *WorkshopResponse {
	resp := &WorkshopResponse{
		ID:        workshop.ID,
		BaseID:    workshop.BaseID,
		Name:      workshop.Name,
		BusyLevel: workshop.BusyLevel,
		CreatedAt: workshop.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: workshop.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if workshop.Base != nil {
		resp.BaseName = workshop.Base.Name
	}
	return resp
}
