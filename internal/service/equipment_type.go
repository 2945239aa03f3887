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

// EquipmentTypeService handles business logic for equipment types
type EquipmentTypeService struct {
	repo      repository.EquipmentTypeRepositoryInterface
	validator *validator.Validate
}

// Ensure EquipmentTypeService implements EquipmentTypeServiceInterface
var _ EquipmentTypeServiceInterface = (*EquipmentTypeService)(nil)

// NewEquipmentTypeService creates a new equipment type service
func NewEquipmentTypeService(repo repository.EquipmentTypeRepositoryInterface, validator *validator.Validate) *EquipmentTypeService {
	return &EquipmentTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEquipmentTypeRequest represents the request to create an equipment type
type CreateEquipmentTypeRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	LifecycleYears *int   `json:"lifecycleYears,omitempty" validate:"omitempty,min=0"`
}

// UpdateEquipmentTypeRequest represents the request to update an equipment type
type UpdateEquipmentTypeRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	LifecycleYears *int   `json:"lifecycleYears,omitempty" validate:"omitempty,min=0"`
}

// EquipmentTypeResponse represents an equipment type in API responses
type EquipmentTypeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	LifecycleYears *int   `json:"lifecycleYears,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// Create creates a new equipment type
func (s *EquipmentTypeService) Create(req *CreateEquipmentTypeRequest) (*EquipmentTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	equipmentType := &models.EquipmentType{
		Name:           req.Name,
		LifecycleYears: req.LifecycleYears,
	}
	if err := s.repo.Create(equipmentType); err != nil {
		return nil, fmt.Errorf("failed to create equipment type: %w", err)
	}

	return s.toResponse(equipmentType), nil
}

// GetByID retrieves an equipment type by ID
func (s *EquipmentTypeService) GetByID(id uint) (*EquipmentTypeResponse, error) {
	equipmentType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentTypeNotFound
		}
		return nil, fmt.Errorf("failed to get equipment type: %w", err)
	}

	return s.toResponse(equipmentType), nil
}

// List retrieves equipment types ordered by name
func (s *EquipmentTypeService) List(search string) ([]EquipmentTypeResponse, error) {
	types, err := s.repo.List(search)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment types: %w", err)
	}

	responses := make([]EquipmentTypeResponse, len(types))
	for i, t := range types {
		responses[i] = *s.toResponse(&t)
	}
	return responses, nil
}

// Update updates an equipment type
func (s *EquipmentTypeService) Update(id uint, req *UpdateEquipmentTypeRequest) (*EquipmentTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	equipmentType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentTypeNotFound
		}
		return nil, fmt.Errorf("failed to get equipment type: %w", err)
	}

	equipmentType.Name = req.Name
	equipmentType.LifecycleYears = req.LifecycleYears
	if err := s.repo.Update(equipmentType); err != nil {
		return nil, fmt.Errorf("failed to update equipment type: %w", err)
	}

	return s.toResponse(equipmentType), nil
}

// Delete deletes an equipment type; rejected while equipment or components use it
func (s *EquipmentTypeService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentTypeNotFound
		}
		return fmt.Errorf("failed to get equipment type: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete equipment type: %w", err)
	}
	return nil
}

// toResponse converts an equipment type model to response
func (s *EquipmentTypeService) toResponse(equipmentType *models.EquipmentType) *EquipmentTypeResponse {
	return &EquipmentTypeResponse{
		ID:             equipmentType.ID,
		Name:           equipmentType.Name,
		LifecycleYears: equipmentType.LifecycleYears,
		CreatedAt:      equipmentType.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      equipmentType.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
