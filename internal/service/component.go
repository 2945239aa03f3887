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

// ComponentService handles business logic for components
type ComponentService struct {
	repo      repository.ComponentRepositoryInterface
	typeRepo  repository.EquipmentTypeRepositoryInterface
	validator *validator.Validate
}

// Ensure ComponentService implements ComponentServiceInterface
var _ ComponentServiceInterface = (*ComponentService)(nil)

// NewComponentService creates a new component service
func NewComponentService(repo repository.ComponentRepositoryInterface, typeRepo repository.EquipmentTypeRepositoryInterface, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:      repo,
		typeRepo:  typeRepo,
		validator: validator,
	}
}

// CreateComponentRequest represents the request to create a component
type CreateComponentRequest struct {
	EquipmentTypeID uint                   `json:"equipmentTypeId" validate:"required"`
	Name            string                 `json:"name" validate:"required,min=1,max=100"`
	ImportanceLevel models.ImportanceLevel `json:"importanceLevel" validate:"omitempty,oneof=A B C"`
	FailureRate     *float64               `json:"failureRate,omitempty" validate:"omitempty,min=0,max=100"`
	LifecycleYears  *int                   `json:"lifecycleYears,omitempty" validate:"omitempty,min=0"`
}

// UpdateComponentRequest represents the request to update a component
type UpdateComponentRequest struct {
	EquipmentTypeID *uint                   `json:"equipmentTypeId,omitempty"`
	Name            string                  `json:"name" validate:"required,min=1,max=100"`
	ImportanceLevel *models.ImportanceLevel `json:"importanceLevel,omitempty" validate:"omitempty,oneof=A B C"`
	FailureRate     *float64                `json:"failureRate,omitempty" validate:"omitempty,min=0,max=100"`
	LifecycleYears  *int                    `json:"lifecycleYears,omitempty" validate:"omitempty,min=0"`
}

// ComponentResponse represents a component in API responses
type ComponentResponse struct {
	ID              uint                   `json:"id"`
	EquipmentTypeID uint                   `json:"equipmentTypeId"`
	TypeName        string                 `json:"typeName,omitempty"`
	Name            string                 `json:"name"`
	ImportanceLevel models.ImportanceLevel `json:"importanceLevel"`
	FailureRate     *float64               `json:"failureRate,omitempty"`
	LifecycleYears  *int                   `json:"lifecycleYears,omitempty"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}

// Create creates a new component under an existing equipment type
func (s *ComponentService) Create(req *CreateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.typeRepo.GetByID(req.EquipmentTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment type: %w", err)
	}

	importance := req.ImportanceLevel
	if importance == "" {
		importance = models.ImportanceLevelNormal
	}

	component := &models.Component{
		EquipmentTypeID: req.EquipmentTypeID,
		Name:            req.Name,
		ImportanceLevel: importance,
		FailureRate:     req.FailureRate,
		LifecycleYears:  req.LifecycleYears,
	}
	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return s.GetByID(component.ID)
}

// GetByID retrieves a component by ID
func (s *ComponentService) GetByID(id uint) (*ComponentResponse, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	return s.toResponse(component), nil
}

// List retrieves components, optionally filtered by type, importance levels and name substring
func (s *ComponentService) List(typeID *uint, importanceLevels []models.ImportanceLevel, search string) ([]ComponentResponse, error) {
	for _, level := range importanceLevels {
		if !level.IsValid() {
			return nil, apperrors.NewValidationError("importanceLevel", fmt.Sprintf("unknown importance level %q", level))
		}
	}

	components, err := s.repo.List(typeID, importanceLevels, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i, component := range components {
		responses[i] = *s.toResponse(&component)
	}
	return responses, nil
}

// Update updates a component
func (s *ComponentService) Update(id uint, req *UpdateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	if req.EquipmentTypeID != nil && *req.EquipmentTypeID != component.EquipmentTypeID {
		if _, err := s.typeRepo.GetByID(*req.EquipmentTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEquipmentTypeNotFound
			}
			return nil, fmt.Errorf("failed to verify equipment type: %w", err)
		}
		component.EquipmentTypeID = *req.EquipmentTypeID
		component.EquipmentType = nil
	}

	component.Name = req.Name
	if req.ImportanceLevel != nil {
		component.ImportanceLevel = *req.ImportanceLevel
	}
	component.FailureRate = req.FailureRate
	component.LifecycleYears = req.LifecycleYears

	if err := s.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return s.GetByID(component.ID)
}

// Delete deletes a component; rejected while associations reference it
func (s *ComponentService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrComponentNotFound
		}
		return fmt.Errorf("failed to get component: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	return nil
}

// toResponse converts a component model to response
func (s *ComponentService) toResponse(component *models.Component) *ComponentResponse {
	resp := &ComponentResponse{
		ID:              component.ID,
		EquipmentTypeID: component.EquipmentTypeID,
		Name:            component.Name,
		ImportanceLevel: component.ImportanceLevel,
		FailureRate:     component.FailureRate,
		LifecycleYears:  component.LifecycleYears,
		CreatedAt:       component.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       component.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if component.EquipmentType != nil {
		resp.TypeName = component.EquipmentType.Name
	}
	return resp
}
