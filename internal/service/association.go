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

// AssociationService handles business logic for equipment-component-spare-part associations
type AssociationService struct {
	repo          repository.AssociationRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
	sparePartRepo repository.SparePartRepositoryInterface
	validator     *validator.Validate
}

// Ensure AssociationService implements AssociationServiceInterface
var _ AssociationServiceInterface = (*AssociationService)(nil)

// NewAssociationService creates a new association service
func NewAssociationService(
	repo repository.AssociationRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	componentRepo repository.ComponentRepositoryInterface,
	sparePartRepo repository.SparePartRepositoryInterface,
	validator *validator.Validate,
) *AssociationService {
	return &AssociationService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		componentRepo: componentRepo,
		sparePartRepo: sparePartRepo,
		validator:     validator,
	}
}

// CreateAssociationRequest represents the request to create an association
type CreateAssociationRequest struct {
	EquipmentID uint `json:"equipmentId" validate:"required"`
	ComponentID uint `json:"componentId" validate:"required"`
	SparePartID uint `json:"sparePartId" validate:"required"`
	Quantity    int  `json:"quantity" validate:"omitempty,min=1"`
}

// UpdateAssociationRequest represents the request to update an association
type UpdateAssociationRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ListAssociationQuery carries the query-string arguments of the association listing
type ListAssociationQuery struct {
	EquipmentID      *uint
	ComponentID      *uint
	SparePartID      *uint
	ImportanceLevels []models.ImportanceLevel
	SupplyCycleMin   *int
	SupplyCycleMax   *int
	IsCustom         *bool
	Keyword          string
}

// AssociationResponse represents an association in API responses
type AssociationResponse struct {
	ID              uint                   `json:"id"`
	EquipmentID     uint                   `json:"equipmentId"`
	EquipmentName   string                 `json:"equipmentName,omitempty"`
	ComponentID     uint                   `json:"componentId"`
	ComponentName   string                 `json:"componentName,omitempty"`
	ImportanceLevel models.ImportanceLevel `json:"importanceLevel,omitempty"`
	SparePartID     uint                   `json:"sparePartId"`
	MaterialCode    string                 `json:"materialCode,omitempty"`
	Description     string                 `json:"description,omitempty"`
	IsCustom        bool                   `json:"isCustom"`
	Quantity        int                    `json:"quantity"`
	Suppliers       []SupplierResponse     `json:"suppliers,omitempty"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}

// Create creates a new association between existing equipment, component and spare part
func (s *AssociationService) Create(req *CreateAssociationRequest) (*AssociationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.equipmentRepo.GetByID(req.EquipmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment: %w", err)
	}
	if _, err := s.componentRepo.GetByID(req.ComponentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to verify component: %w", err)
	}
	if _, err := s.sparePartRepo.GetByID(req.SparePartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("failed to verify spare part: %w", err)
	}

	existing, err := s.repo.GetByTriple(req.EquipmentID, req.ComponentID, req.SparePartID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing association: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAssociationExists
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	association := &models.Association{
		EquipmentID: req.EquipmentID,
		ComponentID: req.ComponentID,
		SparePartID: req.SparePartID,
		Quantity:    quantity,
	}
	if err := s.repo.Create(association); err != nil {
		return nil, fmt.Errorf("failed to create association: %w", err)
	}

	return s.GetByID(association.ID)
}

// GetByID retrieves an association by ID
func (s *AssociationService) GetByID(id uint) (*AssociationResponse, error) {
	association, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssociationNotFound
		}
		return nil, fmt.Errorf("failed to get association: %w", err)
	}

	return s.toResponse(association), nil
}

// List retrieves associations matching the advanced-search filters
func (s *AssociationService) List(query ListAssociationQuery) ([]AssociationResponse, error) {
	for _, level := range query.ImportanceLevels {
		if !level.IsValid() {
			return nil, apperrors.NewValidationError("importanceLevel", fmt.Sprintf("unknown importance level %q", level))
		}
	}
	if (query.SupplyCycleMin == nil) != (query.SupplyCycleMax == nil) {
		return nil, apperrors.NewValidationError("supplyCycleRange", "both bounds are required")
	}
	if query.SupplyCycleMin != nil && *query.SupplyCycleMin > *query.SupplyCycleMax {
		return nil, apperrors.NewValidationError("supplyCycleRange", "min must not exceed max")
	}

	associations, err := s.repo.List(repository.AssociationListParams{
		EquipmentID:      query.EquipmentID,
		ComponentID:      query.ComponentID,
		SparePartID:      query.SparePartID,
		ImportanceLevels: query.ImportanceLevels,
		SupplyCycleMin:   query.SupplyCycleMin,
		SupplyCycleMax:   query.SupplyCycleMax,
		IsCustom:         query.IsCustom,
		Keyword:          query.Keyword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}

	responses := make([]AssociationResponse, len(associations))
	for i, association := range associations {
		responses[i] = *s.toResponse(&association)
	}
	return responses, nil
}

// Update updates the quantity of an association
func (s *AssociationService) Update(id uint, req *UpdateAssociationRequest) (*AssociationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	association, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssociationNotFound
		}
		return nil, fmt.Errorf("failed to get association: %w", err)
	}

	association.Quantity = req.Quantity
	if err := s.repo.Update(association); err != nil {
		return nil, fmt.Errorf("failed to update association: %w", err)
	}

	return s.toResponse(association), nil
}

// Delete deletes an association
func (s *AssociationService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssociationNotFound
		}
		return fmt.Errorf("failed to get association: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete association: %w", err)
	}
	return nil
}

// toResponse converts an association model to response
func (s *AssociationService) toResponse(association *models.Association) *AssociationResponse {
	resp := &AssociationResponse{
		ID:          association.ID,
		EquipmentID: association.EquipmentID,
		ComponentID: association.ComponentID,
		SparePartID: association.SparePartID,
		Quantity:    association.Quantity,
		CreatedAt:   association.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   association.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if association.Equipment != nil {
		resp.EquipmentName = association.Equipment.Name
	}
	if association.Component != nil {
		resp.ComponentName = association.Component.Name
		resp.ImportanceLevel = association.Component.ImportanceLevel
	}
	if association.SparePart != nil {
		resp.MaterialCode = association.SparePart.MaterialCode
		resp.Description = association.SparePart.Description
		resp.IsCustom = association.SparePart.IsCustom
		if len(association.SparePart.Suppliers) > 0 {
			resp.Suppliers = make([]SupplierResponse, len(association.SparePart.Suppliers))
			for i, supplier := range association.SparePart.Suppliers {
				resp.Suppliers[i] = supplierToResponse(&supplier)
			}
		}
	}
	return resp
}
