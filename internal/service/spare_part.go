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

// SparePartService handles business logic for spare parts
type SparePartService struct {
	repo      repository.SparePartRepositoryInterface
	validator *validator.Validate
}

// Ensure SparePartService implements SparePartServiceInterface
var _ SparePartServiceInterface = (*SparePartService)(nil)

// NewSparePartService creates a new spare part service
func NewSparePartService(repo repository.SparePartRepositoryInterface, validator *validator.Validate) *SparePartService {
	return &SparePartService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSparePartRequest represents the request to create a spare part
type CreateSparePartRequest struct {
	MaterialCode     string `json:"materialCode" validate:"required,min=1,max=100"`
	Manufacturer     string `json:"manufacturer" validate:"max=100"`
	ManufacturerCode string `json:"manufacturerCode,omitempty" validate:"max=100"`
	Specification    string `json:"specification,omitempty" validate:"max=200"`
	Description      string `json:"description,omitempty"`
	IsCustom         bool   `json:"isCustom"`
}

// UpdateSparePartRequest represents the request to update a spare part
type UpdateSparePartRequest struct {
	MaterialCode     string `json:"materialCode" validate:"required,min=1,max=100"`
	Manufacturer     string `json:"manufacturer" validate:"max=100"`
	ManufacturerCode string `json:"manufacturerCode,omitempty" validate:"max=100"`
	Specification    string `json:"specification,omitempty" validate:"max=200"`
	Description      string `json:"description,omitempty"`
	IsCustom         *bool  `json:"isCustom,omitempty"`
}

// SparePartResponse represents a spare part in API responses
type SparePartResponse struct {
	ID               uint               `json:"id"`
	MaterialCode     string             `json:"materialCode"`
	Manufacturer     string             `json:"manufacturer,omitempty"`
	ManufacturerCode string             `json:"manufacturerCode,omitempty"`
	Specification    string             `json:"specification,omitempty"`
	Description      string             `json:"description,omitempty"`
	IsCustom         bool               `json:"isCustom"`
	Suppliers        []SupplierResponse `json:"suppliers,omitempty"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
}

// Create creates a new spare part; the material code must be unique
func (s *SparePartService) Create(req *CreateSparePartRequest) (*SparePartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByMaterialCode(req.MaterialCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing spare part: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSparePartExists
	}

	sparePart := &models.SparePart{
		MaterialCode:     req.MaterialCode,
		Manufacturer:     req.Manufacturer,
		ManufacturerCode: req.ManufacturerCode,
		Specification:    req.Specification,
		Description:      req.Description,
		IsCustom:         req.IsCustom,
	}
	if err := s.repo.Create(sparePart); err != nil {
		return nil, fmt.Errorf("failed to create spare part: %w", err)
	}

	return s.toResponse(sparePart), nil
}

// GetByID retrieves a spare part by ID
func (s *SparePartService) GetByID(id uint) (*SparePartResponse, error) {
	sparePart, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("failed to get spare part: %w", err)
	}

	return s.toResponse(sparePart), nil
}

// List retrieves spare parts, optionally filtered by the custom flag and a text search
func (s *SparePartService) List(isCustom *bool, search string) ([]SparePartResponse, error) {
	parts, err := s.repo.List(isCustom, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list spare parts: %w", err)
	}

	responses := make([]SparePartResponse, len(parts))
	for i, part := range parts {
		responses[i] = *s.toResponse(&part)
	}
	return responses, nil
}

// Update updates a spare part, keeping the material code unique
func (s *SparePartService) Update(id uint, req *UpdateSparePartRequest) (*SparePartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	sparePart, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("failed to get spare part: %w", err)
	}

	if req.MaterialCode != sparePart.MaterialCode {
		existing, err := s.repo.GetByMaterialCode(req.MaterialCode)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing spare part: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrSparePartExists
		}
	}

	sparePart.MaterialCode = req.MaterialCode
	sparePart.Manufacturer = req.Manufacturer
	sparePart.ManufacturerCode = req.ManufacturerCode
	sparePart.Specification = req.Specification
	sparePart.Description = req.Description
	if req.IsCustom != nil {
		sparePart.IsCustom = *req.IsCustom
	}

	if err := s.repo.Update(sparePart); err != nil {
		return nil, fmt.Errorf("failed to update spare part: %w", err)
	}

	return s.toResponse(sparePart), nil
}

// Delete deletes a spare part; rejected while suppliers or associations reference it
func (s *SparePartService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSparePartNotFound
		}
		return fmt.Errorf("failed to get spare part: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete spare part: %w", err)
	}
	return nil
}

// toResponse converts a spare part model to response
func (s *SparePartService) toResponse(sparePart *models.SparePart) *SparePartResponse {
	resp := &SparePartResponse{
		ID:               sparePart.ID,
		MaterialCode:     sparePart.MaterialCode,
		Manufacturer:     sparePart.Manufacturer,
		ManufacturerCode: sparePart.ManufacturerCode,
		Specification:    sparePart.Specification,
		Description:      sparePart.Description,
		IsCustom:         sparePart.IsCustom,
		CreatedAt:        sparePart.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        sparePart.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if len(sparePart.Suppliers) > 0 {
		resp.Suppliers = make([]SupplierResponse, len(sparePart.Suppliers))
		for i, supplier := range sparePart.Suppliers {
			resp.Suppliers[i] = supplierToResponse(&supplier)
		}
	}
	return resp
}
