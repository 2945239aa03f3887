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

// SupplierService handles business logic for spare part suppliers
type SupplierService struct {
	repo          repository.SupplierRepositoryInterface
	sparePartRepo repository.SparePartRepositoryInterface
	validator     *validator.Validate
}

// Ensure SupplierService implements SupplierServiceInterface
var _ SupplierServiceInterface = (*SupplierService)(nil)

// NewSupplierService creates a new supplier service
func NewSupplierService(repo repository.SupplierRepositoryInterface, sparePartRepo repository.SparePartRepositoryInterface, validator *validator.Validate) *SupplierService {
	return &SupplierService{
		repo:          repo,
		sparePartRepo: sparePartRepo,
		validator:     validator,
	}
}

// CreateSupplierRequest represents the request to create a supplier
type CreateSupplierRequest struct {
	SparePartID      uint   `json:"sparePartId" validate:"required"`
	SupplierName     string `json:"supplierName" validate:"required,min=1,max=100"`
	SupplyCycleWeeks int    `json:"supplyCycleWeeks" validate:"min=0"`
}

// UpdateSupplierRequest represents the request to update a supplier
type UpdateSupplierRequest struct {
	SupplierName     string `json:"supplierName" validate:"required,min=1,max=100"`
	SupplyCycleWeeks int    `json:"supplyCycleWeeks" validate:"min=0"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID               uint   `json:"id"`
	SparePartID      uint   `json:"sparePartId"`
	SupplierName     string `json:"supplierName"`
	SupplyCycleWeeks int    `json:"supplyCycleWeeks"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// Create creates a new supplier for an existing spare part
func (s *SupplierService) Create(req *CreateSupplierRequest) (*SupplierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.sparePartRepo.GetByID(req.SparePartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("failed to verify spare part: %w", err)
	}

	supplier := &models.SparePartSupplier{
		SparePartID:      req.SparePartID,
		SupplierName:     req.SupplierName,
		SupplyCycleWeeks: req.SupplyCycleWeeks,
	}
	if err := s.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	resp := supplierToResponse(supplier)
	return &resp, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(id uint) (*SupplierResponse, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	resp := supplierToResponse(supplier)
	return &resp, nil
}

// List retrieves suppliers, optionally filtered by spare part
func (s *SupplierService) List(sparePartID *uint) ([]SupplierResponse, error) {
	suppliers, err := s.repo.List(sparePartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = supplierToResponse(&supplier)
	}
	return responses, nil
}

// Update updates a supplier
func (s *SupplierService) Update(id uint, req *UpdateSupplierRequest) (*SupplierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	supplier.SupplierName = req.SupplierName
	supplier.SupplyCycleWeeks = req.SupplyCycleWeeks
	if err := s.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	resp := supplierToResponse(supplier)
	return &resp, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSupplierNotFound
		}
		return fmt.Errorf("failed to get supplier: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}

// supplierToResponse converts a supplier model to response
func supplierToResponse(supplier *models.SparePartSupplier) SupplierResponse {
	return SupplierResponse{
		ID:               supplier.ID,
		SparePartID:      supplier.SparePartID,
		SupplierName:     supplier.SupplierName,
		SupplyCycleWeeks: supplier.SupplyCycleWeeks,
		CreatedAt:        supplier.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        supplier.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
