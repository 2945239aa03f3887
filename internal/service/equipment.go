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

// EquipmentService handles business logic for equipment
type EquipmentService struct {
	repo         repository.EquipmentRepositoryInterface
	workshopRepo repository.WorkshopRepositoryInterface
	typeRepo     repository.EquipmentTypeRepositoryInterface
	validator    *validator.Validate
}

// Ensure EquipmentService implements EquipmentServiceInterface
var _ EquipmentServiceInterface = (*EquipmentService)(nil)

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface, workshopRepo repository.WorkshopRepositoryInterface, typeRepo repository.EquipmentTypeRepositoryInterface, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{
		repo:         repo,
		workshopRepo: workshopRepo,
		typeRepo:     typeRepo,
		validator:    validator,
	}
}

// CreateEquipmentRequest represents the request to create equipment
type CreateEquipmentRequest struct {
	WorkshopID      uint   `json:"workshopId" validate:"required"`
	EquipmentTypeID uint   `json:"equipmentTypeId" validate:"required"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateEquipmentRequest represents the request to update equipment
type UpdateEquipmentRequest struct {
	WorkshopID      *uint  `json:"workshopId,omitempty"`
	EquipmentTypeID *uint  `json:"equipmentTypeId,omitempty"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
}

// ListEquipmentQuery carries the query-string arguments of the equipment listing
type ListEquipmentQuery struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	WorkshopID *uint
	TypeID     *uint
	BaseID     *uint
	Search     string
}

// EquipmentResponse represents equipment in API responses
type EquipmentResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	WorkshopID      uint   `json:"workshopId"`
	WorkshopName    string `json:"workshopName,omitempty"`
	EquipmentTypeID uint   `json:"equipmentTypeId"`
	TypeName        string `json:"typeName,omitempty"`
	BaseID          uint   `json:"baseId,omitempty"`
	BaseName        string `json:"baseName,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// PaginationMeta describes one page of a paginated listing
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// EquipmentListResponse represents a paginated equipment listing
type EquipmentListResponse struct {
	Data       []EquipmentResponse `json:"data"`
	Pagination PaginationMeta      `json:"pagination"`
}

// Create creates a new equipment record under an existing workshop and type
func (s *EquipmentService) Create(req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.workshopRepo.GetByID(req.WorkshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to verify workshop: %w", err)
	}
	if _, err := s.typeRepo.GetByID(req.EquipmentTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify equipment type: %w", err)
	}

	equipment := &models.Equipment{
		WorkshopID:      req.WorkshopID,
		EquipmentTypeID: req.EquipmentTypeID,
		Name:            req.Name,
	}
	if err := s.repo.Create(equipment); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	return s.GetByID(equipment.ID)
}

// GetByID retrieves an equipment record with resolved workshop/type/base names
func (s *EquipmentService) GetByID(id uint) (*EquipmentResponse, error) {
	equipment, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	resp := &EquipmentResponse{
		ID:              equipment.ID,
		Name:            equipment.Name,
		WorkshopID:      equipment.WorkshopID,
		EquipmentTypeID: equipment.EquipmentTypeID,
		CreatedAt:       equipment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       equipment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if equipment.Workshop != nil {
		resp.WorkshopName = equipment.Workshop.Name
		resp.BaseID = equipment.Workshop.BaseID
		if equipment.Workshop.Base != nil {
			resp.BaseName = equipment.Workshop.Base.Name
		}
	}
	if equipment.EquipmentType != nil {
		resp.TypeName = equipment.EquipmentType.Name
	}
	return resp, nil
}

// List retrieves a sorted, filtered page of equipment with pagination metadata
func (s *EquipmentService) List(query ListEquipmentQuery) (*EquipmentListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortOrder := query.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	rows, total, err := s.repo.List(repository.EquipmentListParams{
		WorkshopID: query.WorkshopID,
		TypeID:     query.TypeID,
		BaseID:     query.BaseID,
		Search:     query.Search,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortField) {
			return nil, apperrors.NewValidationError("sortBy", err.Error())
		}
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	data := make([]EquipmentResponse, len(rows))
	for i, row := range rows {
		data[i] = EquipmentResponse{
			ID:              row.ID,
			Name:            row.Name,
			WorkshopID:      row.WorkshopID,
			WorkshopName:    row.WorkshopName,
			EquipmentTypeID: row.EquipmentTypeID,
			TypeName:        row.TypeName,
			BaseID:          row.BaseID,
			BaseName:        row.BaseName,
			CreatedAt:       row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:       row.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &EquipmentListResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Update updates an equipment record
func (s *EquipmentService) Update(id uint, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	equipment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	if req.WorkshopID != nil && *req.WorkshopID != equipment.WorkshopID {
		if _, err := s.workshopRepo.GetByID(*req.WorkshopID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrWorkshopNotFound
			}
			return nil, fmt.Errorf("failed to verify workshop: %w", err)
		}
		equipment.WorkshopID = *req.WorkshopID
	}
	if req.EquipmentTypeID != nil && *req.EquipmentTypeID != equipment.EquipmentTypeID {
		if _, err := s.typeRepo.GetByID(*req.EquipmentTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrEquipmentTypeNotFound
			}
			return nil, fmt.Errorf("failed to verify equipment type: %w", err)
		}
		equipment.EquipmentTypeID = *req.EquipmentTypeID
	}
	equipment.Name = req.Name

	if err := s.repo.Update(equipment); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	return s.GetByID(equipment.ID)
}

// Delete deletes an equipment record; rejected while associations reference it
func (s *EquipmentService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentNotFound
		}
		return fmt.Errorf("failed to get equipment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}
