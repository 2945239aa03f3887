package repository

import (
	"fmt"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"

	"gorm.io/gorm"
)

// EquipmentListParams carries the filter, sort and pagination arguments of
// the equipment listing query.
type EquipmentListParams struct {
	WorkshopID *uint
	TypeID     *uint
	BaseID     *uint
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// EquipmentRow is one row of the joined equipment listing, carrying the
// human-readable workshop, type and base names alongside the equipment itself.
type EquipmentRow struct {
	models.Equipment
	WorkshopName string `gorm:"column:workshop_name"`
	TypeName     string `gorm:"column:type_name"`
	BaseID       uint   `gorm:"column:base_id"`
	BaseName     string `gorm:"column:base_name"`
}

// sortColumns whitelists the sortable fields of the equipment listing.
var sortColumns = map[string]string{
	"id":           "equipment.id",
	"name":         "equipment.name",
	"workshopName": "workshops.name",
	"typeName":     "equipment_types.name",
	"baseName":     "bases.name",
	"createdAt":    "equipment.created_at",
}

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new equipment record
func (r *EquipmentRepository) Create(equipment *models.Equipment) error {
	return r.db.Create(equipment).Error
}

// GetByID retrieves an equipment record by ID
func (r *EquipmentRepository) GetByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetWithRelations retrieves an equipment record with its workshop (and the
// workshop's base) and equipment type preloaded
func (r *EquipmentRepository) GetWithRelations(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.
		Preload("Workshop").
		Preload("Workshop.Base").
		Preload("EquipmentType").
		First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// List retrieves a page of equipment with workshop/type/base names resolved
// through inner joins, plus the filter-applied total row count.
func (r *EquipmentRepository) List(params EquipmentListParams) ([]EquipmentRow, int64, error) {
	query := r.db.Model(&models.Equipment{}).
		Joins("INNER JOIN workshops ON workshops.id = equipment.workshop_id").
		Joins("INNER JOIN equipment_types ON equipment_types.id = equipment.equipment_type_id").
		Joins("INNER JOIN bases ON bases.id = workshops.base_id")

	if params.WorkshopID != nil {
		query = query.Where("equipment.workshop_id = ?", *params.WorkshopID)
	}
	if params.TypeID != nil {
		query = query.Where("equipment.equipment_type_id = ?", *params.TypeID)
	}
	if params.BaseID != nil {
		query = query.Where("workshops.base_id = ?", *params.BaseID)
	}
	if params.Search != "" {
		query = query.Where("equipment.name ILIKE ?", "%"+params.Search+"%")
	}

	// Count with filters applied, before ordering and pagination
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidSortField, params.SortBy)
	}
	direction := "ASC"
	if params.SortOrder == "desc" {
		direction = "DESC"
	}

	var rows []EquipmentRow
	err := query.
		Select("equipment.*, workshops.name AS workshop_name, equipment_types.name AS type_name, bases.id AS base_id, bases.name AS base_name").
		Order(fmt.Sprintf("%s %s", column, direction)).
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListByWorkshopID retrieves all equipment located in a workshop
func (r *EquipmentRepository) ListByWorkshopID(workshopID uint) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := r.db.
		Preload("EquipmentType").
		Where("workshop_id = ?", workshopID).
		Order("name ASC").
		Find(&equipment).Error
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

// Update updates an equipment record
func (r *EquipmentRepository) Update(equipment *models.Equipment) error {
	return r.db.Save(equipment).Error
}

// Delete deletes an equipment record; rejected while associations reference it
func (r *EquipmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Equipment{}, "id = ?", id).Error
}
