package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// SparePartRepository handles database operations for spare parts
type SparePartRepository struct {
	db *gorm.DB
}

// NewSparePartRepository creates a new spare part repository
func NewSparePartRepository(db *gorm.DB) *SparePartRepository {
	return &SparePartRepository{db: db}
}

// Create creates a new spare part
func (r *SparePartRepository) Create(sparePart *models.SparePart) error {
	return r.db.Create(sparePart).Error
}

// GetByID retrieves a spare part by ID with its suppliers preloaded
func (r *SparePartRepository) GetByID(id uint) (*models.SparePart, error) {
	var sparePart models.SparePart
	err := r.db.Preload("Suppliers").First(&sparePart, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sparePart, nil
}

// GetByMaterialCode retrieves a spare part by its unique material code
func (r *SparePartRepository) GetByMaterialCode(materialCode string) (*models.SparePart, error) {
	var sparePart models.SparePart
	err := r.db.First(&sparePart, "material_code = ?", materialCode).Error
	if err != nil {
		return nil, err
	}
	return &sparePart, nil
}

// List retrieves spare parts ordered by material code, optionally filtered by
// the custom-part flag and a text search across code, description and manufacturer
func (r *SparePartRepository) List(isCustom *bool, search string) ([]models.SparePart, error) {
	var parts []models.SparePart
	query := r.db.Model(&models.SparePart{}).Preload("Suppliers")
	if isCustom != nil {
		query = query.Where("is_custom = ?", *isCustom)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("material_code ILIKE ? OR description ILIKE ? OR manufacturer ILIKE ?", pattern, pattern, pattern)
	}
	err := query.Order("material_code ASC").Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// Update updates a spare part
func (r *SparePartRepository) Update(sparePart *models.SparePart) error {
	return r.db.Save(sparePart).Error
}

// Delete deletes a spare part; rejected while suppliers or associations reference it
func (r *SparePartRepository) Delete(id uint) error {
	return r.db.Delete(&models.SparePart{}, "id = ?", id).Error
}
