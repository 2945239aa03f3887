package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// EquipmentTypeRepository handles database operations for equipment types
type EquipmentTypeRepository struct {
	db *gorm.DB
}

// NewEquipmentTypeRepository creates a new equipment type repository
func NewEquipmentTypeRepository(db *gorm.DB) *EquipmentTypeRepository {
	return &EquipmentTypeRepository{db: db}
}

// Create creates a new equipment type
func (r *EquipmentTypeRepository) Create(equipmentType *models.EquipmentType) error {
	return r.db.Create(equipmentType).Error
}

// GetByID retrieves an equipment type by ID
func (r *EquipmentTypeRepository) GetByID(id uint) (*models.EquipmentType, error) {
	var equipmentType models.EquipmentType
	err := r.db.First(&equipmentType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipmentType, nil
}

// List retrieves equipment types ordered by name, optionally filtered by a name substring
func (r *EquipmentTypeRepository) List(search string) ([]models.EquipmentType, error) {
	var types []models.EquipmentType
	query := r.db.Model(&models.EquipmentType{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// Update updates an equipment type
func (r *EquipmentTypeRepository) Update(equipmentType *models.EquipmentType) error {
	return r.db.Save(equipmentType).Error
}

// Delete deletes an equipment type; rejected while equipment or components reference it
func (r *EquipmentTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.EquipmentType{}, "id = ?", id).Error
}
