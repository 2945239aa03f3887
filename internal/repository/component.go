package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID with its equipment type preloaded
func (r *ComponentRepository) GetByID(id uint) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("EquipmentType").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// List retrieves components ordered by name, optionally filtered by equipment
// type, importance levels and a name substring
func (r *ComponentRepository) List(typeID *uint, importanceLevels []models.ImportanceLevel, search string) ([]models.Component, error) {
	var components []models.Component
	query := r.db.Model(&models.Component{}).Preload("EquipmentType")
	if typeID != nil {
		query = query.Where("equipment_type_id = ?", *typeID)
	}
	if len(importanceLevels) > 0 {
		query = query.Where("importance_level IN ?", importanceLevels)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("name ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// Delete deletes a component; rejected while associations reference it
func (r *ComponentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Component{}, "id = ?", id).Error
}
