package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// WorkshopRepository handles database operations for workshops
type WorkshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository creates a new workshop repository
func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

// Create creates a new workshop
func (r *WorkshopRepository) Create(workshop *models.Workshop) error {
	return r.db.Create(workshop).Error
}

// GetByID retrieves a workshop by ID with its base preloaded
func (r *WorkshopRepository) GetByID(id uint) (*models.Workshop, error) {
	var workshop models.Workshop
	err := r.db.Preload("Base").First(&workshop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

// List retrieves workshops ordered by name, optionally filtered by base and name substring
func (r *WorkshopRepository) List(baseID *uint, search string) ([]models.Workshop, error) {
	var workshops []models.Workshop
	query := r.db.Model(&models.Workshop{}).Preload("Base")
	if baseID != nil {
		query = query.Where("base_id = ?", *baseID)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("name ASC").Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}

// ListByBaseID retrieves all workshops belonging to a base
func (r *WorkshopRepository) ListByBaseID(baseID uint) ([]models.Workshop, error) {
	var workshops []models.Workshop
	err := r.db.Where("base_id = ?", baseID).Order("name ASC").Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}

// Update updates a workshop
func (r *WorkshopRepository) Update(workshop *models.Workshop) error {
	return r.db.Save(workshop).Error
}

// Delete deletes a workshop; rejected by the database while equipment references it
func (r *WorkshopRepository) Delete(id uint) error {
	return r.db.Delete(&models.Workshop{}, "id = ?", id).Error
}
