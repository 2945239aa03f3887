package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// BaseRepository handles database operations for manufacturing bases
type BaseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *gorm.DB) *BaseRepository {
	return &BaseRepository{db: db}
}

// Create creates a new base
func (r *BaseRepository) Create(base *models.Base) error {
	return r.db.Create(base).Error
}

// GetByID retrieves a base by ID
func (r *BaseRepository) GetByID(id uint) (*models.Base, error) {
	var base models.Base
	err := r.db.First(&base, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// GetByName retrieves a base by its unique name
func (r *BaseRepository) GetByName(name string) (*models.Base, error) {
	var base models.Base
	err := r.db.First(&base, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// List retrieves all bases ordered by name, optionally filtered by a name substring
func (r *BaseRepository) List(search string) ([]models.Base, error) {
	var bases []models.Base
	query := r.db.Model(&models.Base{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Order("name ASC").Find(&bases).Error
	if err != nil {
		return nil, err
	}
	return bases, nil
}

// Update updates a base
func (r *BaseRepository) Update(base *models.Base) error {
	return r.db.Save(base).Error
}

// Delete deletes a base. The foreign key from workshops is RESTRICT, so the
// database rejects the delete while child workshops still reference the base.
func (r *BaseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Base{}, "id = ?", id).Error
}

// GetWithWorkshops retrieves a base with its workshops preloaded
func (r *BaseRepository) GetWithWorkshops(id uint) (*models.Base, error) {
	var base models.Base
	err := r.db.Preload("Workshops").First(&base, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}
