package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// SupplierRepository handles database operations for spare part suppliers
type SupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create creates a new supplier
func (r *SupplierRepository) Create(supplier *models.SparePartSupplier) error {
	return r.db.Create(supplier).Error
}

// GetByID retrieves a supplier by ID with its spare part preloaded
func (r *SupplierRepository) GetByID(id uint) (*models.SparePartSupplier, error) {
	var supplier models.SparePartSupplier
	err := r.db.Preload("SparePart").First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List retrieves suppliers ordered by name, optionally filtered by spare part
func (r *SupplierRepository) List(sparePartID *uint) ([]models.SparePartSupplier, error) {
	var suppliers []models.SparePartSupplier
	query := r.db.Model(&models.SparePartSupplier{})
	if sparePartID != nil {
		query = query.Where("spare_part_id = ?", *sparePartID)
	}
	err := query.Order("supplier_name ASC").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Update updates a supplier
func (r *SupplierRepository) Update(supplier *models.SparePartSupplier) error {
	return r.db.Save(supplier).Error
}

// Delete deletes a supplier
func (r *SupplierRepository) Delete(id uint) error {
	return r.db.Delete(&models.SparePartSupplier{}, "id = ?", id).Error
}
