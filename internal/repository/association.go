package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// AssociationListParams carries the filter arguments of the association
// listing query, the backing query of the advanced search page.
type AssociationListParams struct {
	EquipmentID      *uint
	ComponentID      *uint
	SparePartID      *uint
	ImportanceLevels []models.ImportanceLevel
	SupplyCycleMin   *int
	SupplyCycleMax   *int
	IsCustom         *bool
	Keyword          string
}

// AssociationRepository handles database operations for equipment-component-spare-part associations
type AssociationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository creates a new association repository
func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// Create creates a new association
func (r *AssociationRepository) Create(association *models.Association) error {
	return r.db.Create(association).Error
}

// GetByID retrieves an association by ID with its three sides preloaded
func (r *AssociationRepository) GetByID(id uint) (*models.Association, error) {
	var association models.Association
	err := r.db.
		Preload("Equipment").
		Preload("Component").
		Preload("SparePart").
		Preload("SparePart.Suppliers").
		First(&association, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &association, nil
}

// GetByTriple retrieves the association of an exact equipment/component/spare-part triple
func (r *AssociationRepository) GetByTriple(equipmentID, componentID, sparePartID uint) (*models.Association, error) {
	var association models.Association
	err := r.db.First(&association,
		"equipment_id = ? AND component_id = ? AND spare_part_id = ?",
		equipmentID, componentID, sparePartID).Error
	if err != nil {
		return nil, err
	}
	return &association, nil
}

// List retrieves associations matching the advanced-search filters. Importance
// levels and the keyword reach across the joined component, equipment and
// spare part rows; the supply-cycle bound is an inclusive range over the
// suppliers of the associated spare part.
func (r *AssociationRepository) List(params AssociationListParams) ([]models.Association, error) {
	query := r.db.Model(&models.Association{}).
		Joins("INNER JOIN equipment ON equipment.id = equipment_component_spare_part.equipment_id").
		Joins("INNER JOIN components ON components.id = equipment_component_spare_part.component_id").
		Joins("INNER JOIN spare_parts ON spare_parts.id = equipment_component_spare_part.spare_part_id")

	if params.EquipmentID != nil {
		query = query.Where("equipment_component_spare_part.equipment_id = ?", *params.EquipmentID)
	}
	if params.ComponentID != nil {
		query = query.Where("equipment_component_spare_part.component_id = ?", *params.ComponentID)
	}
	if params.SparePartID != nil {
		query = query.Where("equipment_component_spare_part.spare_part_id = ?", *params.SparePartID)
	}
	if len(params.ImportanceLevels) > 0 {
		query = query.Where("components.importance_level IN ?", params.ImportanceLevels)
	}
	if params.SupplyCycleMin != nil && params.SupplyCycleMax != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM spare_part_suppliers s WHERE s.spare_part_id = spare_parts.id AND s.supply_cycle_weeks BETWEEN ? AND ?)",
			*params.SupplyCycleMin, *params.SupplyCycleMax)
	}
	if params.IsCustom != nil {
		query = query.Where("spare_parts.is_custom = ?", *params.IsCustom)
	}
	if params.Keyword != "" {
		pattern := "%" + params.Keyword + "%"
		query = query.Where(
			"spare_parts.material_code ILIKE ? OR spare_parts.description ILIKE ? OR spare_parts.specification ILIKE ? OR equipment.name ILIKE ? OR components.name ILIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	var associations []models.Association
	err := query.
		Select("equipment_component_spare_part.*").
		Preload("Equipment").
		Preload("Component").
		Preload("SparePart").
		Preload("SparePart.Suppliers").
		Order("equipment_component_spare_part.id ASC").
		Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

// ListByEquipmentID retrieves all associations of an equipment with components
// and spare parts (plus their suppliers) preloaded, for hierarchy assembly
func (r *AssociationRepository) ListByEquipmentID(equipmentID uint) ([]models.Association, error) {
	var associations []models.Association
	err := r.db.
		Preload("Component").
		Preload("SparePart").
		Preload("SparePart.Suppliers").
		Where("equipment_id = ?", equipmentID).
		Order("component_id ASC, spare_part_id ASC").
		Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

// Update updates an association
func (r *AssociationRepository) Update(association *models.Association) error {
	return r.db.Save(association).Error
}

// Delete deletes an association
func (r *AssociationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Association{}, "id = ?", id).Error
}
