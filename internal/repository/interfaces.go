package repository

import (
	"maintenance-registry-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// BaseRepositoryInterface defines the interface for base repository operations
type BaseRepositoryInterface interface {
	Create(base *models.Base) error
	GetByID(id uint) (*models.Base, error)
	GetByName(name string) (*models.Base, error)
	List(search string) ([]models.Base, error)
	Update(base *models.Base) error
	Delete(id uint) error
	GetWithWorkshops(id uint) (*models.Base, error)
}

// WorkshopRepositoryInterface defines the interface for workshop repository operations
type WorkshopRepositoryInterface interface {
	Create(workshop *models.Workshop) error
	GetByID(id uint) (*models.Workshop, error)
	List(baseID *uint, search string) ([]models.Workshop, error)
	ListByBaseID(baseID uint) ([]models.Workshop, error)
	Update(workshop *models.Workshop) error
	Delete(id uint) error
}

// EquipmentTypeRepositoryInterface defines the interface for equipment type repository operations
type EquipmentTypeRepositoryInterface interface {
	Create(equipmentType *models.EquipmentType) error
	GetByID(id uint) (*models.EquipmentType, error)
	List(search string) ([]models.EquipmentType, error)
	Update(equipmentType *models.EquipmentType) error
	Delete(id uint) error
}

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(equipment *models.Equipment) error
	GetByID(id uint) (*models.Equipment, error)
	GetWithRelations(id uint) (*models.Equipment, error)
	List(params EquipmentListParams) ([]EquipmentRow, int64, error)
	ListByWorkshopID(workshopID uint) ([]models.Equipment, error)
	Update(equipment *models.Equipment) error
	Delete(id uint) error
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uint) (*models.Component, error)
	List(typeID *uint, importanceLevels []models.ImportanceLevel, search string) ([]models.Component, error)
	Update(component *models.Component) error
	Delete(id uint) error
}

// SparePartRepositoryInterface defines the interface for spare part repository operations
type SparePartRepositoryInterface interface {
	Create(sparePart *models.SparePart) error
	GetByID(id uint) (*models.SparePart, error)
	GetByMaterialCode(materialCode string) (*models.SparePart, error)
	List(isCustom *bool, search string) ([]models.SparePart, error)
	Update(sparePart *models.SparePart) error
	Delete(id uint) error
}

// SupplierRepositoryInterface defines the interface for spare part supplier repository operations
type SupplierRepositoryInterface interface {
	Create(supplier *models.SparePartSupplier) error
	GetByID(id uint) (*models.SparePartSupplier, error)
	List(sparePartID *uint) ([]models.SparePartSupplier, error)
	Update(supplier *models.SparePartSupplier) error
	Delete(id uint) error
}

// AssociationRepositoryInterface defines the interface for association repository operations
type AssociationRepositoryInterface interface {
	Create(association *models.Association) error
	GetByID(id uint) (*models.Association, error)
	GetByTriple(equipmentID, componentID, sparePartID uint) (*models.Association, error)
	List(params AssociationListParams) ([]models.Association, error)
	ListByEquipmentID(equipmentID uint) ([]models.Association, error)
	Update(association *models.Association) error
	Delete(id uint) error
}

// DashboardRepositoryInterface defines the interface for dashboard aggregate queries
type DashboardRepositoryInterface interface {
	EntityCounts() (*EntityCounts, error)
	WorkshopCountsByBusyLevel() (map[models.BusyLevel]int64, error)
	ComponentCountsByImportance() (map[models.ImportanceLevel]int64, error)
	SparePartCustomSplit() (custom int64, standard int64, err error)
}
