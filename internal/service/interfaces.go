package service

import "maintenance-registry-backend/internal/database/models"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BaseServiceInterface defines the contract for base business logic
type BaseServiceInterface interface {
	Create(req *CreateBaseRequest) (*BaseResponse, error)
	GetByID(id uint) (*BaseResponse, error)
	List(search string) ([]BaseResponse, error)
	Update(id uint, req *UpdateBaseRequest) (*BaseResponse, error)
	Delete(id uint) error
}

// WorkshopServiceInterface defines the contract for workshop business logic
type WorkshopServiceInterface interface {
	Create(req *CreateWorkshopRequest) (*WorkshopResponse, error)
	GetByID(id uint) (*WorkshopResponse, error)
	List(baseID *uint, search string) ([]WorkshopResponse, error)
	Update(id uint, req *UpdateWorkshopRequest) (*WorkshopResponse, error)
	Delete(id uint) error
}

// EquipmentTypeServiceInterface defines the contract for equipment type business logic
type EquipmentTypeServiceInterface interface {
	Create(req *CreateEquipmentTypeRequest) (*EquipmentTypeResponse, error)
	GetByID(id uint) (*EquipmentTypeResponse, error)
	List(search string) ([]EquipmentTypeResponse, error)
	Update(id uint, req *UpdateEquipmentTypeRequest) (*EquipmentTypeResponse, error)
	Delete(id uint) error
}

// EquipmentServiceInterface defines the contract for equipment business logic
type EquipmentServiceInterface interface {
	Create(req *CreateEquipmentRequest) (*EquipmentResponse, error)
	GetByID(id uint) (*EquipmentResponse, error)
	List(query ListEquipmentQuery) (*EquipmentListResponse, error)
	Update(id uint, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
	Delete(id uint) error
}

// ComponentServiceInterface defines the contract for component business logic
type ComponentServiceInterface interface {
	Create(req *CreateComponentRequest) (*ComponentResponse, error)
	GetByID(id uint) (*ComponentResponse, error)
	List(typeID *uint, importanceLevels []models.ImportanceLevel, search string) ([]ComponentResponse, error)
	Update(id uint, req *UpdateComponentRequest) (*ComponentResponse, error)
	Delete(id uint) error
}

// SparePartServiceInterface defines the contract for spare part business logic
type SparePartServiceInterface interface {
	Create(req *CreateSparePartRequest) (*SparePartResponse, error)
	GetByID(id uint) (*SparePartResponse, error)
	List(isCustom *bool, search string) ([]SparePartResponse, error)
	Update(id uint, req *UpdateSparePartRequest) (*SparePartResponse, error)
	Delete(id uint) error
}

// SupplierServiceInterface defines the contract for supplier business logic
type SupplierServiceInterface interface {
	Create(req *CreateSupplierRequest) (*SupplierResponse, error)
	GetByID(id uint) (*SupplierResponse, error)
	List(sparePartID *uint) ([]SupplierResponse, error)
	Update(id uint, req *UpdateSupplierRequest) (*SupplierResponse, error)
	Delete(id uint) error
}

// AssociationServiceInterface defines the contract for association business logic
type AssociationServiceInterface interface {
	Create(req *CreateAssociationRequest) (*AssociationResponse, error)
	GetByID(id uint) (*AssociationResponse, error)
	List(query ListAssociationQuery) ([]AssociationResponse, error)
	Update(id uint, req *UpdateAssociationRequest) (*AssociationResponse, error)
	Delete(id uint) error
}

// HierarchyServiceInterface defines the contract for hierarchy tree assembly
type HierarchyServiceInterface interface {
	BaseTree(baseID uint) (*BaseTreeResponse, error)
	EquipmentTree(equipmentID uint) (*EquipmentTreeResponse, error)
}

// DashboardServiceInterface defines the contract for dashboard statistics
type DashboardServiceInterface interface {
	Stats() (*DashboardStatsResponse, error)
}
