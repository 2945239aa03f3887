package service

import (
	"errors"
	"fmt"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/repository"

	"gorm.io/gorm"
)

// HierarchyService assembles the nested tree views of the registry:
// base -> workshops -> equipment, and equipment -> components -> spare parts.
type HierarchyService struct {
	baseRepo        repository.BaseRepositoryInterface
	workshopRepo    repository.WorkshopRepositoryInterface
	equipmentRepo   repository.EquipmentRepositoryInterface
	associationRepo repository.AssociationRepositoryInterface
}

// Ensure HierarchyService implements HierarchyServiceInterface
var _ HierarchyServiceInterface = (*HierarchyService)(nil)

// NewHierarchyService creates a new hierarchy service
func NewHierarchyService(
	baseRepo repository.BaseRepositoryInterface,
	workshopRepo repository.WorkshopRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	associationRepo repository.AssociationRepositoryInterface,
) *HierarchyService {
	return &HierarchyService{
		baseRepo:        baseRepo,
		workshopRepo:    workshopRepo,
		equipmentRepo:   equipmentRepo,
		associationRepo: associationRepo,
	}
}

// EquipmentNode is a leaf of the base tree
type EquipmentNode struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	TypeID uint   `json:"typeId"`
}

// WorkshopNode is a workshop with its equipment
type WorkshopNode struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	BusyLevel models.BusyLevel `json:"busyLevel"`
	Equipment []EquipmentNode  `json:"equipment"`
}

// BaseTreeResponse is the full base -> workshop -> equipment tree
type BaseTreeResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Workshops []WorkshopNode `json:"workshops"`
}

// SparePartNode is a leaf of the equipment tree, carrying the association
// quantity and the supply cycles of the part's suppliers
type SparePartNode struct {
	ID           uint               `json:"id"`
	MaterialCode string             `json:"materialCode"`
	Description  string             `json:"description,omitempty"`
	IsCustom     bool               `json:"isCustom"`
	Quantity     int                `json:"quantity"`
	Suppliers    []SupplierResponse `json:"suppliers,omitempty"`
}

// ComponentNode groups the spare parts of one component of the equipment
type ComponentNode struct {
	ID              uint                   `json:"id"`
	Name            string                 `json:"name"`
	ImportanceLevel models.ImportanceLevel `json:"importanceLevel"`
	SpareParts      []SparePartNode        `json:"spareParts"`
}

// EquipmentTreeResponse is the equipment -> component -> spare part tree
type EquipmentTreeResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	WorkshopID   uint            `json:"workshopId"`
	WorkshopName string          `json:"workshopName,omitempty"`
	TypeID       uint            `json:"typeId"`
	TypeName     string          `json:"typeName,omitempty"`
	Components   []ComponentNode `json:"components"`
}

// BaseTree assembles the base -> workshops -> equipment tree for one base
func (s *HierarchyService) BaseTree(baseID uint) (*BaseTreeResponse, error) {
	base, err := s.baseRepo.GetByID(baseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, fmt.Errorf("failed to get base: %w", err)
	}

	workshops, err := s.workshopRepo.ListByBaseID(baseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	tree := &BaseTreeResponse{
		ID:        base.ID,
		Name:      base.Name,
		Workshops: make([]WorkshopNode, 0, len(workshops)),
	}
	for _, workshop := range workshops {
		equipment, err := s.equipmentRepo.ListByWorkshopID(workshop.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list equipment of workshop %d: %w", workshop.ID, err)
		}
		node := WorkshopNode{
			ID:        workshop.ID,
			Name:      workshop.Name,
			BusyLevel: workshop.BusyLevel,
			Equipment: make([]EquipmentNode, 0, len(equipment)),
		}
		for _, item := range equipment {
			node.Equipment = append(node.Equipment, EquipmentNode{
				ID:     item.ID,
				Name:   item.Name,
				TypeID: item.EquipmentTypeID,
			})
		}
		tree.Workshops = append(tree.Workshops, node)
	}
	return tree, nil
}

// EquipmentTree assembles the equipment -> components -> spare parts tree for
// one equipment. Components appear in first-association order; each spare part
// leaf carries its association quantity and its suppliers' supply cycles.
func (s *HierarchyService) EquipmentTree(equipmentID uint) (*EquipmentTreeResponse, error) {
	equipment, err := s.equipmentRepo.GetWithRelations(equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	associations, err := s.associationRepo.ListByEquipmentID(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}

	tree := &EquipmentTreeResponse{
		ID:         equipment.ID,
		Name:       equipment.Name,
		WorkshopID: equipment.WorkshopID,
		TypeID:     equipment.EquipmentTypeID,
		Components: make([]ComponentNode, 0),
	}
	if equipment.Workshop != nil {
		tree.WorkshopName = equipment.Workshop.Name
	}
	if equipment.EquipmentType != nil {
		tree.TypeName = equipment.EquipmentType.Name
	}

	nodeIndex := make(map[uint]int)
	for _, association := range associations {
		if association.Component == nil || association.SparePart == nil {
			continue
		}
		idx, ok := nodeIndex[association.ComponentID]
		if !ok {
			tree.Components = append(tree.Components, ComponentNode{
				ID:              association.Component.ID,
				Name:            association.Component.Name,
				ImportanceLevel: association.Component.ImportanceLevel,
				SpareParts:      make([]SparePartNode, 0, 1),
			})
			idx = len(tree.Components) - 1
			nodeIndex[association.ComponentID] = idx
		}

		leaf := SparePartNode{
			ID:           association.SparePart.ID,
			MaterialCode: association.SparePart.MaterialCode,
			Description:  association.SparePart.Description,
			IsCustom:     association.SparePart.IsCustom,
			Quantity:     association.Quantity,
		}
		if len(association.SparePart.Suppliers) > 0 {
			leaf.Suppliers = make([]SupplierResponse, len(association.SparePart.Suppliers))
			for i, supplier := range association.SparePart.Suppliers {
				leaf.Suppliers[i] = supplierToResponse(&supplier)
			}
		}
		tree.Components[idx].SpareParts = append(tree.Components[idx].SpareParts, leaf)
	}
	return tree, nil
}
