package models

// Association ties one equipment, one component and one spare part together
// with the quantity of the part the component requires. It is the central
// many-to-many fact table of the registry.
type Association struct {
	Model
	EquipmentID uint `json:"equipmentId" gorm:"not null;index;uniqueIndex:idx_equipment_component_spare_part" validate:"required"`
	ComponentID uint `json:"componentId" gorm:"not null;index;uniqueIndex:idx_equipment_component_spare_part" validate:"required"`
	SparePartID uint `json:"sparePartId" gorm:"not null;index;uniqueIndex:idx_equipment_component_spare_part" validate:"required"`
	Quantity    int  `json:"quantity" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:RESTRICT"`
	SparePart *SparePart `json:"sparePart,omitempty" gorm:"foreignKey:SparePartID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Association
func (Association) TableName() string {
	return "equipment_component_spare_part"
}
