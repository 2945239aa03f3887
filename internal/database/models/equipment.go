package models

// Equipment represents a machine located in a workshop, classified by type
type Equipment struct {
	Model
	WorkshopID      uint   `json:"workshopId" gorm:"not null;index" validate:"required"`
	EquipmentTypeID uint   `json:"equipmentTypeId" gorm:"not null;index" validate:"required"`
	Name            string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Workshop      *Workshop      `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID;constraint:OnDelete:RESTRICT"`
	EquipmentType *EquipmentType `json:"equipmentType,omitempty" gorm:"foreignKey:EquipmentTypeID;constraint:OnDelete:RESTRICT"`
	Associations  []Association  `json:"associations,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
