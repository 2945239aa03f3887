package models

// EquipmentType is the shared classification axis for equipment and components
type EquipmentType struct {
	Model
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LifecycleYears *int   `json:"lifecycleYears,omitempty" gorm:"" validate:"omitempty,min=0"`

	// Relationships
	Equipment  []Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentTypeID;constraint:OnDelete:RESTRICT"`
	Components []Component `json:"components,omitempty" gorm:"foreignKey:EquipmentTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for EquipmentType
func (EquipmentType) TableName() string {
	return "equipment_types"
}
