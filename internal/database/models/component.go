package models

// Component represents a part type belonging to an equipment type
type Component struct {
	Model
	EquipmentTypeID uint            `json:"equipmentTypeId" gorm:"not null;index" validate:"required"`
	Name            string          `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	ImportanceLevel ImportanceLevel `json:"importanceLevel" gorm:"not null;size:1;default:'B'" validate:"omitempty,oneof=A B C"`
	FailureRate     *float64        `json:"failureRate,omitempty" gorm:"" validate:"omitempty,min=0,max=100"`
	LifecycleYears  *int            `json:"lifecycleYears,omitempty" gorm:"" validate:"omitempty,min=0"`

	// Relationships
	EquipmentType *EquipmentType `json:"equipmentType,omitempty" gorm:"foreignKey:EquipmentTypeID;constraint:OnDelete:RESTRICT"`
	Associations  []Association  `json:"associations,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
