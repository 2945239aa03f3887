package models

// Base represents a top-level manufacturing site, the root of the location hierarchy
type Base struct {
	Model
	Name string `json:"name" gorm:"not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Workshops []Workshop `json:"workshops,omitempty" gorm:"foreignKey:BaseID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Base
func (Base) TableName() string {
	return "bases"
}
