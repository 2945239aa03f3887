package models

// Workshop represents an operational unit inside a base
type Workshop struct {
	Model
	BaseID    uint      `json:"baseId" gorm:"not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	BusyLevel BusyLevel `json:"busyLevel" gorm:"not null;default:2" validate:"min=1,max=4"`

	// Relationships
	Base      *Base       `json:"base,omitempty" gorm:"foreignKey:BaseID;constraint:OnDelete:RESTRICT"`
	Equipment []Equipment `json:"equipment,omitempty" gorm:"foreignKey:WorkshopID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Workshop
func (Workshop) TableName() string {
	return "workshops"
}
