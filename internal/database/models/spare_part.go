package models

// SparePart represents a stocked material identified by its material code
type SparePart struct {
	Model
	MaterialCode     string `json:"materialCode" gorm:"not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`
	Manufacturer     string `json:"manufacturer" gorm:"size:100" validate:"max=100"`
	ManufacturerCode string `json:"manufacturerCode,omitempty" gorm:"size:100" validate:"max=100"`
	Specification    string `json:"specification,omitempty" gorm:"size:200" validate:"max=200"`
	Description      string `json:"description,omitempty" gorm:"type:text"`
	IsCustom         bool   `json:"isCustom" gorm:"not null;default:false"`

	// Relationships
	Suppliers    []SparePartSupplier `json:"suppliers,omitempty" gorm:"foreignKey:SparePartID;constraint:OnDelete:RESTRICT"`
	Associations []Association       `json:"associations,omitempty" gorm:"foreignKey:SparePartID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for SparePart
func (SparePart) TableName() string {
	return "spare_parts"
}
