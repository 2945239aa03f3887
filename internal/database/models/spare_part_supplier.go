package models

// SparePartSupplier records a supplier for a spare part and its delivery lead time
type SparePartSupplier struct {
	Model
	SparePartID      uint   `json:"sparePartId" gorm:"not null;index" validate:"required"`
	SupplierName     string `json:"supplierName" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	SupplyCycleWeeks int    `json:"supplyCycleWeeks" gorm:"not null" validate:"min=0"`

	// Relationships
	SparePart *SparePart `json:"sparePart,omitempty" gorm:"foreignKey:SparePartID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for SparePartSupplier
func (SparePartSupplier) TableName() string {
	return "spare_part_suppliers"
}
