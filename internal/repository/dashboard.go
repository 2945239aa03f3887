package repository

import (
	"maintenance-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// EntityCounts holds the row count of every registry table
type EntityCounts struct {
	Bases          int64 `json:"bases"`
	Workshops      int64 `json:"workshops"`
	EquipmentTypes int64 `json:"equipmentTypes"`
	Equipment      int64 `json:"equipment"`
	Components     int64 `json:"components"`
	SpareParts     int64 `json:"spareParts"`
	Suppliers      int64 `json:"suppliers"`
	Associations   int64 `json:"associations"`
}

// DashboardRepository runs the aggregate queries behind the dashboard
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// EntityCounts counts the rows of every registry table
func (r *DashboardRepository) EntityCounts() (*EntityCounts, error) {
	counts := &EntityCounts{}
	targets := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Base{}, &counts.Bases},
		{&models.Workshop{}, &counts.Workshops},
		{&models.EquipmentType{}, &counts.EquipmentTypes},
		{&models.Equipment{}, &counts.Equipment},
		{&models.Component{}, &counts.Components},
		{&models.SparePart{}, &counts.SpareParts},
		{&models.SparePartSupplier{}, &counts.Suppliers},
		{&models.Association{}, &counts.Associations},
	}
	for _, t := range targets {
		if err := r.db.Model(t.model).Count(t.dest).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// WorkshopCountsByBusyLevel counts workshops grouped by busy level
func (r *DashboardRepository) WorkshopCountsByBusyLevel() (map[models.BusyLevel]int64, error) {
	type row struct {
		BusyLevel models.BusyLevel
		Count     int64
	}
	var rows []row
	err := r.db.Model(&models.Workshop{}).
		Select("busy_level, COUNT(*) AS count").
		Group("busy_level").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.BusyLevel]int64, len(rows))
	for _, r := range rows {
		counts[r.BusyLevel] = r.Count
	}
	return counts, nil
}

// ComponentCountsByImportance counts components grouped by importance level
func (r *DashboardRepository) ComponentCountsByImportance() (map[models.ImportanceLevel]int64, error) {
	type row struct {
		ImportanceLevel models.ImportanceLevel
		Count           int64
	}
	var rows []row
	err := r.db.Model(&models.Component{}).
		Select("importance_level, COUNT(*) AS count").
		Group("importance_level").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ImportanceLevel]int64, len(rows))
	for _, r := range rows {
		counts[r.ImportanceLevel] = r.Count
	}
	return counts, nil
}

// SparePartCustomSplit counts custom versus standard spare parts
func (r *DashboardRepository) SparePartCustomSplit() (custom int64, standard int64, err error) {
	if err = r.db.Model(&models.SparePart{}).Where("is_custom = ?", true).Count(&custom).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.Model(&models.SparePart{}).Where("is_custom = ?", false).Count(&standard).Error; err != nil {
		return 0, 0, err
	}
	return custom, standard, nil
}
