package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"maintenance-registry-backend/internal/config"
	"maintenance-registry-backend/internal/database"
	"maintenance-registry-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures mirroring the YAML data files. Entities reference their
// parents by name so the files stay readable and ID-free.
type BaseData struct {
	Name string `yaml:"name"`
}

type WorkshopData struct {
	Name      string `yaml:"name"`
	BaseName  string `yaml:"base_name"`
	BusyLevel int    `yaml:"busy_level"`
}

type EquipmentTypeData struct {
	Name           string `yaml:"name"`
	LifecycleYears *int   `yaml:"lifecycle_years,omitempty"`
}

type EquipmentData struct {
	Name         string `yaml:"name"`
	WorkshopName string `yaml:"workshop_name"`
	TypeName     string `yaml:"type_name"`
}

type ComponentData struct {
	Name            string   `yaml:"name"`
	TypeName        string   `yaml:"type_name"`
	ImportanceLevel string   `yaml:"importance_level"`
	FailureRate     *float64 `yaml:"failure_rate,omitempty"`
	LifecycleYears  *int     `yaml:"lifecycle_years,omitempty"`
}

type SupplierData struct {
	Name             string `yaml:"name"`
	SupplyCycleWeeks int    `yaml:"supply_cycle_weeks"`
}

type SparePartData struct {
	MaterialCode     string         `yaml:"material_code"`
	Manufacturer     string         `yaml:"manufacturer,omitempty"`
	ManufacturerCode string         `yaml:"manufacturer_code,omitempty"`
	Specification    string         `yaml:"specification,omitempty"`
	Description      string         `yaml:"description,omitempty"`
	IsCustom         bool           `yaml:"is_custom"`
	Suppliers        []SupplierData `yaml:"suppliers,omitempty"`
}

type AssociationData struct {
	EquipmentName string `yaml:"equipment_name"`
	ComponentName string `yaml:"component_name"`
	MaterialCode  string `yaml:"material_code"`
	Quantity      int    `yaml:"quantity"`
}

type RegistryFile struct {
	Bases          []BaseData          `yaml:"bases"`
	Workshops      []WorkshopData      `yaml:"workshops"`
	EquipmentTypes []EquipmentTypeData `yaml:"equipment_types"`
	Equipment      []EquipmentData     `yaml:"equipment"`
	Components     []ComponentData     `yaml:"components"`
	SpareParts     []SparePartData     `yaml:"spare_parts"`
	Associations   []AssociationData   `yaml:"associations"`
}

func main() {
	log.Println("Loading initial registry data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	merged, err := loadRegistryFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read data files: %w", err)
	}

	baseMap := make(map[string]*models.Base)
	created := 0
	for _, data := range merged.Bases {
		base, wasCreated, err := createBase(db, data)
		if err != nil {
			return fmt.Errorf("failed to create base %s: %w", data.Name, err)
		}
		baseMap[data.Name] = base
		if wasCreated {
			created++
		}
	}
	log.Printf("Bases: %d created, %d total", created, len(merged.Bases))

	workshopMap := make(map[string]*models.Workshop)
	created = 0
	for _, data := range merged.Workshops {
		workshop, wasCreated, err := createWorkshop(db, data, baseMap)
		if err != nil {
			return fmt.Errorf("failed to create workshop %s: %w", data.Name, err)
		}
		workshopMap[data.Name] = workshop
		if wasCreated {
			created++
		}
	}
	log.Printf("Workshops: %d created, %d total", created, len(merged.Workshops))

	typeMap := make(map[string]*models.EquipmentType)
	created = 0
	for _, data := range merged.EquipmentTypes {
		equipmentType, wasCreated, err := createEquipmentType(db, data)
		if err != nil {
			return fmt.Errorf("failed to create equipment type %s: %w", data.Name, err)
		}
		typeMap[data.Name] = equipmentType
		if wasCreated {
			created++
		}
	}
	log.Printf("Equipment types: %d created, %d total", created, len(merged.EquipmentTypes))

	equipmentMap := make(map[string]*models.Equipment)
	created = 0
	for _, data := range merged.Equipment {
		equipment, wasCreated, err := createEquipment(db, data, workshopMap, typeMap)
		if err != nil {
			return fmt.Errorf("failed to create equipment %s: %w", data.Name, err)
		}
		equipmentMap[data.Name] = equipment
		if wasCreated {
			created++
		}
	}
	log.Printf("Equipment: %d created, %d total", created, len(merged.Equipment))

	componentMap := make(map[string]*models.Component)
	created = 0
	for _, data := range merged.Components {
		component, wasCreated, err := createComponent(db, data, typeMap)
		if err != nil {
			return fmt.Errorf("failed to create component %s: %w", data.Name, err)
		}
		componentMap[data.Name] = component
		if wasCreated {
			created++
		}
	}
	log.Printf("Components: %d created, %d total", created, len(merged.Components))

	partMap := make(map[string]*models.SparePart)
	created = 0
	for _, data := range merged.SpareParts {
		part, wasCreated, err := createSparePart(db, data)
		if err != nil {
			return fmt.Errorf("failed to create spare part %s: %w", data.MaterialCode, err)
		}
		partMap[data.MaterialCode] = part
		if wasCreated {
			created++
		}
	}
	log.Printf("Spare parts: %d created, %d total", created, len(merged.SpareParts))

	created = 0
	for _, data := range merged.Associations {
		wasCreated, err := createAssociation(db, data, equipmentMap, componentMap, partMap)
		if err != nil {
			log.Printf("Warning: failed to create association %s/%s/%s: %v",
				data.EquipmentName, data.ComponentName, data.MaterialCode, err)
			continue
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Associations: %d created, %d total", created, len(merged.Associations))

	return nil
}

func loadRegistryFiles(dataDir string) (*RegistryFile, error) {
	merged := &RegistryFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file RegistryFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Bases = append(merged.Bases, file.Bases...)
		merged.Workshops = append(merged.Workshops, file.Workshops...)
		merged.EquipmentTypes = append(merged.EquipmentTypes, file.EquipmentTypes...)
		merged.Equipment = append(merged.Equipment, file.Equipment...)
		merged.Components = append(merged.Components, file.Components...)
		merged.SpareParts = append(merged.SpareParts, file.SpareParts...)
		merged.Associations = append(merged.Associations, file.Associations...)
		return nil
	})

	return merged, err
}

func createBase(db *gorm.DB, data BaseData) (*models.Base, bool, error) {
	var base models.Base
	err := db.Where("name = ?", data.Name).First(&base).Error
	if err == nil {
		return &base, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query base: %w", err)
	}

	base = models.Base{Name: data.Name}
	if err := db.Create(&base).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create base: %w", err)
	}
	return &base, true, nil
}

func createWorkshop(db *gorm.DB, data WorkshopData, baseMap map[string]*models.Base) (*models.Workshop, bool, error) {
	base := baseMap[data.BaseName]
	if base == nil {
		return nil, false, fmt.Errorf("base %s not found for workshop %s", data.BaseName, data.Name)
	}

	var workshop models.Workshop
	err := db.Where("name = ? AND base_id = ?", data.Name, base.ID).First(&workshop).Error
	if err == nil {
		return &workshop, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query workshop: %w", err)
	}

	busyLevel := models.BusyLevel(data.BusyLevel)
	if !busyLevel.IsValid() {
		busyLevel = models.BusyLevelNormal
	}

	workshop = models.Workshop{
		BaseID:    base.ID,
		Name:      data.Name,
		BusyLevel: busyLevel,
	}
	if err := db.Create(&workshop).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create workshop: %w", err)
	}
	return &workshop, true, nil
}

func createEquipmentType(db *gorm.DB, data EquipmentTypeData) (*models.EquipmentType, bool, error) {
	var equipmentType models.EquipmentType
	err := db.Where("name = ?", data.Name).First(&equipmentType).Error
	if err == nil {
		return &equipmentType, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query equipment type: %w", err)
	}

	equipmentType = models.EquipmentType{
		Name:           data.Name,
		LifecycleYears: data.LifecycleYears,
	}
	if err := db.Create(&equipmentType).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create equipment type: %w", err)
	}
	return &equipmentType, true, nil
}

func createEquipment(db *gorm.DB, data EquipmentData, workshopMap map[string]*models.Workshop, typeMap map[string]*models.EquipmentType) (*models.Equipment, bool, error) {
	workshop := workshopMap[data.WorkshopName]
	if workshop == nil {
		return nil, false, fmt.Errorf("workshop %s not found for equipment %s", data.WorkshopName, data.Name)
	}
	equipmentType := typeMap[data.TypeName]
	if equipmentType == nil {
		return nil, false, fmt.Errorf("equipment type %s not found for equipment %s", data.TypeName, data.Name)
	}

	var equipment models.Equipment
	err := db.Where("name = ? AND workshop_id = ?", data.Name, workshop.ID).First(&equipment).Error
	if err == nil {
		return &equipment, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query equipment: %w", err)
	}

	equipment = models.Equipment{
		WorkshopID:      workshop.ID,
		EquipmentTypeID: equipmentType.ID,
		Name:            data.Name,
	}
	if err := db.Create(&equipment).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create equipment: %w", err)
	}
	return &equipment, true, nil
}

func createComponent(db *gorm.DB, data ComponentData, typeMap map[string]*models.EquipmentType) (*models.Component, bool, error) {
	equipmentType := typeMap[data.TypeName]
	if equipmentType == nil {
		return nil, false, fmt.Errorf("equipment type %s not found for component %s", data.TypeName, data.Name)
	}

	var component models.Component
	err := db.Where("name = ? AND equipment_type_id = ?", data.Name, equipmentType.ID).First(&component).Error
	if err == nil {
		return &component, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query component: %w", err)
	}

	importance := models.ImportanceLevel(data.ImportanceLevel)
	if !importance.IsValid() {
		importance = models.ImportanceLevelNormal
	}

	component = models.Component{
		EquipmentTypeID: equipmentType.ID,
		Name:            data.Name,
		ImportanceLevel: importance,
		FailureRate:     data.FailureRate,
		LifecycleYears:  data.LifecycleYears,
	}
	if err := db.Create(&component).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create component: %w", err)
	}
	return &component, true, nil
}

func createSparePart(db *gorm.DB, data SparePartData) (*models.SparePart, bool, error) {
	var part models.SparePart
	err := db.Where("material_code = ?", data.MaterialCode).First(&part).Error
	if err == nil {
		return &part, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query spare part: %w", err)
	}

	part = models.SparePart{
		MaterialCode:     data.MaterialCode,
		Manufacturer:     data.Manufacturer,
		ManufacturerCode: data.ManufacturerCode,
		Specification:    data.Specification,
		Description:      data.Description,
		IsCustom:         data.IsCustom,
	}
	if err := db.Create(&part).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create spare part: %w", err)
	}

	for _, supplierData := range data.Suppliers {
		supplier := models.SparePartSupplier{
			SparePartID:      part.ID,
			SupplierName:     supplierData.Name,
			SupplyCycleWeeks: supplierData.SupplyCycleWeeks,
		}
		if err := db.Create(&supplier).Error; err != nil {
			log.Printf("Warning: failed to create supplier %s for spare part %s: %v",
				supplierData.Name, data.MaterialCode, err)
		}
	}

	return &part, true, nil
}

func createAssociation(db *gorm.DB, data AssociationData, equipmentMap map[string]*models.Equipment, componentMap map[string]*models.Component, partMap map[string]*models.SparePart) (bool, error) {
	equipment := equipmentMap[data.EquipmentName]
	if equipment == nil {
		return false, fmt.Errorf("equipment %s not found", data.EquipmentName)
	}
	component := componentMap[data.ComponentName]
	if component == nil {
		return false, fmt.Errorf("component %s not found", data.ComponentName)
	}
	part := partMap[data.MaterialCode]
	if part == nil {
		return false, fmt.Errorf("spare part %s not found", data.MaterialCode)
	}

	var existing models.Association
	err := db.Where("equipment_id = ? AND component_id = ? AND spare_part_id = ?",
		equipment.ID, component.ID, part.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query association: %w", err)
	}

	quantity := data.Quantity
	if quantity < 1 {
		quantity = 1
	}

	association := models.Association{
		EquipmentID: equipment.ID,
		ComponentID: component.ID,
		SparePartID: part.ID,
		Quantity:    quantity,
	}
	if err := db.Create(&association).Error; err != nil {
		return false, fmt.Errorf("failed to create association: %w", err)
	}
	return true, nil
}
