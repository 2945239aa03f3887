package testutils

import (
	"fmt"

	"maintenance-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

// uniqueSuffix returns a short random token so factory defaults never
// collide with unique indexes across tests.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// BaseFactory provides methods to create test Base data
type BaseFactory struct{}

// NewBaseFactory creates a new BaseFactory
func NewBaseFactory() *BaseFactory {
	return &BaseFactory{}
}

// Create creates a test Base with default values
func (f *BaseFactory) Create() *models.Base {
	return &models.Base{
		Name: "Base " + uniqueSuffix(),
	}
}

// WithName sets a custom name for the base
func (f *BaseFactory) WithName(name string) *models.Base {
	base := f.Create()
	base.Name = name
	return base
}

// WorkshopFactory provides methods to create test Workshop data
type WorkshopFactory struct{}

// NewWorkshopFactory creates a new WorkshopFactory
func NewWorkshopFactory() *WorkshopFactory {
	return &WorkshopFactory{}
}

// Create creates a test Workshop with default values
func (f *WorkshopFactory) Create() *models.Workshop {
	return &models.Workshop{
		Name:      "Workshop " + uniqueSuffix(),
		BusyLevel: models.BusyLevelNormal,
	}
}

// WithBase sets the base ID for the workshop
func (f *WorkshopFactory) WithBase(baseID uint) *models.Workshop {
	workshop := f.Create()
	workshop.BaseID = baseID
	return workshop
}

// WithBusyLevel sets a custom busy level for the workshop
func (f *WorkshopFactory) WithBusyLevel(baseID uint, level models.BusyLevel) *models.Workshop {
	workshop := f.WithBase(baseID)
	workshop.BusyLevel = level
	return workshop
}

// EquipmentTypeFactory provides methods to create test EquipmentType data
type EquipmentTypeFactory struct{}

// NewEquipmentTypeFactory creates a new EquipmentTypeFactory
func NewEquipmentTypeFactory() *EquipmentTypeFactory {
	return &EquipmentTypeFactory{}
}

// Create creates a test EquipmentType with default values
func (f *EquipmentTypeFactory) Create() *models.EquipmentType {
	years := 10
	return &models.EquipmentType{
		Name:           "Type " + uniqueSuffix(),
		LifecycleYears: &years,
	}
}

// WithName sets a custom name for the equipment type
func (f *EquipmentTypeFactory) WithName(name string) *models.EquipmentType {
	equipmentType := f.Create()
	equipmentType.Name = name
	return equipmentType
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates a test Equipment with default values
func (f *EquipmentFactory) Create() *models.Equipment {
	return &models.Equipment{
		Name: "Equipment " + uniqueSuffix(),
	}
}

// WithWorkshopAndType sets the parent workshop and type for the equipment
func (f *EquipmentFactory) WithWorkshopAndType(workshopID, typeID uint) *models.Equipment {
	equipment := f.Create()
	equipment.WorkshopID = workshopID
	equipment.EquipmentTypeID = typeID
	return equipment
}

// WithName sets a custom name for the equipment
func (f *EquipmentFactory) WithName(workshopID, typeID uint, name string) *models.Equipment {
	equipment := f.WithWorkshopAndType(workshopID, typeID)
	equipment.Name = name
	return equipment
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values
func (f *ComponentFactory) Create() *models.Component {
	return &models.Component{
		Name:            "Component " + uniqueSuffix(),
		ImportanceLevel: models.ImportanceLevelNormal,
	}
}

// WithType sets the equipment type ID for the component
func (f *ComponentFactory) WithType(typeID uint) *models.Component {
	component := f.Create()
	component.EquipmentTypeID = typeID
	return component
}

// WithImportance sets a custom importance level for the component
func (f *ComponentFactory) WithImportance(typeID uint, level models.ImportanceLevel) *models.Component {
	component := f.WithType(typeID)
	component.ImportanceLevel = level
	return component
}

// SparePartFactory provides methods to create test SparePart data
type SparePartFactory struct{}

// NewSparePartFactory creates a new SparePartFactory
func NewSparePartFactory() *SparePartFactory {
	return &SparePartFactory{}
}

// Create creates a test SparePart with default values
func (f *SparePartFactory) Create() *models.SparePart {
	return &models.SparePart{
		MaterialCode: "MAT-" + uniqueSuffix(),
		Manufacturer: "Test Manufacturer",
		Description:  "A test spare part",
		IsCustom:     false,
	}
}

// WithMaterialCode sets a custom material code for the spare part
func (f *SparePartFactory) WithMaterialCode(code string) *models.SparePart {
	part := f.Create()
	part.MaterialCode = code
	return part
}

// WithCustom marks the spare part as custom made
func (f *SparePartFactory) WithCustom(isCustom bool) *models.SparePart {
	part := f.Create()
	part.IsCustom = isCustom
	return part
}

// SupplierFactory provides methods to create test SparePartSupplier data
type SupplierFactory struct{}

// NewSupplierFactory creates a new SupplierFactory
func NewSupplierFactory() *SupplierFactory {
	return &SupplierFactory{}
}

// Create creates a test SparePartSupplier with default values
func (f *SupplierFactory) Create() *models.SparePartSupplier {
	return &models.SparePartSupplier{
		SupplierName:     "Supplier " + uniqueSuffix(),
		SupplyCycleWeeks: 4,
	}
}

// WithSparePart sets the spare part ID for the supplier
func (f *SupplierFactory) WithSparePart(sparePartID uint) *models.SparePartSupplier {
	supplier := f.Create()
	supplier.SparePartID = sparePartID
	return supplier
}

// WithSupplyCycle sets a custom supply cycle for the supplier
func (f *SupplierFactory) WithSupplyCycle(sparePartID uint, weeks int) *models.SparePartSupplier {
	supplier := f.WithSparePart(sparePartID)
	supplier.SupplyCycleWeeks = weeks
	return supplier
}

// AssociationFactory provides methods to create test Association data
type AssociationFactory struct{}

// NewAssociationFactory creates a new AssociationFactory
func NewAssociationFactory() *AssociationFactory {
	return &AssociationFactory{}
}

// Create creates a test Association linking the given triple
func (f *AssociationFactory) Create(equipmentID, componentID, sparePartID uint) *models.Association {
	return &models.Association{
		EquipmentID: equipmentID,
		ComponentID: componentID,
		SparePartID: sparePartID,
		Quantity:    1,
	}
}

// WithQuantity sets a custom quantity for the association
func (f *AssociationFactory) WithQuantity(equipmentID, componentID, sparePartID uint, quantity int) *models.Association {
	association := f.Create(equipmentID, componentID, sparePartID)
	association.Quantity = quantity
	return association
}

// FactorySet provides access to all factories
type FactorySet struct {
	Base          *BaseFactory
	Workshop      *WorkshopFactory
	EquipmentType *EquipmentTypeFactory
	Equipment     *EquipmentFactory
	Component     *ComponentFactory
	SparePart     *SparePartFactory
	Supplier      *SupplierFactory
	Association   *AssociationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Base:          NewBaseFactory(),
		Workshop:      NewWorkshopFactory(),
		EquipmentType: NewEquipmentTypeFactory(),
		Equipment:     NewEquipmentFactory(),
		Component:     NewComponentFactory(),
		SparePart:     NewSparePartFactory(),
		Supplier:      NewSupplierFactory(),
		Association:   NewAssociationFactory(),
	}
}

// RegistryFixture holds one persisted row per registry entity, wired together
// into a consistent hierarchy.
type RegistryFixture struct {
	Base          *models.Base
	Workshop      *models.Workshop
	EquipmentType *models.EquipmentType
	Equipment     *models.Equipment
	Component     *models.Component
	SparePart     *models.SparePart
	Supplier      *models.SparePartSupplier
	Association   *models.Association
}

// CreateRegistryHierarchy persists a full chain base -> workshop -> equipment
// with an equipment type, a component, a spare part with one supplier, and the
// association joining them. It fails the calling test on the first DB error.
func (s *BaseTestSuite) CreateRegistryHierarchy(fs *FactorySet) *RegistryFixture {
	fixture := &RegistryFixture{}

	fixture.Base = fs.Base.Create()
	s.Require().NoError(s.DB.Create(fixture.Base).Error)

	fixture.Workshop = fs.Workshop.WithBase(fixture.Base.ID)
	s.Require().NoError(s.DB.Create(fixture.Workshop).Error)

	fixture.EquipmentType = fs.EquipmentType.Create()
	s.Require().NoError(s.DB.Create(fixture.EquipmentType).Error)

	fixture.Equipment = fs.Equipment.WithWorkshopAndType(fixture.Workshop.ID, fixture.EquipmentType.ID)
	s.Require().NoError(s.DB.Create(fixture.Equipment).Error)

	fixture.Component = fs.Component.WithType(fixture.EquipmentType.ID)
	s.Require().NoError(s.DB.Create(fixture.Component).Error)

	fixture.SparePart = fs.SparePart.Create()
	s.Require().NoError(s.DB.Create(fixture.SparePart).Error)

	fixture.Supplier = fs.Supplier.WithSparePart(fixture.SparePart.ID)
	s.Require().NoError(s.DB.Create(fixture.Supplier).Error)

	fixture.Association = fs.Association.Create(fixture.Equipment.ID, fixture.Component.ID, fixture.SparePart.ID)
	s.Require().NoError(s.DB.Create(fixture.Association).Error)

	return fixture
}

// SeedEquipmentGrid creates n pieces of equipment under the fixture's workshop
// and type, named with a zero-padded index for deterministic sort order.
func (s *BaseTestSuite) SeedEquipmentGrid(fx *RegistryFixture, n int) []models.Equipment {
	items := make([]models.Equipment, 0, n)
	for i := 1; i <= n; i++ {
		item := models.Equipment{
			WorkshopID:      fx.Workshop.ID,
			EquipmentTypeID: fx.EquipmentType.ID,
			Name:            fmt.Sprintf("Equipment %03d", i),
		}
		s.Require().NoError(s.DB.Create(&item).Error)
		items = append(items, item)
	}
	return items
}
