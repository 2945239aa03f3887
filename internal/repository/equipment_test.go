//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// EquipmentRepositoryTestSuite tests the EquipmentRepository
type EquipmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *EquipmentRepository
}

// SetupSuite runs before all tests in the suite
func (suite *EquipmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewEquipmentRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *EquipmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EquipmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EquipmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// renameFixtureEquipment pins the fixture equipment's random name so
// name-sorted assertions stay deterministic.
func (suite *EquipmentRepositoryTestSuite) renameFixtureEquipment(fx *testutils.RegistryFixture, name string) {
	fx.Equipment.Name = name
	suite.NoError(suite.baseTestSuite.DB.Save(fx.Equipment).Error)
}

// TestGetWithRelations tests preloading workshop, base and type
func (suite *EquipmentRepositoryTestSuite) TestGetWithRelations() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)

	equipment, err := suite.repo.GetWithRelations(fx.Equipment.ID)
	suite.NoError(err)
	suite.NotNil(equipment.Workshop)
	suite.NotNil(equipment.Workshop.Base)
	suite.NotNil(equipment.EquipmentType)
	suite.Equal(fx.Base.Name, equipment.Workshop.Base.Name)
}

// TestListPagination tests page slicing and the filter-applied total count
func (suite *EquipmentRepositoryTestSuite) TestListPagination() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)
	suite.renameFixtureEquipment(fx, "Equipment 000")
	suite.baseTestSuite.SeedEquipmentGrid(fx, 5)

	// Page 1, sorted by name ascending. The fixture equipment itself also
	// counts toward the total.
	rows, total, err := suite.repo.List(EquipmentListParams{
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     3,
		Offset:    0,
	})
	suite.NoError(err)
	suite.Equal(int64(6), total)
	suite.Len(rows, 3)
	suite.Equal("Equipment 000", rows[0].Name)

	// Page 2
	rows, total, err = suite.repo.List(EquipmentListParams{
		SortBy:    "name",
		SortOrder: "asc",
		Limit:     3,
		Offset:    3,
	})
	suite.NoError(err)
	suite.Equal(int64(6), total)
	suite.Len(rows, 3)
	suite.Equal("Equipment 003", rows[0].Name)
}

// TestListResolvesJoinedNames tests that workshop, type and base names come back
func (suite *EquipmentRepositoryTestSuite) TestListResolvesJoinedNames() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)

	rows, total, err := suite.repo.List(EquipmentListParams{
		SortBy:    "id",
		SortOrder: "asc",
		Limit:     10,
		Offset:    0,
	})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(rows, 1)
	suite.Equal(fx.Workshop.Name, rows[0].WorkshopName)
	suite.Equal(fx.EquipmentType.Name, rows[0].TypeName)
	suite.Equal(fx.Base.Name, rows[0].BaseName)
	suite.Equal(fx.Base.ID, rows[0].BaseID)
}

// TestListFilterByWorkshop tests filtering the listing down to one workshop
func (suite *EquipmentRepositoryTestSuite) TestListFilterByWorkshop() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)
	other := suite.factories.Workshop.WithBase(fx.Base.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(
		suite.factories.Equipment.WithWorkshopAndType(other.ID, fx.EquipmentType.ID)).Error)

	rows, total, err := suite.repo.List(EquipmentListParams{
		WorkshopID: &other.ID,
		SortBy:     "id",
		SortOrder:  "asc",
		Limit:      10,
		Offset:     0,
	})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(rows, 1)
	suite.Equal(other.ID, rows[0].WorkshopID)
}

// TestListSortDescending tests descending order on the name column
func (suite *EquipmentRepositoryTestSuite) TestListSortDescending() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)
	suite.renameFixtureEquipment(fx, "Equipment 000")
	suite.baseTestSuite.SeedEquipmentGrid(fx, 3)

	rows, _, err := suite.repo.List(EquipmentListParams{
		SortBy:    "name",
		SortOrder: "desc",
		Limit:     1,
		Offset:    0,
	})
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal("Equipment 003", rows[0].Name)
}

// TestListRejectsUnknownSortField tests the sort column whitelist
func (suite *EquipmentRepositoryTestSuite) TestListRejectsUnknownSortField() {
	_, _, err := suite.repo.List(EquipmentListParams{
		SortBy:    "name; DROP TABLE equipment",
		SortOrder: "asc",
		Limit:     10,
		Offset:    0,
	})
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidSortField)
}

// TestListByWorkshopID tests the hierarchy listing ordered by name
func (suite *EquipmentRepositoryTestSuite) TestListByWorkshopID() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)
	suite.baseTestSuite.SeedEquipmentGrid(fx, 2)

	equipment, err := suite.repo.ListByWorkshopID(fx.Workshop.ID)
	suite.NoError(err)
	suite.Len(equipment, 3)
	suite.NotNil(equipment[0].EquipmentType)
}

// TestDeleteRestrictedByAssociations tests that equipment with associations cannot be deleted
func (suite *EquipmentRepositoryTestSuite) TestDeleteRestrictedByAssociations() {
	fx := suite.baseTestSuite.CreateRegistryHierarchy(suite.factories)

	err := suite.repo.Delete(fx.Equipment.ID)
	suite.Error(err)
}

// Run the test suite
func TestEquipmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentRepositoryTestSuite))
}
