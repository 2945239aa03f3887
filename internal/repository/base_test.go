//go:build integration
// +build integration

package repository

import (
	"testing"

	"maintenance-registry-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BaseRepositoryTestSuite tests the BaseRepository
type BaseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *BaseRepository
}

// SetupSuite runs before all tests in the suite
func (suite *BaseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewBaseRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *BaseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BaseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BaseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating a base and retrieving it by ID
func (suite *BaseRepositoryTestSuite) TestCreateAndGetByID() {
	base := suite.factories.Base.WithName("North Base")
	suite.NoError(suite.repo.Create(base))
	suite.NotZero(base.ID)

	retrieved, err := suite.repo.GetByID(base.ID)
	suite.NoError(err)
	suite.Equal("North Base", retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent base
func (suite *BaseRepositoryTestSuite) TestGetByIDNotFound() {
	base, err := suite.repo.GetByID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(base)
}

// TestGetByName tests retrieving a base by its unique name
func (suite *BaseRepositoryTestSuite) TestGetByName() {
	base := suite.factories.Base.WithName("East Base")
	suite.NoError(suite.repo.Create(base))

	retrieved, err := suite.repo.GetByName("East Base")
	suite.NoError(err)
	suite.Equal(base.ID, retrieved.ID)
}

// TestCreateDuplicateName tests that the unique index rejects a duplicate name
func (suite *BaseRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("Dup Base")))

	err := suite.repo.Create(suite.factories.Base.WithName("Dup Base"))
	suite.Error(err)
}

// TestListOrderedByName tests listing bases ordered by name ascending
func (suite *BaseRepositoryTestSuite) TestListOrderedByName() {
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("Charlie")))
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("Alpha")))
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("Bravo")))

	bases, err := suite.repo.List("")
	suite.NoError(err)
	suite.Len(bases, 3)
	suite.Equal("Alpha", bases[0].Name)
	suite.Equal("Bravo", bases[1].Name)
	suite.Equal("Charlie", bases[2].Name)
}

// TestListWithSearch tests the case-insensitive name substring filter
func (suite *BaseRepositoryTestSuite) TestListWithSearch() {
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("North Base")))
	suite.NoError(suite.repo.Create(suite.factories.Base.WithName("South Base")))

	bases, err := suite.repo.List("north")
	suite.NoError(err)
	suite.Len(bases, 1)
	suite.Equal("North Base", bases[0].Name)
}

// TestDeleteRestrictedByWorkshops tests that deleting a base with workshops fails
func (suite *BaseRepositoryTestSuite) TestDeleteRestrictedByWorkshops() {
	base := suite.factories.Base.Create()
	suite.NoError(suite.repo.Create(base))
	workshop := suite.factories.Workshop.WithBase(base.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(workshop).Error)

	err := suite.repo.Delete(base.ID)
	suite.Error(err)

	// Base still present
	retrieved, err := suite.repo.GetByID(base.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
}

// TestDeleteEmptyBase tests deleting a base with no workshops
func (suite *BaseRepositoryTestSuite) TestDeleteEmptyBase() {
	base := suite.factories.Base.Create()
	suite.NoError(suite.repo.Create(base))

	suite.NoError(suite.repo.Delete(base.ID))

	_, err := suite.repo.GetByID(base.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetWithWorkshops tests preloading the workshops of a base
func (suite *BaseRepositoryTestSuite) TestGetWithWorkshops() {
	base := suite.factories.Base.Create()
	suite.NoError(suite.repo.Create(base))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Workshop.WithBase(base.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Workshop.WithBase(base.ID)).Error)

	retrieved, err := suite.repo.GetWithWorkshops(base.ID)
	suite.NoError(err)
	suite.Len(retrieved.Workshops, 2)
}

// Run the test suite
func TestBaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BaseRepositoryTestSuite))
}
