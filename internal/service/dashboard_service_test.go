package service_test

import (
	"errors"
	"testing"

	"maintenance-registry-backend/internal/database/models"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/repository"
	"maintenance-registry-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockDashboardRepositoryInterface
	service  *service.DashboardService
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDashboardRepositoryInterface(suite.ctrl)
	suite.service = service.NewDashboardService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestStats tests assembling the dashboard statistics
func (suite *DashboardServiceTestSuite) TestStats() {
	suite.mockRepo.EXPECT().
		EntityCounts().
		Return(&repository.EntityCounts{Bases: 2, Workshops: 3, Equipment: 5, Associations: 4}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		WorkshopCountsByBusyLevel().
		Return(map[models.BusyLevel]int64{
			models.BusyLevelContinuous: 2,
			models.BusyLevelIdle:       1,
		}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ComponentCountsByImportance().
		Return(map[models.ImportanceLevel]int64{
			models.ImportanceLevelCore:   1,
			models.ImportanceLevelNormal: 2,
		}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		SparePartCustomSplit().
		Return(int64(1), int64(2), nil).
		Times(1)

	stats, err := suite.service.Stats()

	suite.NoError(err)
	suite.Equal(int64(2), stats.Counts.Bases)
	suite.Equal(int64(4), stats.Counts.Associations)

	// Busy level keys are surfaced as display names
	suite.Equal(int64(2), stats.WorkshopsByBusyLevel["continuous"])
	suite.Equal(int64(1), stats.WorkshopsByBusyLevel["idle"])
	suite.NotContains(stats.WorkshopsByBusyLevel, "normal")

	suite.Equal(int64(1), stats.ComponentsByImportance[models.ImportanceLevelCore])
	suite.Equal(int64(1), stats.SpareParts.Custom)
	suite.Equal(int64(2), stats.SpareParts.Standard)
}

// TestStatsError tests that repository failures are surfaced
func (suite *DashboardServiceTestSuite) TestStatsError() {
	suite.mockRepo.EXPECT().
		EntityCounts().
		Return(nil, errors.New("connection refused")).
		Times(1)

	stats, err := suite.service.Stats()

	assert.Nil(suite.T(), stats)
	assert.Error(suite.T(), err)
}

// Run the test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
