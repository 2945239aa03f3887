package handlers_test

import (
	"net/http"
	"testing"

	"maintenance-registry-backend/internal/api/handlers"
	"maintenance-registry-backend/internal/database/models"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/repository"
	"maintenance-registry-backend/internal/service"
	"maintenance-registry-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDashboardServiceInterface
	handler     *handlers.DashboardHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDashboardServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewDashboardHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	api.GET("/dashboard/stats", suite.handler.GetStats)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStats tests the GetStats handler
func (suite *DashboardHandlerTestSuite) TestGetStats() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.DashboardStatsResponse{
			Counts: repository.EntityCounts{
				Bases:        2,
				Workshops:    5,
				Equipment:    12,
				Components:   8,
				SpareParts:   20,
				Suppliers:    6,
				Associations: 15,
			},
			WorkshopsByBusyLevel: map[string]int64{
				"continuous": 2,
				"normal":     3,
			},
			ComponentsByImportance: map[models.ImportanceLevel]int64{
				models.ImportanceLevelCore:   3,
				models.ImportanceLevelNormal: 5,
			},
			SpareParts: service.SparePartSplit{Custom: 4, Standard: 16},
		}

		suite.mockService.EXPECT().Stats().Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/stats", nil)

		var response service.DashboardStatsResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(12), response.Counts.Equipment)
		assert.Equal(t, int64(2), response.WorkshopsByBusyLevel["continuous"])
		assert.Equal(t, int64(3), response.ComponentsByImportance[models.ImportanceLevelCore])
		assert.Equal(t, int64(4), response.SpareParts.Custom)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().Stats().Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/stats", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "")
	})
}

// TestDashboardHandlerTestSuite runs the test suite
func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
