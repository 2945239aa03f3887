package handlers_test

import (
	"net/http"
	"testing"

	"maintenance-registry-backend/internal/api/handlers"
	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/service"
	"maintenance-registry-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkshopHandlerTestSuite defines the test suite for WorkshopHandler
type WorkshopHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWorkshopServiceInterface
	handler     *handlers.WorkshopHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *WorkshopHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWorkshopServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewWorkshopHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	workshops := api.Group("/workshops")
	{
		workshops.GET("", suite.handler.ListWorkshops)
		workshops.POST("", suite.handler.CreateWorkshop)
		workshops.GET("/:id", suite.handler.GetWorkshop)
		workshops.PUT("/:id", suite.handler.UpdateWorkshop)
		workshops.DELETE("/:id", suite.handler.DeleteWorkshop)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkshopHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListWorkshops tests the ListWorkshops handler
func (suite *WorkshopHandlerTestSuite) TestListWorkshops() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.WorkshopResponse{
			{ID: 1, BaseID: 1, BaseName: "North Plant", Name: "Stamping", BusyLevel: models.BusyLevelContinuous},
			{ID: 2, BaseID: 1, BaseName: "North Plant", Name: "Paint Shop", BusyLevel: models.BusyLevelNormal},
		}

		suite.mockService.EXPECT().List(nil, "").Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/workshops", nil)

		var response []service.WorkshopResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "North Plant", response[0].BaseName)
	})

	suite.T().Run("Base Filter Forwarded", func(t *testing.T) {
		baseID := uint(2)

		suite.mockService.EXPECT().List(&baseID, "").Return([]service.WorkshopResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/workshops?baseId=2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Base ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/workshops?baseId=abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "baseId")
	})
}

// TestCreateWorkshop tests the CreateWorkshop handler
func (suite *WorkshopHandlerTestSuite) TestCreateWorkshop() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.WorkshopResponse{
			ID:        3,
			BaseID:    1,
			BaseName:  "North Plant",
			Name:      "Assembly",
			BusyLevel: models.BusyLevelIntermittent,
		}

		suite.mockService.EXPECT().
			Create(&service.CreateWorkshopRequest{BaseID: 1, Name: "Assembly", BusyLevel: models.BusyLevelIntermittent}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/workshops", map[string]interface{}{
			"baseId":    1,
			"name":      "Assembly",
			"busyLevel": 3,
		})

		var response service.WorkshopResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.BusyLevelIntermittent, response.BusyLevel)
	})

	suite.T().Run("Base Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrBaseNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/workshops", map[string]interface{}{
			"baseId": 99,
			"name":   "Assembly",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})

	suite.T().Run("Invalid Busy Level", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("busyLevel", "busy level must be between 1 and 4"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/workshops", map[string]interface{}{
			"baseId":    1,
			"name":      "Assembly",
			"busyLevel": 7,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "busyLevel")
	})
}

// TestGetWorkshop tests the GetWorkshop handler
func (suite *WorkshopHandlerTestSuite) TestGetWorkshop() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.WorkshopResponse{ID: 1, Name: "Stamping", BusyLevel: models.BusyLevelContinuous}

		suite.mockService.EXPECT().GetByID(uint(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/workshops/1", nil)

		var response service.WorkshopResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Stamping", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrWorkshopNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/workshops/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateWorkshop tests the UpdateWorkshop handler
func (suite *WorkshopHandlerTestSuite) TestUpdateWorkshop() {
	suite.T().Run("Success", func(t *testing.T) {
		busyLevel := models.BusyLevelIdle
		expected := &service.WorkshopResponse{ID: 1, Name: "Stamping", BusyLevel: models.BusyLevelIdle}

		suite.mockService.EXPECT().
			Update(uint(1), &service.UpdateWorkshopRequest{Name: "Stamping", BusyLevel: &busyLevel}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/workshops/1", map[string]interface{}{
			"name":      "Stamping",
			"busyLevel": 4,
		})

		var response service.WorkshopResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.BusyLevelIdle, response.BusyLevel)
	})

	suite.T().Run("Target Base Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			Return(nil, apperrors.ErrBaseNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/workshops/1", map[string]interface{}{
			"baseId": 99,
			"name":   "Stamping",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestDeleteWorkshop tests the DeleteWorkshop handler
func (suite *WorkshopHandlerTestSuite) TestDeleteWorkshop() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/workshops/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrWorkshopNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/workshops/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestWorkshopHandlerTestSuite runs the test suite
func TestWorkshopHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopHandlerTestSuite))
}
