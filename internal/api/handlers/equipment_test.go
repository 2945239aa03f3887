package handlers_test

import (
	"net/http"
	"testing"

	"maintenance-registry-backend/internal/api/handlers"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/service"
	"maintenance-registry-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EquipmentHandlerTestSuite defines the test suite for EquipmentHandler
type EquipmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEquipmentServiceInterface
	handler     *handlers.EquipmentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *EquipmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEquipmentServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewEquipmentHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	equipment := api.Group("/equipment")
	{
		equipment.GET("", suite.handler.ListEquipment)
		equipment.POST("", suite.handler.CreateEquipment)
		equipment.GET("/:id", suite.handler.GetEquipment)
		equipment.PUT("/:id", suite.handler.UpdateEquipment)
		equipment.DELETE("/:id", suite.handler.DeleteEquipment)
	}
}

// TearDownTest cleans up after each test
func (suite *EquipmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListEquipment tests the ListEquipment handler
func (suite *EquipmentHandlerTestSuite) TestListEquipment() {
	suite.T().Run("Defaults Applied", func(t *testing.T) {
		expected := &service.EquipmentListResponse{
			Data: []service.EquipmentResponse{
				{ID: 1, Name: "Press 01", WorkshopName: "Stamping", BaseName: "North Plant"},
			},
			Pagination: service.PaginationMeta{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
		}

		suite.mockService.EXPECT().
			List(service.ListEquipmentQuery{Page: 1, Limit: 20}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment", nil)

		var response service.EquipmentListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Data, 1)
		assert.Equal(t, int64(1), response.Pagination.Total)
	})

	suite.T().Run("Query Parameters Forwarded", func(t *testing.T) {
		workshopID := uint(3)
		baseID := uint(2)

		suite.mockService.EXPECT().
			List(service.ListEquipmentQuery{
				Page:       2,
				Limit:      10,
				SortBy:     "name",
				SortOrder:  "asc",
				WorkshopID: &workshopID,
				BaseID:     &baseID,
				Search:     "press",
			}).
			Return(&service.EquipmentListResponse{
				Data:       []service.EquipmentResponse{},
				Pagination: service.PaginationMeta{Page: 2, Limit: 10},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/equipment?page=2&limit=10&sortBy=name&sortOrder=asc&workshopId=3&baseId=2&search=press", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Workshop ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment?workshopId=abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "workshopId")
	})

	suite.T().Run("Invalid Sort Field", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			Return(nil, apperrors.NewValidationError("sortBy", "unsupported sort field"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment?sortBy=bogus", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "sortBy")
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "")
	})
}

// TestCreateEquipment tests the CreateEquipment handler
func (suite *EquipmentHandlerTestSuite) TestCreateEquipment() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.EquipmentResponse{
			ID:              5,
			Name:            "Press 02",
			WorkshopID:      3,
			WorkshopName:    "Stamping",
			EquipmentTypeID: 2,
			TypeName:        "Hydraulic Press",
			BaseID:          1,
			BaseName:        "North Plant",
		}

		suite.mockService.EXPECT().
			Create(&service.CreateEquipmentRequest{WorkshopID: 3, EquipmentTypeID: 2, Name: "Press 02"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/equipment", map[string]interface{}{
			"workshopId":      3,
			"equipmentTypeId": 2,
			"name":            "Press 02",
		})

		var response service.EquipmentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Stamping", response.WorkshopName)
		assert.Equal(t, "North Plant", response.BaseName)
	})

	suite.T().Run("Workshop Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrWorkshopNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/equipment", map[string]interface{}{
			"workshopId":      99,
			"equipmentTypeId": 2,
			"name":            "Press 02",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "workshop not found")
	})

	suite.T().Run("Equipment Type Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrEquipmentTypeNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/equipment", map[string]interface{}{
			"workshopId":      3,
			"equipmentTypeId": 99,
			"name":            "Press 02",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "equipment type not found")
	})
}

// TestGetEquipment tests the GetEquipment handler
func (suite *EquipmentHandlerTestSuite) TestGetEquipment() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.EquipmentResponse{ID: 1, Name: "Press 01"}

		suite.mockService.EXPECT().GetByID(uint(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment/1", nil)

		var response service.EquipmentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Press 01", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrEquipmentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/equipment/abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid id")
	})
}

// TestUpdateEquipment tests the UpdateEquipment handler
func (suite *EquipmentHandlerTestSuite) TestUpdateEquipment() {
	suite.T().Run("Success", func(t *testing.T) {
		workshopID := uint(4)
		expected := &service.EquipmentResponse{ID: 1, Name: "Press 01", WorkshopID: 4}

		suite.mockService.EXPECT().
			Update(uint(1), &service.UpdateEquipmentRequest{WorkshopID: &workshopID, Name: "Press 01"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/equipment/1", map[string]interface{}{
			"workshopId": 4,
			"name":       "Press 01",
		})

		var response service.EquipmentResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, uint(4), response.WorkshopID)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(nil, apperrors.ErrEquipmentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/equipment/99", map[string]interface{}{
			"name": "Press 01",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestDeleteEquipment tests the DeleteEquipment handler
func (suite *EquipmentHandlerTestSuite) TestDeleteEquipment() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/equipment/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrEquipmentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/equipment/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestEquipmentHandlerTestSuite runs the test suite
func TestEquipmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}
