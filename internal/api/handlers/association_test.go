package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
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

// AssociationHandlerTestSuite defines the test suite for AssociationHandler
type AssociationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssociationServiceInterface
	handler     *handlers.AssociationHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssociationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssociationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewAssociationHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	associations := api.Group("/associations")
	{
		associations.GET("", suite.handler.ListAssociations)
		associations.POST("", suite.handler.CreateAssociation)
		associations.GET("/:id", suite.handler.GetAssociation)
		associations.PUT("/:id", suite.handler.UpdateAssociation)
		associations.DELETE("/:id", suite.handler.DeleteAssociation)
	}
}

// TearDownTest cleans up after each test
func (suite *AssociationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *AssociationHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestListAssociations tests the ListAssociations handler
func (suite *AssociationHandlerTestSuite) TestListAssociations() {
	suite.T().Run("Success Without Filters", func(t *testing.T) {
		expected := []service.AssociationResponse{
			{ID: 1, EquipmentID: 1, ComponentID: 2, SparePartID: 3, Quantity: 2},
		}

		suite.mockService.EXPECT().
			List(service.ListAssociationQuery{}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations", nil)

		var response []service.AssociationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, 2, response[0].Quantity)
	})

	suite.T().Run("All Filters Forwarded", func(t *testing.T) {
		equipmentID := uint(1)
		isCustom := true
		cycleMin := 2
		cycleMax := 6

		suite.mockService.EXPECT().
			List(service.ListAssociationQuery{
				EquipmentID:      &equipmentID,
				ImportanceLevels: []models.ImportanceLevel{models.ImportanceLevelCore, models.ImportanceLevelNormal},
				SupplyCycleMin:   &cycleMin,
				SupplyCycleMax:   &cycleMax,
				IsCustom:         &isCustom,
				Keyword:          "bearing",
			}).
			Return([]service.AssociationResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/associations?equipmentId=1&importanceLevel=A,B&supplyCycleRange=2,6&isCustom=true&keyword=bearing", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Malformed Supply Cycle Range", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations?supplyCycleRange=4", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "supplyCycleRange")
	})

	suite.T().Run("Non Numeric Supply Cycle Bound", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations?supplyCycleRange=2,abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "supplyCycleRange")
	})

	suite.T().Run("Invalid Equipment ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations?equipmentId=abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "equipmentId")
	})

	suite.T().Run("Invalid Is Custom", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations?isCustom=maybe", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "isCustom")
	})

	suite.T().Run("Unknown Importance Level Rejected By Service", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			Return(nil, apperrors.NewValidationError("importanceLevel", "unknown importance level"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations?importanceLevel=X", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "importanceLevel")
	})
}

// TestCreateAssociation tests the CreateAssociation handler
func (suite *AssociationHandlerTestSuite) TestCreateAssociation() {
	requestBody := map[string]interface{}{
		"equipmentId": 1,
		"componentId": 2,
		"sparePartId": 3,
		"quantity":    2,
	}

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.AssociationResponse{
			ID:            7,
			EquipmentID:   1,
			EquipmentName: "Press 01",
			ComponentID:   2,
			ComponentName: "Spindle",
			SparePartID:   3,
			MaterialCode:  "SP-1001",
			Quantity:      2,
		}

		suite.mockService.EXPECT().
			Create(&service.CreateAssociationRequest{EquipmentID: 1, ComponentID: 2, SparePartID: 3, Quantity: 2}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/associations", requestBody)

		var response service.AssociationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Press 01", response.EquipmentName)
		assert.Equal(t, "SP-1001", response.MaterialCode)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/associations")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Equipment Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrEquipmentNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/associations", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "equipment not found")
	})

	suite.T().Run("Spare Part Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrSparePartNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/associations", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "spare part not found")
	})

	suite.T().Run("Duplicate Triple", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrAssociationExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/associations", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

// TestGetAssociation tests the GetAssociation handler
func (suite *AssociationHandlerTestSuite) TestGetAssociation() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.AssociationResponse{ID: 1, EquipmentID: 1, ComponentID: 2, SparePartID: 3, Quantity: 1}

		suite.mockService.EXPECT().GetByID(uint(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations/1", nil)

		var response service.AssociationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, uint(1), response.ID)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrAssociationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/associations/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateAssociation tests the UpdateAssociation handler
func (suite *AssociationHandlerTestSuite) TestUpdateAssociation() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.AssociationResponse{ID: 1, Quantity: 4}

		suite.mockService.EXPECT().
			Update(uint(1), &service.UpdateAssociationRequest{Quantity: 4}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/associations/1", map[string]interface{}{
			"quantity": 4,
		})

		var response service.AssociationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 4, response.Quantity)
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			Return(nil, apperrors.NewValidationError("quantity", "quantity must be at least 1"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/associations/1", map[string]interface{}{
			"quantity": 0,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "quantity")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(nil, apperrors.ErrAssociationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/associations/99", map[string]interface{}{
			"quantity": 4,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestDeleteAssociation tests the DeleteAssociation handler
func (suite *AssociationHandlerTestSuite) TestDeleteAssociation() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/associations/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrAssociationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/associations/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestAssociationHandlerTestSuite runs the test suite
func TestAssociationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationHandlerTestSuite))
}
