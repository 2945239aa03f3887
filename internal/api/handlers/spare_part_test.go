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

// SparePartHandlerTestSuite defines the test suite for SparePartHandler
type SparePartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSparePartServiceInterface
	handler     *handlers.SparePartHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SparePartHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSparePartServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewSparePartHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	spareParts := api.Group("/spare-parts")
	{
		spareParts.GET("", suite.handler.ListSpareParts)
		spareParts.POST("", suite.handler.CreateSparePart)
		spareParts.GET("/:id", suite.handler.GetSparePart)
		spareParts.PUT("/:id", suite.handler.UpdateSparePart)
		spareParts.DELETE("/:id", suite.handler.DeleteSparePart)
	}
}

// TearDownTest cleans up after each test
func (suite *SparePartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListSpareParts tests the ListSpareParts handler
func (suite *SparePartHandlerTestSuite) TestListSpareParts() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.SparePartResponse{
			{ID: 1, MaterialCode: "SP-1001", Manufacturer: "Acme Bearings"},
			{ID: 2, MaterialCode: "SP-2001", IsCustom: true},
		}

		suite.mockService.EXPECT().List(nil, "").Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/spare-parts", nil)

		var response []service.SparePartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Custom Filter Forwarded", func(t *testing.T) {
		isCustom := true

		suite.mockService.EXPECT().
			List(&isCustom, "spindle").
			Return([]service.SparePartResponse{{ID: 2, MaterialCode: "SP-2001", IsCustom: true}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/spare-parts?isCustom=true&search=spindle", nil)

		var response []service.SparePartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.True(t, response[0].IsCustom)
	})

	suite.T().Run("Invalid Is Custom", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/spare-parts?isCustom=maybe", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "isCustom")
	})
}

// TestCreateSparePart tests the CreateSparePart handler
func (suite *SparePartHandlerTestSuite) TestCreateSparePart() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.SparePartResponse{ID: 3, MaterialCode: "SP-3001", Manufacturer: "Acme Bearings"}

		suite.mockService.EXPECT().
			Create(&service.CreateSparePartRequest{MaterialCode: "SP-3001", Manufacturer: "Acme Bearings"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/spare-parts", map[string]interface{}{
			"materialCode": "SP-3001",
			"manufacturer": "Acme Bearings",
		})

		var response service.SparePartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "SP-3001", response.MaterialCode)
	})

	suite.T().Run("Duplicate Material Code", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrSparePartExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/spare-parts", map[string]interface{}{
			"materialCode": "SP-1001",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("materialCode", "materialCode is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/spare-parts", map[string]interface{}{
			"materialCode": "",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "materialCode")
	})
}

// TestGetSparePart tests the GetSparePart handler
func (suite *SparePartHandlerTestSuite) TestGetSparePart() {
	suite.T().Run("Success With Suppliers", func(t *testing.T) {
		expected := &service.SparePartResponse{
			ID:           1,
			MaterialCode: "SP-1001",
			Suppliers: []service.SupplierResponse{
				{ID: 10, SparePartID: 1, SupplierName: "Acme Bearings", SupplyCycleWeeks: 4},
			},
		}

		suite.mockService.EXPECT().GetByID(uint(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/spare-parts/1", nil)

		var response service.SparePartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Suppliers, 1)
		assert.Equal(t, "Acme Bearings", response.Suppliers[0].SupplierName)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrSparePartNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/spare-parts/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateSparePart tests the UpdateSparePart handler
func (suite *SparePartHandlerTestSuite) TestUpdateSparePart() {
	suite.T().Run("Success", func(t *testing.T) {
		isCustom := true
		expected := &service.SparePartResponse{ID: 1, MaterialCode: "SP-1001", IsCustom: true}

		suite.mockService.EXPECT().
			Update(uint(1), &service.UpdateSparePartRequest{MaterialCode: "SP-1001", IsCustom: &isCustom}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/spare-parts/1", map[string]interface{}{
			"materialCode": "SP-1001",
			"isCustom":     true,
		})

		var response service.SparePartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.IsCustom)
	})

	suite.T().Run("Material Code Taken", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			Return(nil, apperrors.ErrSparePartExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/spare-parts/1", map[string]interface{}{
			"materialCode": "SP-2001",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

// TestDeleteSparePart tests the DeleteSparePart handler
func (suite *SparePartHandlerTestSuite) TestDeleteSparePart() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/spare-parts/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrSparePartNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/spare-parts/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestSparePartHandlerTestSuite runs the test suite
func TestSparePartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SparePartHandlerTestSuite))
}
