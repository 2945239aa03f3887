package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
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

// BaseHandlerTestSuite defines the test suite for BaseHandler
type BaseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBaseServiceInterface
	handler     *handlers.BaseHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *BaseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBaseServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewBaseHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	bases := api.Group("/bases")
	{
		bases.GET("", suite.handler.ListBases)
		bases.POST("", suite.handler.CreateBase)
		bases.GET("/:id", suite.handler.GetBase)
		bases.PUT("/:id", suite.handler.UpdateBase)
		bases.DELETE("/:id", suite.handler.DeleteBase)
	}
}

// TearDownTest cleans up after each test
func (suite *BaseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *BaseHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestListBases tests the ListBases handler
func (suite *BaseHandlerTestSuite) TestListBases() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.BaseResponse{
			{ID: 1, Name: "North Plant"},
			{ID: 2, Name: "South Plant"},
		}

		suite.mockService.EXPECT().List("").Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases", nil)

		var response []service.BaseResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "North Plant", response[0].Name)
	})

	suite.T().Run("Search Forwarded", func(t *testing.T) {
		suite.mockService.EXPECT().List("north").Return([]service.BaseResponse{{ID: 1, Name: "North Plant"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases?search=north", nil)

		var response []service.BaseResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().List("").Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "")
	})
}

// TestCreateBase tests the CreateBase handler
func (suite *BaseHandlerTestSuite) TestCreateBase() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.BaseResponse{ID: 3, Name: "East Plant"}

		suite.mockService.EXPECT().
			Create(&service.CreateBaseRequest{Name: "East Plant"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/bases", map[string]interface{}{
			"name": "East Plant",
		})

		var response service.BaseResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, uint(3), response.ID)
		assert.Equal(t, "East Plant", response.Name)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/bases")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Duplicate Name", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrBaseExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/bases", map[string]interface{}{
			"name": "North Plant",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "name is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/bases", map[string]interface{}{
			"name": "",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})
}

// TestGetBase tests the GetBase handler
func (suite *BaseHandlerTestSuite) TestGetBase() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.BaseResponse{ID: 1, Name: "North Plant"}

		suite.mockService.EXPECT().GetByID(uint(1)).Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases/1", nil)

		var response service.BaseResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "North Plant", response.Name)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases/abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid id")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrBaseNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/bases/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})
}

// TestUpdateBase tests the UpdateBase handler
func (suite *BaseHandlerTestSuite) TestUpdateBase() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.BaseResponse{ID: 1, Name: "North Plant Renamed"}

		suite.mockService.EXPECT().
			Update(uint(1), &service.UpdateBaseRequest{Name: "North Plant Renamed"}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/bases/1", map[string]interface{}{
			"name": "North Plant Renamed",
		})

		var response service.BaseResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "North Plant Renamed", response.Name)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(nil, apperrors.ErrBaseNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/bases/99", map[string]interface{}{
			"name": "Anything",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})

	suite.T().Run("Name Taken", func(t *testing.T) {
		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			Return(nil, apperrors.ErrBaseExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/bases/1", map[string]interface{}{
			"name": "South Plant",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest(http.MethodPut, "/api/bases/1")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteBase tests the DeleteBase handler
func (suite *BaseHandlerTestSuite) TestDeleteBase() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/bases/1", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrBaseNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/bases/99", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})

	suite.T().Run("Restricted By Workshops", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(1)).Return(assert.AnError)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/bases/1", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "")
	})
}

// TestBaseHandlerTestSuite runs the test suite
func TestBaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BaseHandlerTestSuite))
}
