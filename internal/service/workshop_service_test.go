package service_test

import (
	"testing"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkshopServiceTestSuite defines the test suite for WorkshopService
type WorkshopServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockWorkshopRepositoryInterface
	mockBaseRepo *mocks.MockBaseRepositoryInterface
	service      *service.WorkshopService
}

// SetupTest sets up the test suite
func (suite *WorkshopServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkshopRepositoryInterface(suite.ctrl)
	suite.mockBaseRepo = mocks.NewMockBaseRepositoryInterface(suite.ctrl)
	suite.service = service.NewWorkshopService(suite.mockRepo, suite.mockBaseRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *WorkshopServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests workshop creation
func (suite *WorkshopServiceTestSuite) TestCreate() {
	suite.T().Run("Success With Default Busy Level", func(t *testing.T) {
		suite.mockBaseRepo.EXPECT().
			GetByID(uint(1)).
			Return(&models.Base{Model: models.Model{ID: 1}, Name: "North Plant"}, nil)

		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(workshop *models.Workshop) error {
				assert.Equal(t, models.BusyLevelNormal, workshop.BusyLevel)
				workshop.ID = 5
				return nil
			})

		resp, err := suite.service.Create(&service.CreateWorkshopRequest{
			BaseID: 1,
			Name:   "Stamping",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(5), resp.ID)
		assert.Equal(t, models.BusyLevelNormal, resp.BusyLevel)
	})

	suite.T().Run("Base Not Found", func(t *testing.T) {
		suite.mockBaseRepo.EXPECT().
			GetByID(uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := suite.service.Create(&service.CreateWorkshopRequest{
			BaseID: 99,
			Name:   "Stamping",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrBaseNotFound)
	})

	suite.T().Run("Busy Level Out Of Range", func(t *testing.T) {
		resp, err := suite.service.Create(&service.CreateWorkshopRequest{
			BaseID:    1,
			Name:      "Stamping",
			BusyLevel: 7,
		})

		assert.Nil(t, resp)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Name Required", func(t *testing.T) {
		resp, err := suite.service.Create(&service.CreateWorkshopRequest{
			BaseID: 1,
		})

		assert.Nil(t, resp)
		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestUpdate tests workshop updates
func (suite *WorkshopServiceTestSuite) TestUpdate() {
	suite.T().Run("Move To Another Base", func(t *testing.T) {
		newBaseID := uint(2)
		existing := &models.Workshop{
			Model:     models.Model{ID: 5},
			BaseID:    1,
			Name:      "Stamping",
			BusyLevel: models.BusyLevelNormal,
		}

		suite.mockRepo.EXPECT().GetByID(uint(5)).Return(existing, nil)
		suite.mockBaseRepo.EXPECT().
			GetByID(uint(2)).
			Return(&models.Base{Model: models.Model{ID: 2}, Name: "South Plant"}, nil)
		suite.mockRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(workshop *models.Workshop) error {
				assert.Equal(t, uint(2), workshop.BaseID)
				return nil
			})

		resp, err := suite.service.Update(5, &service.UpdateWorkshopRequest{
			BaseID: &newBaseID,
			Name:   "Stamping",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(2), resp.BaseID)
	})

	suite.T().Run("Target Base Not Found", func(t *testing.T) {
		newBaseID := uint(99)
		existing := &models.Workshop{Model: models.Model{ID: 5}, BaseID: 1, Name: "Stamping"}

		suite.mockRepo.EXPECT().GetByID(uint(5)).Return(existing, nil)
		suite.mockBaseRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

		resp, err := suite.service.Update(5, &service.UpdateWorkshopRequest{
			BaseID: &newBaseID,
			Name:   "Stamping",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrBaseNotFound)
	})

	suite.T().Run("Invalid Busy Level", func(t *testing.T) {
		busyLevel := models.BusyLevel(9)

		resp, err := suite.service.Update(5, &service.UpdateWorkshopRequest{
			Name:      "Stamping",
			BusyLevel: &busyLevel,
		})

		assert.Nil(t, resp)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

		resp, err := suite.service.Update(99, &service.UpdateWorkshopRequest{Name: "Stamping"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrWorkshopNotFound)
	})
}

// TestDelete tests workshop deletion
func (suite *WorkshopServiceTestSuite) TestDelete() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			GetByID(uint(5)).
			Return(&models.Workshop{Model: models.Model{ID: 5}, Name: "Stamping"}, nil)
		suite.mockRepo.EXPECT().Delete(uint(5)).Return(nil)

		err := suite.service.Delete(5)
		assert.NoError(t, err)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

		err := suite.service.Delete(99)
		assert.ErrorIs(t, err, apperrors.ErrWorkshopNotFound)
	})
}

// TestWorkshopServiceTestSuite runs the test suite
func TestWorkshopServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopServiceTestSuite))
}
