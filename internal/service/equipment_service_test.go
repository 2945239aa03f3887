package service_test

import (
	"testing"

	"maintenance-registry-backend/internal/database/models"
	apperrors "maintenance-registry-backend/internal/errors"
	"maintenance-registry-backend/internal/mocks"
	"maintenance-registry-backend/internal/repository"
	"maintenance-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EquipmentServiceTestSuite defines the test suite for EquipmentService
type EquipmentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockEquipmentRepositoryInterface
	mockWorkshopRepo *mocks.MockWorkshopRepositoryInterface
	mockTypeRepo     *mocks.MockEquipmentTypeRepositoryInterface
	service          *service.EquipmentService
}

// SetupTest sets up the test suite
func (suite *EquipmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.mockWorkshopRepo = mocks.NewMockWorkshopRepositoryInterface(suite.ctrl)
	suite.mockTypeRepo = mocks.NewMockEquipmentTypeRepositoryInterface(suite.ctrl)
	suite.service = service.NewEquipmentService(suite.mockRepo, suite.mockWorkshopRepo, suite.mockTypeRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *EquipmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create method
func (suite *EquipmentServiceTestSuite) TestCreate() {
	suite.T().Run("Workshop Not Found", func(t *testing.T) {
		suite.mockWorkshopRepo.EXPECT().
			GetByID(uint(5)).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		resp, err := suite.service.Create(&service.CreateEquipmentRequest{
			WorkshopID:      5,
			EquipmentTypeID: 3,
			Name:            "CNC Lathe 01",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrWorkshopNotFound)
	})

	suite.T().Run("Type Not Found", func(t *testing.T) {
		suite.mockWorkshopRepo.EXPECT().
			GetByID(uint(5)).
			Return(&models.Workshop{Model: models.Model{ID: 5}}, nil).
			Times(1)
		suite.mockTypeRepo.EXPECT().
			GetByID(uint(3)).
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		resp, err := suite.service.Create(&service.CreateEquipmentRequest{
			WorkshopID:      5,
			EquipmentTypeID: 3,
			Name:            "CNC Lathe 01",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrEquipmentTypeNotFound)
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockWorkshopRepo.EXPECT().
			GetByID(uint(5)).
			Return(&models.Workshop{Model: models.Model{ID: 5}}, nil).
			Times(1)
		suite.mockTypeRepo.EXPECT().
			GetByID(uint(3)).
			Return(&models.EquipmentType{Model: models.Model{ID: 3}}, nil).
			Times(1)
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(equipment *models.Equipment) error {
				equipment.ID = 11
				return nil
			}).
			Times(1)
		suite.mockRepo.EXPECT().
			GetWithRelations(uint(11)).
			Return(&models.Equipment{
				Model:           models.Model{ID: 11},
				WorkshopID:      5,
				EquipmentTypeID: 3,
				Name:            "CNC Lathe 01",
				Workshop: &models.Workshop{
					Model:  models.Model{ID: 5},
					BaseID: 2,
					Name:   "Assembly Workshop",
					Base:   &models.Base{Model: models.Model{ID: 2}, Name: "North Base"},
				},
				EquipmentType: &models.EquipmentType{Model: models.Model{ID: 3}, Name: "CNC Lathe"},
			}, nil).
			Times(1)

		resp, err := suite.service.Create(&service.CreateEquipmentRequest{
			WorkshopID:      5,
			EquipmentTypeID: 3,
			Name:            "CNC Lathe 01",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, "Assembly Workshop", resp.WorkshopName)
		assert.Equal(t, "CNC Lathe", resp.TypeName)
		assert.Equal(t, "North Base", resp.BaseName)
	})
}

// TestList tests the List method
func (suite *EquipmentServiceTestSuite) TestList() {
	suite.T().Run("Defaults Applied", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params repository.EquipmentListParams) ([]repository.EquipmentRow, int64, error) {
				assert.Equal(t, "createdAt", params.SortBy)
				assert.Equal(t, "desc", params.SortOrder)
				assert.Equal(t, 20, params.Limit)
				assert.Equal(t, 0, params.Offset)
				return []repository.EquipmentRow{}, 0, nil
			}).
			Times(1)

		resp, err := suite.service.List(service.ListEquipmentQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 20, resp.Pagination.Limit)
		assert.Equal(t, int64(0), resp.Pagination.Total)
	})

	suite.T().Run("Pagination Meta", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params repository.EquipmentListParams) ([]repository.EquipmentRow, int64, error) {
				assert.Equal(t, 10, params.Offset)
				return []repository.EquipmentRow{
					{Equipment: models.Equipment{Model: models.Model{ID: 21}, Name: "Press 01"}, WorkshopName: "Forging", TypeName: "Press", BaseID: 1, BaseName: "North"},
				}, 23, nil
			}).
			Times(1)

		resp, err := suite.service.List(service.ListEquipmentQuery{Page: 2, Limit: 10, SortBy: "name", SortOrder: "asc"})

		assert.NoError(t, err)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, "Forging", resp.Data[0].WorkshopName)
		assert.Equal(t, int64(23), resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	suite.T().Run("Invalid Sort Field", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			List(gomock.Any()).
			Return(nil, int64(0), apperrors.ErrInvalidSortField).
			Times(1)

		resp, err := suite.service.List(service.ListEquipmentQuery{SortBy: "bogus"})

		assert.Nil(t, resp)
		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestGetByID tests the GetByID method
func (suite *EquipmentServiceTestSuite) TestGetByID() {
	suite.mockRepo.EXPECT().
		GetWithRelations(uint(404)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	resp, err := suite.service.GetByID(404)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEquipmentNotFound)
}

// Run the test suite
func TestEquipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceTestSuite))
}
