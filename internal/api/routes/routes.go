package routes

import (
	"log"

	"maintenance-registry-backend/internal/api/handlers"
	"maintenance-registry-backend/internal/api/middleware"
	"maintenance-registry-backend/internal/auth"
	"maintenance-registry-backend/internal/config"
	"maintenance-registry-backend/internal/repository"
	"maintenance-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	baseRepo := repository.NewBaseRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	typeRepo := repository.NewEquipmentTypeRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	sparePartRepo := repository.NewSparePartRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	associationRepo := repository.NewAssociationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	baseService := service.NewBaseService(baseRepo, validator)
	workshopService := service.NewWorkshopService(workshopRepo, baseRepo, validator)
	typeService := service.NewEquipmentTypeService(typeRepo, validator)
	equipmentService := service.NewEquipmentService(equipmentRepo, workshopRepo, typeRepo, validator)
	componentService := service.NewComponentService(componentRepo, typeRepo, validator)
	sparePartService := service.NewSparePartService(sparePartRepo, validator)
	supplierService := service.NewSupplierService(supplierRepo, sparePartRepo, validator)
	associationService := service.NewAssociationService(associationRepo, equipmentRepo, componentRepo, sparePartRepo, validator)
	hierarchyService := service.NewHierarchyService(baseRepo, workshopRepo, equipmentRepo, associationRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize auth; the API stays open when no auth config is present
	var authHandler *auth.Handler
	var authService *auth.Service
	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath)
	if err != nil {
		log.Printf("Warning: auth disabled, failed to load auth config: %v", err)
	} else {
		authService, err = auth.NewService(authConfig)
		if err != nil {
			log.Printf("Warning: auth disabled, failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewHandler(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	baseHandler := handlers.NewBaseHandler(baseService)
	workshopHandler := handlers.NewWorkshopHandler(workshopService)
	typeHandler := handlers.NewEquipmentTypeHandler(typeService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	componentHandler := handlers.NewComponentHandler(componentService)
	sparePartHandler := handlers.NewSparePartHandler(sparePartService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	associationHandler := handlers.NewAssociationHandler(associationService)
	hierarchyHandler := handlers.NewHierarchyHandler(hierarchyService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/validate", authService.Middleware(), authHandler.Validate)
		}
	}

	// API routes; all endpoints require authentication when auth is configured
	api := router.Group("/api")
	if authService != nil {
		api.Use(authService.Middleware())
	}

	{
		bases := api.Group("/bases")
		{
			bases.GET("", baseHandler.ListBases)
			bases.POST("", baseHandler.CreateBase)
			bases.GET("/:id", baseHandler.GetBase)
			bases.PUT("/:id", baseHandler.UpdateBase)
			bases.DELETE("/:id", baseHandler.DeleteBase)
		}

		workshops := api.Group("/workshops")
		{
			workshops.GET("", workshopHandler.ListWorkshops)
			workshops.POST("", workshopHandler.CreateWorkshop)
			workshops.GET("/:id", workshopHandler.GetWorkshop)
			workshops.PUT("/:id", workshopHandler.UpdateWorkshop)
			workshops.DELETE("/:id", workshopHandler.DeleteWorkshop)
		}

		equipmentTypes := api.Group("/equipment-types")
		{
			equipmentTypes.GET("", typeHandler.ListEquipmentTypes)
			equipmentTypes.POST("", typeHandler.CreateEquipmentType)
			equipmentTypes.GET("/:id", typeHandler.GetEquipmentType)
			equipmentTypes.PUT("/:id", typeHandler.UpdateEquipmentType)
			equipmentTypes.DELETE("/:id", typeHandler.DeleteEquipmentType)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.POST("", equipmentHandler.CreateEquipment)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
		}

		components := api.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
		}

		spareParts := api.Group("/spare-parts")
		{
			spareParts.GET("", sparePartHandler.ListSpareParts)
			spareParts.POST("", sparePartHandler.CreateSparePart)
			spareParts.GET("/:id", sparePartHandler.GetSparePart)
			spareParts.PUT("/:id", sparePartHandler.UpdateSparePart)
			spareParts.DELETE("/:id", sparePartHandler.DeleteSparePart)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", supplierHandler.ListSuppliers)
			suppliers.POST("", supplierHandler.CreateSupplier)
			suppliers.GET("/:id", supplierHandler.GetSupplier)
			suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
			suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
		}

		associations := api.Group("/associations")
		{
			associations.GET("", associationHandler.ListAssociations)
			associations.POST("", associationHandler.CreateAssociation)
			associations.GET("/:id", associationHandler.GetAssociation)
			associations.PUT("/:id", associationHandler.UpdateAssociation)
			associations.DELETE("/:id", associationHandler.DeleteAssociation)
		}

		hierarchy := api.Group("/hierarchy")
		{
			hierarchy.GET("/base/:id", hierarchyHandler.GetBaseTree)
			hierarchy.GET("/equipment/:id", hierarchyHandler.GetEquipmentTree)
		}

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
