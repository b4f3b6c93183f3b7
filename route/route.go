package route

import (
	"net/http"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/controller"
	"github.com/Aiosol/ccf-bakery-sub001/costing"
	"github.com/Aiosol/ccf-bakery-sub001/db"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/handler"
	"github.com/Aiosol/ccf-bakery-sub001/middleware"
	"github.com/Aiosol/ccf-bakery-sub001/repository"
	"github.com/Aiosol/ccf-bakery-sub001/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, controllers and handlers onto the router.
func SetupRoutes(r *gin.Engine, config *entity.Config) error {
	gormDB := db.GetDBInstance()

	inventoryRepository := repository.NewInventoryRepository(gormDB)
	recipeRepository := repository.NewRecipeRepository(gormDB)
	priceChangeRepository := repository.NewPriceChangeRepository(gormDB)
	userRepository := repository.NewUserRepository(gormDB)

	inventoryController := controller.NewInventoryController(inventoryRepository, recipeRepository, priceChangeRepository)
	recipeController := controller.NewRecipeController(recipeRepository, inventoryRepository)
	historyController := controller.NewPriceHistoryController(
		recipeController,
		inventoryRepository,
		priceChangeRepository,
		costing.NewClassifier(config.Volatility),
	)
	userController := controller.NewUserController(userRepository)

	authService := service.NewAuthService(userController, config)
	reportService := service.NewReportService(recipeController)

	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryController)
	recipeHandler := handler.NewRecipeHandler(recipeController)
	historyHandler := handler.NewPriceHistoryHandler(historyController)
	reportHandler := handler.NewReportHandler(reportService)
	userHandler := handler.NewUserHandler(userController)

	origins := config.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))
	r.Use(middleware.RequestID())

	jwtKey := []byte(config.JWTSecretKey)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/auth/login", authHandler.Login)

	// Any authenticated role may read.
	authed := r.Group("/")
	authed.Use(middleware.AuthenticateJWT(jwtKey))
	authed.GET("/items", inventoryHandler.ListItems)
	authed.GET("/items/:id", inventoryHandler.GetItem)
	authed.GET("/recipes", recipeHandler.ListRecipes)
	authed.GET("/recipes/:id", recipeHandler.GetRecipe)
	authed.GET("/recipes/:id/price-history", historyHandler.GetPriceHistory)
	authed.GET("/reports/recipe-costs", reportHandler.RecipeCostSheet)

	// Mutations need the baker role (admin passes any role check).
	baking := r.Group("/")
	baking.Use(middleware.AuthenticateJWT(jwtKey), middleware.RequireRole(entity.RoleBaker))
	baking.POST("/items", inventoryHandler.Create)
	baking.PUT("/items/:id", inventoryHandler.UpdateItem)
	baking.DELETE("/items/:id", inventoryHandler.DeleteItem)
	baking.POST("/recipes", recipeHandler.Create)
	baking.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
	baking.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)

	// User administration is admin-only.
	admin := r.Group("/")
	admin.Use(middleware.AuthenticateJWT(jwtKey), middleware.RequireRole(entity.RoleAdmin))
	admin.GET("/users/:id", userHandler.GetUser)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)

	return nil
}
