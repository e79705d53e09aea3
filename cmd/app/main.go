package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"shoply/cmd/fx/categoriesfx"
	"shoply/cmd/fx/controllersfx"
	"shoply/cmd/fx/dbfx"
	"shoply/cmd/fx/itemsfx"
	"shoply/internal/api/controllers"
	"shoply/internal/infra"
	"shoply/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	if err := infra.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := fx.New(
		dbfx.Module,
		itemsfx.Module,
		categoriesfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itemsController *controllers.ItemsController,
	categoriesController *controllers.CategoriesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itemsController, categoriesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itemsController *controllers.ItemsController,
	categoriesController *controllers.CategoriesController) {

	itemsGroup := r.Group("/items")
	itemsGroup.POST("/", itemsController.CreateItem)
	itemsGroup.GET("/", itemsController.ListItems)
	itemsGroup.GET("/:item_id", itemsController.GetItem)
	itemsGroup.PUT("/:item_id", itemsController.UpdateItem)
	itemsGroup.DELETE("/:item_id", itemsController.DeleteItem)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.POST("/", categoriesController.CreateCategory)
	categoriesGroup.GET("/", categoriesController.ListCategories)
	categoriesGroup.POST("/:category_id/items/:item_id", itemsController.AssignCategory)
}
