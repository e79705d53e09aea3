package controllersfx

import (
	"go.uber.org/fx"

	"shoply/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItemsController),
	fx.Provide(controllers.NewCategoriesController))
