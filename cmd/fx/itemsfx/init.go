package itemsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shoply/internal/repositories"
	"shoply/internal/services"
)

var Module = fx.Provide(
	provideItemRepo, provideItemService)

func provideItemRepo(db *gorm.DB) repositories.ItemRepositoryInterface {
	return repositories.NewItemRepository(db)
}

func provideItemService(
	itemRepo repositories.ItemRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) services.ItemServiceInterface {
	return services.NewItemService(itemRepo, categoryRepo)
}
