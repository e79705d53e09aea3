package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shoply/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
