package tagsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"resto/internal/repositories"
	"resto/internal/services"
)

var Module = fx.Provide(
	provideTagsRepo, provideTagsService)

func provideTagsRepo(db *gorm.DB) repositories.TagRepository {
	return repositories.NewTagRepository(db)
}

func provideTagsService(tagRepo repositories.TagRepository) services.TagServiceInterface {
	return services.NewTagService(tagRepo)
}
