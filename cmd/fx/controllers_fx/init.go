package controllers_fx

import (
	"go.uber.org/fx"

	"resto/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewLocationsController),
	fx.Provide(controllers.NewTagsController),
	fx.Provide(controllers.NewFavoritesController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(controllers.NewAddressController),
	fx.Provide(controllers.NewHealthController))
