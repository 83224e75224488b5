package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto/internal/services"
	"resto/pkg/middleware"
	"resto/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
	}
}

func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favorites, err := fc.favoriteService.List(c.Request.Context(), user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Fetched favorites successfully")
}

func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	locationID := c.Param("locationId")
	if err := fc.favoriteService.Add(c.Request.Context(), user.ID, locationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Added to favorites")
}

func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	locationID := c.Param("locationId")
	if err := fc.favoriteService.Remove(c.Request.Context(), user.ID, locationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Removed from favorites")
}
