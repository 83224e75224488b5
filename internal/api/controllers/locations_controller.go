package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto/internal/models/request_models"
	"resto/internal/services"
	"resto/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{
		locationService: locationService,
	}
}

// GetLocations lists published locations filtered by city, bbox,
// tag_slugs, price_min and price_max query parameters.
func (lc *LocationsController) GetLocations(c *gin.Context) {
	filter := request_models.LocationFilter{
		City:     c.Query("city"),
		BBox:     c.Query("bbox"),
		TagSlugs: c.Query("tag_slugs"),
		PriceMin: c.Query("price_min"),
		PriceMax: c.Query("price_max"),
	}

	locations, err := lc.locationService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Fetched locations successfully")
}

func (lc *LocationsController) GetLocationByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location ID is required")
		return
	}

	location, err := lc.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Fetched location successfully")
}

func (lc *LocationsController) GetCities(c *gin.Context) {
	cities, err := lc.locationService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Fetched cities successfully")
}

// Admin handlers below; the router guards them with RequireAdmin.

func (lc *LocationsController) ListAllLocations(c *gin.Context) {
	locations, err := lc.locationService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Fetched locations successfully")
}

func (lc *LocationsController) CreateLocation(c *gin.Context) {
	var req request_models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name and slug are required")
		return
	}

	location, err := lc.locationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, location, "Location created successfully")
}

func (lc *LocationsController) UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	var req request_models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := lc.locationService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location updated successfully")
}

func (lc *LocationsController) DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	if err := lc.locationService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location deleted")
}
