package controllers

import (
	"github.com/gin-gonic/gin"

	"resto/internal/services"
	"resto/pkg/utils"
)

type AddressController struct {
	lookupService services.AddressLookupServiceInterface
}

func NewAddressController(lookupService services.AddressLookupServiceInterface) *AddressController {
	return &AddressController{
		lookupService: lookupService,
	}
}

func (ac *AddressController) Lookup(c *gin.Context) {
	postcode := c.Query("postcode")
	houseNumber := c.Query("house_number")
	addition := c.Query("house_number_addition")

	result, err := ac.lookupService.Lookup(c.Request.Context(), postcode, houseNumber, addition)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Address found")
}
