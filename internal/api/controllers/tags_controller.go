package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto/internal/models/request_models"
	"resto/internal/services"
	"resto/pkg/utils"
)

type TagsController struct {
	tagService services.TagServiceInterface
}

func NewTagsController(tagService services.TagServiceInterface) *TagsController {
	return &TagsController{
		tagService: tagService,
	}
}

func (tc *TagsController) ListAllTagsHandler(c *gin.Context) {
	tags, err := tc.tagService.GetAllTags(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}

func (tc *TagsController) CreateTag(c *gin.Context) {
	var req request_models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "kind, name, and slug are required")
		return
	}

	tag, err := tc.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, tag, "Tag created successfully")
}

func (tc *TagsController) UpdateTag(c *gin.Context) {
	id := c.Param("id")
	var req request_models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tag, err := tc.tagService.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tag, "Tag updated successfully")
}

func (tc *TagsController) DeleteTag(c *gin.Context) {
	id := c.Param("id")
	if err := tc.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tag deleted")
}
