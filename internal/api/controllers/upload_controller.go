package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resto/internal/models/request_models"
	"resto/internal/services"
	"resto/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload ingests either a JSON envelope with base64 bytes or a raw binary
// body with X-File-Type / X-Folder headers.
func (uc *UploadController) Upload(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req request_models.UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "file (base64) and mimeType are required")
			return
		}

		data, err := base64.StdEncoding.DecodeString(req.File)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "file is not valid base64")
			return
		}

		result, err := uc.uploadService.Upload(c.Request.Context(), data, req.MimeType, req.Folder)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, result, "Uploaded successfully")
		return
	}

	mimeType := c.GetHeader("X-File-Type")
	folder := c.GetHeader("X-Folder")

	// One byte past the ceiling is enough to tell "too large" apart from
	// "exactly at the limit" without buffering an unbounded body.
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, services.MaxFileSize+1))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "failed to read upload body")
		return
	}

	result, err := uc.uploadService.Upload(c.Request.Context(), data, mimeType, folder)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Uploaded successfully")
}

func (uc *UploadController) DeleteUpload(c *gin.Context) {
	var req request_models.DeleteUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "url is required")
		return
	}

	if err := uc.uploadService.Delete(c.Request.Context(), req.URL); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Image deleted")
}

func (uc *UploadController) StorageInfo(c *gin.Context) {
	utils.RespondSuccess(c, uc.uploadService.Info(), "")
}
