package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload accepts a single multipart file under the "file" field and returns
// its public path.
func (u *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	path, err := u.uploadService.Save(c, file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondSuccess(c, gin.H{"path": path}, "File uploaded")
}
