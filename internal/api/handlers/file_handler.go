package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/pkg/response"
	"github.com/evermeet/booking-go/pkg/utils"
)

type FileHandler struct {
	svc *application.FileService
}

func NewFileHandler(svc *application.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a file for a file field, ahead of submission
// @Tags registration-files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param event_id formData string true "Event ID"
// @Param field_id formData string true "Field ID"
// @Param file formData file true "File"
// @Success 201 {object} regform.FileRef
// @Failure 400 {object} response.FieldErrorResponse
// @Router /registrations/files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	eventID := c.PostForm("event_id")
	fieldID := c.PostForm("field_id")
	if eventID == "" || fieldID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "event_id and field_id are required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read file"})
		return
	}
	defer f.Close()

	ref, err := h.svc.Upload(
		c.Request.Context(),
		actor,
		eventID,
		fieldID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// Download godoc
// @Summary Stream a registration's uploaded file
// @Tags registration-files
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param fieldId path string true "Field ID"
// @Success 200 {file} binary
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /registrations/{id}/files/{fieldId} [get]
func (h *FileHandler) Download(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	rc, ref, err := h.svc.Download(c.Request.Context(), actor, c.Param("id"), c.Param("fieldId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+ref.Name+`"`)
	c.DataFromReader(http.StatusOK, ref.Size, ref.ContentType, rc, nil)
}
