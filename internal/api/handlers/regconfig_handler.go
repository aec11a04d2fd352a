package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/pkg/response"
	"github.com/evermeet/booking-go/pkg/utils"
)

type ConfigHandler struct {
	svc *application.ConfigService
}

func NewConfigHandler(svc *application.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// GetConfig godoc
// @Summary Get an event's registration config
// @Tags registration-config
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} regform.RegistrationConfig
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/registration-config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.svc.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveConfig godoc
// @Summary Create or replace an event's registration config
// @Tags registration-config
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body regform.SaveConfigDTO true "Request body"
// @Success 200 {object} regform.RegistrationConfig
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /events/{id}/registration-config [put]
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input regform.SaveConfigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.svc.Save(actor, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// DuplicateConfig godoc
// @Summary Copy another event's registration config onto this event
// @Tags registration-config
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Target event ID"
// @Param request body regform.DuplicateConfigDTO true "Request body"
// @Success 200 {object} regform.RegistrationConfig
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/registration-config/duplicate [post]
func (h *ConfigHandler) DuplicateConfig(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input regform.DuplicateConfigDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.svc.Duplicate(actor, c.Param("id"), input.SourceEventID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// DisableConfig godoc
// @Summary Disable an event's registration config
// @Tags registration-config
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Router /events/{id}/registration-config/disable [post]
func (h *ConfigHandler) DisableConfig(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.svc.Disable(actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
