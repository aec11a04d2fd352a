package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/domain/event"
	"github.com/evermeet/booking-go/pkg/response"
	"github.com/evermeet/booking-go/pkg/utils"
)

type EventHandler struct {
	svc *application.EventService
}

func NewEventHandler(svc *application.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body event.CreateEventDTO true "Request body"
// @Success 201 {object} event.Event
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input event.CreateEventDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	e, err := h.svc.CreateEvent(actor, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} event.Event
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.svc.GetEvent(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ListMyEvents godoc
// @Summary List the caller's events
// @Tags events
// @Security BearerAuth
// @Produce json
// @Success 200 {array} event.Event
// @Failure 403 {object} response.ErrorResponse
// @Router /events/mine [get]
func (h *EventHandler) ListMyEvents(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	events, err := h.svc.ListMyEvents(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
