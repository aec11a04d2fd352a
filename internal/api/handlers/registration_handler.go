package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/pkg/response"
	"github.com/evermeet/booking-go/pkg/utils"
)

type RegistrationHandler struct {
	submissions *application.SubmissionService
	payments    *application.PaymentService
	reviews     *application.ReviewService
	directory   *application.DirectoryService
}

func NewRegistrationHandler(
	submissions *application.SubmissionService,
	payments *application.PaymentService,
	reviews *application.ReviewService,
	directory *application.DirectoryService,
) *RegistrationHandler {
	return &RegistrationHandler{
		submissions: submissions,
		payments:    payments,
		reviews:     reviews,
		directory:   directory,
	}
}

type listResponse struct {
	Registrations []registration.Registration `json:"registrations"`
	Pagination    response.Pagination         `json:"pagination"`
	Stats         struct {
		ByStatus registration.StatusCounts `json:"by_status"`
	} `json:"stats"`
}

func buildListResponse(result *registration.ListResult, p registration.PageRequest) listResponse {
	p = p.Normalized()
	resp := listResponse{
		Registrations: result.Registrations,
		Pagination: response.Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      result.Total,
			TotalPages: int((result.Total + int64(p.Limit) - 1) / int64(p.Limit)),
		},
	}
	resp.Stats.ByStatus = result.ByStatus
	return resp
}

// Submit godoc
// @Summary Submit (or save a draft of) a registration for an event
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body registration.SubmitDTO true "Request body"
// @Success 201 {object} registration.SubmitResult
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /events/{id}/registrations [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input registration.SubmitDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.submissions.Submit(actor, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Update godoc
// @Summary Replace a registration's answers while it is editable
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body registration.UpdateDTO true "Request body"
// @Success 200 {object} registration.Registration
// @Failure 400 {object} response.FieldErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /registrations/{id} [put]
func (h *RegistrationHandler) Update(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input registration.UpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.submissions.Update(actor, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// Withdraw godoc
// @Summary Withdraw a registration
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Param id path string true "Registration ID"
// @Param request body registration.WithdrawDTO false "Request body"
// @Success 204
// @Failure 409 {object} response.ErrorResponse
// @Router /registrations/{id}/withdraw [post]
func (h *RegistrationHandler) Withdraw(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input registration.WithdrawDTO
	_ = c.ShouldBindJSON(&input)

	if err := h.submissions.Withdraw(actor, c.Param("id"), input.Reason); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmPayment godoc
// @Summary Confirm a registration's payment
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body registration.ConfirmPaymentDTO true "Request body"
// @Success 200 {object} registration.Registration
// @Failure 409 {object} response.ErrorResponse
// @Router /registrations/{id}/confirm-payment [post]
func (h *RegistrationHandler) ConfirmPayment(c *gin.Context) {
	var input registration.ConfirmPaymentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.payments.Confirm(c.Param("id"), input.PaymentIntentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// StartReview godoc
// @Summary Mark a submitted registration as under review
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} registration.Registration
// @Failure 409 {object} response.ErrorResponse
// @Router /registrations/{id}/start-review [post]
func (h *RegistrationHandler) StartReview(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	reg, err := h.reviews.StartReview(actor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// Review godoc
// @Summary Approve or reject a registration
// @Tags registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body registration.ReviewDTO true "Request body"
// @Success 200 {object} registration.Registration
// @Failure 402 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /registrations/{id}/review [post]
func (h *RegistrationHandler) Review(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input registration.ReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.reviews.Review(actor, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// GetRegistration godoc
// @Summary Get one registration
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} registration.Registration
// @Failure 403 {object} response.ErrorResponse
// @Router /registrations/{id} [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	reg, err := h.directory.GetRegistration(actor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ListForEvent godoc
// @Summary List an event's registrations with status aggregates
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param status query string false "Status filter"
// @Param search query string false "Free-text search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /events/{id}/registrations [get]
func (h *RegistrationHandler) ListForEvent(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var filters registration.ListFilters
	var page registration.PageRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.directory.ListForEvent(actor, c.Param("id"), filters, page)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildListResponse(result, page))
}

// ListMine godoc
// @Summary List the caller's registrations across events
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Free-text search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResponse
// @Router /registrations/mine [get]
func (h *RegistrationHandler) ListMine(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var filters registration.ListFilters
	var page registration.PageRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.directory.ListForParticipant(actor, actor.UserID, filters, page)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildListResponse(result, page))
}
