package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorly/gateway"
	"tutorly/middleware"
	"tutorly/models"
	"tutorly/services/appointment"
	"tutorly/services/scheduling"
	"tutorly/utils"
)

// AppointmentHandler serves the appointment screens: bucketized lists,
// creation, cancellation and payment checkout.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Sched   scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewAppointmentHandler builds the handler.
func NewAppointmentHandler(svc appointment.AppointmentService, sched scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Sched: sched, Logger: logger}
}

// ListBuckets returns the viewer's appointments partitioned into the
// upcoming/past/cancelled (and, for students and parents, awaiting-payment)
// buckets. The partition is recomputed per request against the live clock.
func (h *AppointmentHandler) ListBuckets(c *gin.Context) {
	filter, role := viewerFilter(c)

	appts, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Sched.Buckets(appts, role))
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	StudentIDs []string  `json:"studentIds"`
	TutorIDs   []string  `json:"tutorIds"`
	ParentIDs  []string  `json:"parentIds"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
}

// Create books a new appointment.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input CreateAppointmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.StartTime.Before(input.EndTime) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "startTime must be before endTime")
		return
	}

	status := models.Status(input.Status)
	if status == "" {
		status = models.StatusPending
	}
	appt := models.Appointment{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    status,
		Students:  models.Refs(input.StudentIDs...),
		Tutors:    models.Refs(input.TutorIDs...),
		Parents:   models.Refs(input.ParentIDs...),
		Notes:     input.Notes,
	}

	created, err := h.Service.Create(c.Request.Context(), appt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": created})
}

// Cancel transitions an appointment to cancelled and returns the refetched
// list. Cancelling an already cancelled or completed appointment is
// rejected without reaching the remote API.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	filter, _ := viewerFilter(c)
	id := c.Param("id")

	appts, err := h.Service.Cancel(c.Request.Context(), filter, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// Checkout returns the payment redirect URL for an appointment. The caller
// performs the navigation; status flips to paid asynchronously via webhook.
func (h *AppointmentHandler) Checkout(c *gin.Context) {
	filter, _ := viewerFilter(c)
	id := c.Param("id")

	url, err := h.Service.Checkout(c.Request.Context(), filter, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// viewerFilter scopes the remote query to the authenticated viewer: a
// student sees appointments they attend, a parent their children's, a tutor
// the ones they teach. Admins see everything.
func viewerFilter(c *gin.Context) (models.ParticipantFilter, string) {
	userID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextRole)

	var filter models.ParticipantFilter
	switch role {
	case models.RoleStudent:
		filter.StudentIDs = []string{userID}
	case models.RoleParent:
		filter.ParentIDs = []string{userID}
	case models.RoleTutor:
		filter.TutorIDs = []string{userID}
	}
	return filter, role
}

// respondError maps service failures onto HTTP responses. Server-provided
// messages pass through verbatim; transport and decoding failures become a
// generic upstream error.
func respondError(c *gin.Context, err error) {
	var actionErr *appointment.ActionError
	if errors.As(err, &actionErr) {
		status := http.StatusConflict
		if actionErr.Code == "notFound" {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, actionErr.Message, "")
		return
	}

	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		if gwErr.Kind == gateway.KindHTTP {
			utils.JSONError(c, gwErr.StatusCode, gwErr.UserMessage(), "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, gwErr.UserMessage(), "")
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err.Error())
}
