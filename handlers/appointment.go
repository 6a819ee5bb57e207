package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appointmentRepo "bookify/database/repository/appointment"
	"bookify/models"
	"bookify/services/booking"
	"bookify/utils"
)

// AppointmentHandler exposes booking mutations and queries.
type AppointmentHandler struct {
	Svc booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in booking.CreateAppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Svc.CreateAppointment(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := appointmentRepo.Filter{
		ProviderID: c.Query("provider_id"),
		CustomerID: c.Query("customer_id"),
		Status:     models.AppointmentStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown status "+string(filter.Status))
		return
	}

	var err error
	if filter.From, err = parseTimeParam(c.Query("start_date")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if filter.To, err = parseTimeParam(c.Query("end_date")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appts, err := h.Svc.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var in booking.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Svc.UpdateAppointment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.Svc.CancelAppointment(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseTimeParam accepts RFC 3339 timestamps or bare dates; an empty
// value yields the zero time (filter unset).
func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(models.DateLayout, value)
}
