package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/models"
	"bookify/utils"
)

// FindSlots answers GET /api/slots: every bookable window across the
// requested providers and date range, ordered by start time.
func (h *AppointmentHandler) FindSlots(c *gin.Context) {
	startDate, err := parseTimeParam(c.Query("start_date"))
	if err != nil || startDate.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start_date is required")
		return
	}
	endDate, err := parseTimeParam(c.Query("end_date"))
	if err != nil || endDate.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "end_date is required")
		return
	}

	query := models.SlotQuery{
		ProviderID:        c.Query("provider_id"),
		AppointmentTypeID: c.Query("appointment_type_id"),
		StartDate:         startDate,
		EndDate:           endDate,
	}

	slots, err := h.Svc.FindAvailableSlots(c.Request.Context(), query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if slots == nil {
		slots = []models.CandidateSlot{}
	}
	c.JSON(http.StatusOK, slots)
}
