package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/models"
	"bookify/services/catalog"
	"bookify/utils"
)

// AppointmentTypeHandler exposes the service catalogue endpoints.
type AppointmentTypeHandler struct {
	Svc catalog.AppointmentTypeService
}

func NewAppointmentTypeHandler(svc catalog.AppointmentTypeService) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{Svc: svc}
}

func (h *AppointmentTypeHandler) Create(c *gin.Context) {
	var in catalog.CreateAppointmentTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *AppointmentTypeHandler) List(c *gin.Context) {
	types, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if types == nil {
		types = []models.AppointmentType{}
	}
	c.JSON(http.StatusOK, types)
}

func (h *AppointmentTypeHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AppointmentTypeHandler) Update(c *gin.Context) {
	var in catalog.UpdateAppointmentTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AppointmentTypeHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
