package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/models"
	"bookify/services/provider"
	"bookify/utils"
)

// ProviderHandler exposes provider management and availability
// profile endpoints.
type ProviderHandler struct {
	Svc provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Svc: svc}
}

func (h *ProviderHandler) Register(c *gin.Context) {
	var in provider.CreateProviderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProviderHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	providers, err := h.Svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	var in provider.UpdateProviderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Deactivate(c *gin.Context) {
	if err := h.Svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProviderHandler) GetAvailability(c *gin.Context) {
	profile, err := h.Svc.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProviderHandler) ReplaceAvailability(c *gin.Context) {
	var profile models.AvailabilityProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	updated, err := h.Svc.ReplaceAvailability(c.Request.Context(), c.Param("id"), profile)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
