package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/models"
	"bookify/services/customer"
	"bookify/utils"
)

// CustomerHandler exposes customer management endpoints.
type CustomerHandler struct {
	Svc customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var in customer.CreateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cust, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var in customer.UpdateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cust, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
