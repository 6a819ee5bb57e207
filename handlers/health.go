package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify/utils"
)

// Healthz serves the latest stored health snapshot.
func Healthz(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
