package controllers

import (
	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
)

// Health reports process liveness. It never touches the store and always
// succeeds while the process is up.
func Health(c *gin.Context) {
	utils.StatusOK(c, "ok")
}

// Ready verifies the store answers a trivial query. Failures are logged with
// full detail server-side and surfaced as a fixed 503 message.
func Ready(c *gin.Context) {
	db := config.DB.WithContext(c.Request.Context())
	if err := config.PingDB(db); err != nil {
		utils.LogError("Readiness check failed: %v", err)
		utils.ServiceUnavailable(c, "Database not ready")
		return
	}
	utils.StatusOK(c, "ready")
}
