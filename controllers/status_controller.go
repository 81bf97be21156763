package controllers

import (
	"net/http"

	"EmoGoBackend/models"
	"EmoGoBackend/services"

	"github.com/gin-gonic/gin"
)

// StatusController 存储连通性报告
type StatusController struct {
	records *services.RecordService
	dbName  string
}

func NewStatusController(records *services.RecordService, dbName string) *StatusController {
	return &StatusController{records: records, dbName: dbName}
}

// Status GET /status：数据库可达时返回 200 和各集合计数，否则 503
func (sc *StatusController) Status(c *gin.Context) {
	ctx := c.Request.Context()
	status := models.StatusResponse{
		Driver: sc.records.Store().Driver(),
		Name:   sc.dbName,
	}

	if err := sc.records.Ping(ctx); err != nil {
		status.Database = "disconnected"
		status.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Message: "database unavailable",
			Data:    status,
		})
		return
	}

	status.Database = "connected"
	stats, err := sc.records.Stats(ctx)
	if err != nil {
		respondError(c, "status", err)
		return
	}
	status.Collections = stats
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "database connected",
		Data:    status,
	})
}

// Ping 存活检查
func (sc *StatusController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
