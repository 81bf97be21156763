package controllers

import (
	"context"
	"errors"
	"net/http"

	"EmoGoBackend/config"
	"EmoGoBackend/models"
	"EmoGoBackend/services"

	"github.com/gin-gonic/gin"
)

// respondError 按错误类型返回状态码：选择器错误 400，存储不可用 503，其余 500
func respondError(c *gin.Context, action string, err error) {
	var selErr *services.SelectorError
	switch {
	case errors.As(err, &selErr):
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: selErr.Error(),
		})
	case errors.Is(err, services.ErrStoreUnavailable):
		config.Logger.Errorw(action+"失败：数据库不可用",
			"requestID", c.GetString("requestID"),
			"error", err,
		)
		c.JSON(http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Message: "database unavailable",
		})
	case errors.Is(err, context.Canceled):
		// 客户端已断开，响应不会被读取
		config.Logger.Infow(action+"已取消", "requestID", c.GetString("requestID"))
		c.Status(499)
	default:
		config.Logger.Errorw(action+"失败",
			"requestID", c.GetString("requestID"),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Message: "internal error: " + action,
		})
	}
}
