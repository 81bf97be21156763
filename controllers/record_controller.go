package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"EmoGoBackend/models"
	"EmoGoBackend/services"
	"EmoGoBackend/utils"

	"github.com/gin-gonic/gin"
)

// RecordController 一种记录类型的新增和列表接口
type RecordController struct {
	kind    models.RecordKind
	service *services.RecordService
}

func NewRecordController(kind models.RecordKind, service *services.RecordService) *RecordController {
	return &RecordController{kind: kind, service: service}
}

// Create 校验请求体并写入一条记录
func (rc *RecordController) Create(c *gin.Context) {
	req := models.NewRequest(rc.kind)
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.APIResponse{
			Success: false,
			Message: fmt.Sprintf("invalid %s record", rc.kind),
			Errors:  utils.ValidationDetails(err),
		})
		return
	}

	id, _, err := rc.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "create "+rc.kind.String(), err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Message: fmt.Sprintf("%s record created successfully", rc.kind),
		Data:    models.CreatedResponse{ID: id, Kind: rc.kind},
	})
}

// List 返回该类型的全部记录，可选 skip / limit 分页
func (rc *RecordController) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	records, total, err := rc.service.List(c.Request.Context(), rc.kind, services.FindOptions{Skip: skip, Limit: limit})
	if err != nil {
		respondError(c, "list "+rc.kind.String(), err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Retrieved %d %s", len(records), rc.kind),
		Data:    gin.H{rc.kind.ListKey(): records},
		Count:   models.Int64Ptr(total),
	})
}

// queryInt 解析非负整数查询参数，缺省为 0；失败时已写入 400 响应
func queryInt(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: fmt.Sprintf("query parameter %s must be a non-negative integer", name),
		})
		return 0, false
	}
	return n, true
}
