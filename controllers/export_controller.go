package controllers

import (
	"fmt"
	"net/http"
	"time"

	"EmoGoBackend/config"
	"EmoGoBackend/models"
	"EmoGoBackend/services"

	"github.com/gin-gonic/gin"
)

// ExportController 导出接口和给审阅者使用的页面
type ExportController struct {
	exporter *services.ExportService
	records  *services.RecordService
}

func NewExportController(exporter *services.ExportService, records *services.RecordService) *ExportController {
	return &ExportController{exporter: exporter, records: records}
}

// Export GET /export?data_type=...&format=json|csv
func (ec *ExportController) Export(c *gin.Context) {
	dataType := c.Query("data_type")
	format := c.DefaultQuery("format", services.FormatJSON)

	result, err := ec.exporter.Export(c.Request.Context(), dataType, format)
	if err != nil {
		respondError(c, "export", err)
		return
	}

	config.Logger.Infow("导出数据",
		"requestID", c.GetString("requestID"),
		"dataType", dataType,
		"format", format,
		"kinds", result.Kinds,
		"records", result.Records,
	)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}

type pageData struct {
	Title       string
	Frontend    []models.KindStats
	Legacy      []models.KindStats
	Total       int64
	Error       string
	GeneratedAt string
}

func (ec *ExportController) loadPageData(c *gin.Context, title string) (pageData, int) {
	data := pageData{
		Title:       title,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	stats, err := ec.records.Stats(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("加载统计失败", "requestID", c.GetString("requestID"), "error", err)
		data.Error = "Unable to load statistics: database unavailable."
		return data, http.StatusServiceUnavailable
	}
	for _, s := range stats {
		data.Total += s.Count
		if s.Schema == models.SchemaFrontend {
			data.Frontend = append(data.Frontend, s)
		} else {
			data.Legacy = append(data.Legacy, s)
		}
	}
	return data, http.StatusOK
}

// Dashboard GET / 和 /dashboard：数据统计和下载链接
func (ec *ExportController) Dashboard(c *gin.Context) {
	data, status := ec.loadPageData(c, "EmoGo Data Dashboard")
	c.HTML(status, "dashboard.tmpl", data)
}

// ExportPage GET /export-page：按类型下载
func (ec *ExportController) ExportPage(c *gin.Context) {
	data, status := ec.loadPageData(c, "EmoGo Data Export")
	c.HTML(status, "export_page.tmpl", data)
}
