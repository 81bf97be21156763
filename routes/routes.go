package routes

import (
	"EmoGoBackend/controllers"
	"EmoGoBackend/middleware"
	"EmoGoBackend/models"
	"EmoGoBackend/services"
	"EmoGoBackend/templates"
	"EmoGoBackend/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由需要的服务
type Dependencies struct {
	Records      *services.RecordService
	Exporter     *services.ExportService
	DatabaseName string
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	utils.RegisterValidators()
	r.SetHTMLTemplate(templates.Load())

	// 每种记录类型一组 POST / GET，前端格式和旧格式共用同一套处理逻辑
	for _, kind := range models.AllKinds() {
		rc := controllers.NewRecordController(kind, deps.Records)
		r.POST(kind.Route(), rc.Create)
		r.GET(kind.Route(), rc.List)
	}

	exportController := controllers.NewExportController(deps.Exporter, deps.Records)
	r.GET("/export", exportController.Export)
	r.GET("/export-page", exportController.ExportPage)
	r.GET("/dashboard", exportController.Dashboard)
	r.GET("/", exportController.Dashboard)

	statusController := controllers.NewStatusController(deps.Records, deps.DatabaseName)
	r.GET("/status", statusController.Status)
	r.GET("/ping", statusController.Ping)
}

// NewRouter 创建带中间件和全部路由的引擎
func NewRouter(deps Dependencies, allowOrigins []string) *gin.Engine {
	r := gin.New()
	middleware.SetupMiddleware(r, allowOrigins)
	RegisterRoutes(r, deps)
	return r
}
