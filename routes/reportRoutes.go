package routes

import (
	"denuncias-be/controllers"
	"denuncias-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the incident report routes
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController) {
	reports := r.Group("/api/reports", middlewares.AuthMiddleware())
	{
		reports.POST("", middlewares.ReportRateLimiter(10), rc.CreateReport)
		reports.GET("/my-reports", rc.MyReports)
		reports.GET("/all", rc.AllReports)
		reports.GET("/public", rc.PublicReports)
		reports.PUT("/:id/status", rc.UpdateStatus)
	}
}
