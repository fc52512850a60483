package routes

import (
	"denuncias-be/controllers"
	"denuncias-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the account routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/verify-email", controllers.VerifyEmail)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
