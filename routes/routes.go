package routes

import (
	"github.com/Malav2364/calorify/controllers"
	"github.com/Malav2364/calorify/middlewares"
	"github.com/Malav2364/calorify/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db)
	dishSvc := services.NewDishService(db)
	historySvc := services.NewHistoryService(db)
	daySvc := services.NewDayService(db, historySvc)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	dishCtl := controllers.NewDishController(dishSvc)
	dayCtl := controllers.NewDayController(daySvc, historySvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.Auth(userSvc))
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)

		api.POST("/dishes", dishCtl.Create)
		api.GET("/dishes", dishCtl.List)
		api.GET("/dishes/:id", dishCtl.Get)
		api.PATCH("/dishes/:id", dishCtl.Update)
		api.DELETE("/dishes/:id", dishCtl.Delete)

		api.POST("/day/close", dayCtl.Close)
		api.GET("/history", dayCtl.History)
	}

	return r
}
