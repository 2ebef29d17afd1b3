package routes

import (
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/config"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/controllers"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/middlewares"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	hub := services.NewPlanEventHub()

	userSvc := services.NewUserService(config.DB)
	dietitianSvc := services.NewDietitianService(config.DB)
	planSvc := services.NewDietPlanService(config.DB, hub)
	logSvc := services.NewHealthLogService(config.DB)
	dashSvc := services.NewDashboardService(config.DB)
	recipeSvc := services.NewRecipeService(config.DB)
	paramsSvc := services.NewHealthParamsService(config.DB)

	authCtl := controllers.NewAuthController(userSvc, dietitianSvc)
	userCtl := controllers.NewUserController(userSvc, dietitianSvc)
	planCtl := controllers.NewDietPlanController(planSvc)
	logCtl := controllers.NewHealthLogController(logSvc)
	dashCtl := controllers.NewDashboardController(dashSvc)
	recipeCtl := controllers.NewRecipeController(recipeSvc)
	paramsCtl := controllers.NewHealthParamsController(paramsSvc)
	eventsCtl := controllers.NewPlanEventsController(hub)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/dietitian/register", authCtl.RegisterDietitian)
		auth.POST("/dietitian/login", authCtl.LoginDietitian)
	}

	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
	}

	users := api.Group("/users")
	{
		users.GET("", userCtl.ListUsers)
		users.GET("/count", userCtl.UserCount)
		users.GET("/new-this-month", userCtl.NewUsersThisMonth)
		users.GET("/active-this-week", dashCtl.GetActiveUsersThisWeek)
	}

	dietitians := api.Group("/dietitians")
	{
		dietitians.GET("", userCtl.ListDietitians)
		dietitians.GET("/count", userCtl.DietitianCount)
	}

	plans := api.Group("/diet-plans")
	{
		plans.POST("/save/:userId", planCtl.Save)
		plans.POST("/confirm/:dietPlanId", planCtl.ConfirmForReview)
		plans.GET("/current/:userId", planCtl.GetCurrent)
		plans.GET("/review", planCtl.ListForReview)
		plans.GET("/events", eventsCtl.EventsWS)
		plans.GET("/:id", planCtl.GetDetails)
		plans.PUT("/:id/meal", planCtl.SubstituteMeal)
		plans.PUT("/:id/approve", planCtl.Approve)
	}

	logs := api.Group("/health-logs")
	{
		logs.GET("/recent-patients", logCtl.RecentPatients)
		logs.GET("/:userId", logCtl.GetUserLogs)
		logs.POST("/:userId", logCtl.AddLogEntry)
		logs.PUT("/:userId/:date", logCtl.UpdateLogEntry)
		logs.DELETE("/:userId/:date", logCtl.DeleteLogEntry)
	}

	params := api.Group("/health-parameters")
	{
		params.GET("/:userId", paramsCtl.Get)
		params.POST("/:userId", paramsCtl.Upsert)
		params.DELETE("/:userId", paramsCtl.Delete)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", recipeCtl.List)
		recipes.GET("/search", recipeCtl.Search)
		recipes.GET("/nutrition", recipeCtl.ByNutrition)
		recipes.GET("/meal-type/:mealType", recipeCtl.ByMealType)
		recipes.GET("/:id", recipeCtl.GetByID)
		recipes.POST("", recipeCtl.Create)
		recipes.PUT("/:id", recipeCtl.Update)
		recipes.DELETE("/:id", recipeCtl.Delete)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", dashCtl.GetStats)
		dashboard.GET("/user-growth", dashCtl.GetUserGrowth)
		dashboard.GET("/activity-stats", dashCtl.GetActivityStats)
	}

	return r
}
