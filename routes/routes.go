package routes

import (
    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/controllers"
    "github.com/itstoasti/KetoMate-sub001/middlewares"
    "github.com/itstoasti/KetoMate-sub001/services"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    r.Use(cors.New(cors.Config{
        AllowAllOrigins: true,
        AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
        AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
    }))

    // shared singletons
    hub := services.NewRealtimeHub()
    sessions := services.NewSessionRegistry()
    llm := services.NewLLMService()
    assistant := services.NewAssistantService(llm)
    vision := services.NewVisionService(llm)
    mealSvc := services.NewMealService(hub)
    foodSvc := services.NewFoodService(assistant)
    suggestions := services.NewSuggestionService(mealSvc, llm)
    dashboard := services.NewDashboardService(mealSvc, sessions)
    summary := services.NewSummaryService(config.DB)

    services.InitAlertDeps(config.DB, hub)

    authCtl := controllers.NewAuthController(sessions, hub, assistant)
    mealCtl := controllers.NewMealController(mealSvc)
    foodCtl := controllers.NewFoodController(foodSvc, assistant, vision)
    assistantCtl := controllers.NewAssistantController(assistant, suggestions)
    dashCtl := controllers.NewDashboardController(dashboard)
    analyticsCtl := controllers.NewAnalyticsController(summary)
    rtCtl := controllers.NewRealtimeController(hub)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", authCtl.Register)
        auth.POST("/login", authCtl.Login)
    }

    // Protected routes
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.POST("/auth/logout", authCtl.Logout)

        api.GET("/profile", controllers.GetProfile)
        api.PUT("/profile", controllers.UpdateProfile)
        api.POST("/profile/onboarding", controllers.CompleteOnboarding)
        api.POST("/profile/reset", controllers.ResetData)

        api.GET("/dashboard", dashCtl.GetDashboard)
        api.GET("/macros", mealCtl.GetDailyMacros)

        api.POST("/meals", mealCtl.LogMeal)
        api.GET("/meals", mealCtl.ListMeals)
        api.DELETE("/meals/:id", mealCtl.DeleteMeal)

        api.POST("/weight", controllers.AddWeight)
        api.GET("/weight", controllers.ListWeight)
        api.PUT("/weight/:id", controllers.UpdateWeight)
        api.DELETE("/weight/:id", controllers.DeleteWeight)

        api.GET("/food/search", foodCtl.SearchFoods)
        api.GET("/food/barcode/:code", foodCtl.LookupBarcode)
        api.POST("/food/analyze", foodCtl.AnalyzeFood)
        api.POST("/food/scan-label", foodCtl.ScanLabel)

        api.GET("/assistant/conversations", assistantCtl.ListConversations)
        api.POST("/assistant/conversations", assistantCtl.CreateConversation)
        api.POST("/assistant/conversations/:id/messages", assistantCtl.SendMessage)
        api.GET("/assistant/suggestions", assistantCtl.GetSuggestions)

        api.GET("/analytics/summary", analyticsCtl.GetSummary)

        api.GET("/ws/macros", rtCtl.MacrosWS)
    }

    return r
}
