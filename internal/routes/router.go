package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lunjingjie/midway-base-framework/internal/auth"
	"github.com/lunjingjie/midway-base-framework/internal/handlers"
)

// Handlers 聚合了全部 HTTP 处理器，由 main 构建后传入
type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Role    *handlers.RoleHandler
	Menu    *handlers.MenuHandler
	Weather *handlers.WeatherHandler
}

// SetupRoutes 初始化所有路由。
// 认证中间件作用于整个 /api/v1 组，免认证路由在各注册函数中显式声明。
func SetupRoutes(router *gin.Engine, h *Handlers) {
	// API 文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	v1 := api.Group("/v1")
	v1.Use(auth.JWTAuthMiddleware())

	SetupAuthRoutes(v1, h.Auth)
	SetupSystemRoutes(v1, h.User, h.Role, h.Menu)
	SetupWeatherRoutes(v1, h.Weather)
}

// SetupWeatherRoutes 设置天气查询路由，整组免认证
func SetupWeatherRoutes(rg *gin.RouterGroup, h *handlers.WeatherHandler) {
	auth.SkipGroup("/api/v1/weather")
	weather := rg.Group("/weather")
	{
		// GET /api/v1/weather?cityId=101010100
		weather.GET("", h.GetWeather)
	}
}
