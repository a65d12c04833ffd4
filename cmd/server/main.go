package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/configs"
	"github.com/lunjingjie/midway-base-framework/internal/handlers"
	"github.com/lunjingjie/midway-base-framework/internal/routes"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/db"
)

// @title 后台管理系统 API
// @version 1.0
// @description 用户/角色/菜单管理与RBAC权限的后台服务
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 加载配置并初始化数据库连接
	configs.LoadConfig()
	db.InitDB()
	defer db.CloseDB()

	gormDB := db.GetDB()

	// 组装服务
	userRoleService := services.NewUserRoleService(gormDB)
	roleMenuService := services.NewRoleMenuService(gormDB)
	userService := services.NewUserService(gormDB, userRoleService)
	roleService := services.NewRoleService(gormDB, roleMenuService, userRoleService)
	menuService := services.NewMenuService(gormDB, roleMenuService)
	authService := services.NewAuthService(userService, userRoleService)
	weatherService := services.NewWeatherService(configs.AppConfig.WeatherBaseURL)

	// 初始化默认角色、菜单与管理员账号
	initService := services.NewInitService(gormDB, userService, roleService, roleMenuService, userRoleService)
	if err := initService.Init(); err != nil {
		log.Fatalf("Failed to initialize seed data: %v", err)
	}

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(router, &routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(userService),
		Role:    handlers.NewRoleHandler(roleService),
		Menu:    handlers.NewMenuHandler(menuService, userRoleService),
		Weather: handlers.NewWeatherHandler(weatherService),
	})

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
