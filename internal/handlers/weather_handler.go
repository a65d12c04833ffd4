package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// WeatherHandler 封装了天气查询的 HTTP 处理逻辑
type WeatherHandler struct {
	svc *services.WeatherService
}

// NewWeatherHandler 创建一个新的 WeatherHandler 实例
func NewWeatherHandler(svc *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

// GetWeather godoc
// @Summary 获取天气信息
// @Description 按城市ID代理查询外部天气数据源
// @Tags Weather
// @Produce json
// @Param cityId query string true "城市ID"
// @Success 200 {object} utils.Response{data=services.WeatherInfo}
// @Failure 400 {object} utils.Response "cityId不能为空"
// @Router /weather [get]
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	cityID := c.Query("cityId")
	info, err := h.svc.GetWeather(cityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, info)
}
