package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrCityIDRequired 表示天气查询缺少城市ID
var ErrCityIDRequired = errors.New("cityId不能为空")

// WeatherInfo 是上游天气接口返回的原始结构
type WeatherInfo struct {
	WeatherInfo WeatherDetail `json:"weatherinfo"`
}

// WeatherDetail 是单个城市的天气明细
type WeatherDetail struct {
	City    string `json:"city"`
	CityID  string `json:"cityid"`
	Temp    string `json:"temp"`
	WD      string `json:"WD"` // 风向
	WS      string `json:"WS"` // 风力
	SD      string `json:"SD"` // 湿度
	AP      string `json:"AP"` // 气压
	NJD     string `json:"njd"`
	WSE     string `json:"WSE"`
	Time    string `json:"time"`
	SM      string `json:"sm"`
	IsRadar string `json:"isRadar"`
	Radar   string `json:"Radar"`
}

// WeatherService 代理外部天气数据源的查询，无本地状态
type WeatherService struct {
	baseURL string
	client  *http.Client
}

// NewWeatherService 创建一个新的 WeatherService 实例
func NewWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetWeather 按城市ID查询天气信息
func (s *WeatherService) GetWeather(cityID string) (*WeatherInfo, error) {
	if cityID == "" {
		return nil, ErrCityIDRequired
	}

	url := fmt.Sprintf("%s/%s.json", s.baseURL, cityID)
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("请求天气数据失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("天气数据源返回异常状态: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取天气数据失败: %w", err)
	}

	var info WeatherInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("解析天气数据失败: %w", err)
	}
	return &info, nil
}
