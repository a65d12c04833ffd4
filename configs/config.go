package configs

import (
	"log"
	"os"
	"sync"
	"time"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret      string
	JWTExpiresIn   time.Duration
	ServerPort     string
	WeatherBaseURL string
}

const (
	defaultJWTSecret      = "midway-base"           // Default JWT secret, used if env var is not set.
	envJWTSecretKey       = "JWT_SECRET_KEY"        // Environment variable name for the JWT secret.
	defaultJWTExpiresIn   = 24 * time.Hour          // Default token lifetime.
	envJWTExpiresInKey    = "JWT_EXPIRES_IN"        // Environment variable name for the token lifetime, e.g. "24h".
	defaultServerPort     = "7001"                  // Default server port.
	envServerPortKey      = "SERVER_PORT"           // Environment variable name for the server port.
	defaultWeatherBaseURL = "https://midwayjs.org/resource" // 默认天气数据源
	envWeatherBaseURLKey  = "WEATHER_BASE_URL"      // 天气数据源环境变量名
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("警告: %s 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。", envJWTSecretKey)
		}

		jwtExpiresIn := defaultJWTExpiresIn
		if raw := os.Getenv(envJWTExpiresInKey); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil || parsed <= 0 {
				log.Printf("警告: %s 的值 %q 无法解析为有效时长，使用默认值 %s。", envJWTExpiresInKey, raw, defaultJWTExpiresIn)
			} else {
				jwtExpiresIn = parsed
			}
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		weatherBaseURL := os.Getenv(envWeatherBaseURLKey)
		if weatherBaseURL == "" {
			weatherBaseURL = defaultWeatherBaseURL
		}

		AppConfig = Configuration{
			JWTSecret:      jwtSecret,
			JWTExpiresIn:   jwtExpiresIn,
			ServerPort:     serverPort,
			WeatherBaseURL: weatherBaseURL,
		}

		log.Println("应用配置已加载。")
	})
}
