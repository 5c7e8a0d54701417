package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port               string
	DbUrl              string
	JwtSecret          string
	JwtExpireHours     int
	TmdbApiKey         string
	TmdbBaseUrl        string
	RedisUrl           string
	RedisPassword      string
	CorsAllowedOrigins []string
	SentryDns          string
	SentryRelease      string
	PrintErrors        bool
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	if configs.Port == "" {
		configs.Port = "3001"
	}
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.JwtSecret = os.Getenv("JWT_SECRET")
	// the old node variants disagreed on expiry (2h vs 24h), settled on 24h
	configs.JwtExpireHours, _ = strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if configs.JwtExpireHours <= 0 {
		configs.JwtExpireHours = 24
	}
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
}
