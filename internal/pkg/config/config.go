package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file at configPath for local runs and builds
// the application config from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_NAME", "groomer-partner-app")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "")

	v.SetDefault("API_BASE_URL", "http://localhost:8090/api")
	v.SetDefault("API_TIMEOUT_SECONDS", 10)
	v.SetDefault("API_MAX_RETRIES", 2)

	v.SetDefault("OTP_LOGIN_COOLDOWN_SECONDS", 30)
	v.SetDefault("OTP_REGISTRATION_COOLDOWN_SECONDS", 120)
	v.SetDefault("OTP_MIN_PHONE_DIGITS", 10)
	v.SetDefault("DEFAULT_COUNTRY", "IN")

	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_KEY_PREFIX", "petgroomers")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 4)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.API.BaseURL = strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	configs.API.TimeoutSeconds = v.GetInt("API_TIMEOUT_SECONDS")
	configs.API.MaxRetries = v.GetInt("API_MAX_RETRIES")

	configs.OTP.LoginCooldownSeconds = v.GetInt("OTP_LOGIN_COOLDOWN_SECONDS")
	configs.OTP.RegistrationCooldownSeconds = v.GetInt("OTP_REGISTRATION_COOLDOWN_SECONDS")
	configs.OTP.MinPhoneDigits = v.GetInt("OTP_MIN_PHONE_DIGITS")
	configs.OTP.DefaultCountry = strings.ToUpper(v.GetString("DEFAULT_COUNTRY"))

	configs.Session.Store = strings.ToLower(v.GetString("SESSION_STORE"))
	configs.Session.KeyPrefix = v.GetString("SESSION_KEY_PREFIX")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
