package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	OTP     OTPConfig
	Session SessionConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig describes the remote groomer backend
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	MaxRetries     int
}

// OTPConfig contains the verification flow tunables
type OTPConfig struct {
	LoginCooldownSeconds        int
	RegistrationCooldownSeconds int
	MinPhoneDigits              int
	DefaultCountry              string
}

// SessionConfig selects where the auth session is persisted
type SessionConfig struct {
	Store     string // "redis" or "memory"
	KeyPrefix string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
