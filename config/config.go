package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Clinic      ClinicConfig
	ClinicAPI   ClinicAPIConfig
	Wizard      WizardConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ClinicConfig describes the clinic working schedule used by the availability
// service. Times are "HH:MM" wall-clock values in the clinic timezone. Sunday
// is always closed regardless of these values.
type ClinicConfig struct {
	Timezone      string
	WeekdayOpen   string
	WeekdayClose  string
	SaturdayOpen  string
	SaturdayClose string
	LunchBreak    string
	SlotDuration  time.Duration
	ChatBotLink   string
}

// ClinicAPIConfig points the wizard gateway at the clinic backend.
type ClinicAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type WizardConfig struct {
	SessionTTL time.Duration
}

func NewConfig() (*Config, error) {
	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	slotDuration, err := time.ParseDuration(getEnv("CLINIC_SLOT_DURATION", "60m"))
	if err != nil {
		return nil, err
	}

	clinicAPITimeout, err := time.ParseDuration(getEnv("CLINIC_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(getEnv("WIZARD_SESSION_TTL", "30m"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "clinicbook"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "clinicbook"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			MaxLifetime:        postgresMaxLifetime,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Clinic: ClinicConfig{
			Timezone:      getEnv("CLINIC_TIMEZONE", "Asia/Kolkata"),
			WeekdayOpen:   getEnv("CLINIC_WEEKDAY_OPEN", "08:00"),
			WeekdayClose:  getEnv("CLINIC_WEEKDAY_CLOSE", "20:00"),
			SaturdayOpen:  getEnv("CLINIC_SATURDAY_OPEN", "09:00"),
			SaturdayClose: getEnv("CLINIC_SATURDAY_CLOSE", "17:00"),
			LunchBreak:    getEnv("CLINIC_LUNCH_BREAK", "13:00"),
			SlotDuration:  slotDuration,
			ChatBotLink:   getEnv("CLINIC_CHATBOT_LINK", "https://t.me/Med_ad_bot"),
		},
		ClinicAPI: ClinicAPIConfig{
			BaseURL: getEnv("CLINIC_API_BASE_URL", "http://localhost:8080"),
			Timeout: clinicAPITimeout,
		},
		Wizard: WizardConfig{
			SessionTTL: sessionTTL,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}
