package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Clinic ClinicConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Seed   SeedConfig
	Upload UploadConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// ClinicConfig controls how "today", "this week" and "this month" are
// interpreted for dashboards. All timestamps are stored in UTC; windows are
// computed in the clinic's local timezone and then converted.
type ClinicConfig struct {
	Timezone string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret                string
	AccessExpiry          time.Duration
	RefreshExpiry         time.Duration
	RememberRefreshExpiry time.Duration
}

// SeedConfig holds the bootstrap admin account created on first run.
type SeedConfig struct {
	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
}

type UploadConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	rememberExpiry, err := time.ParseDuration(viper.GetString("JWT_REMEMBER_REFRESH_EXPIRY"))
	if err != nil {
		rememberExpiry = 30 * 24 * time.Hour
	}

	timezone := viper.GetString("CLINIC_TIMEZONE")
	if timezone == "" {
		timezone = "Asia/Dhaka"
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Clinic: ClinicConfig{
			Timezone: timezone,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:                viper.GetString("JWT_SECRET"),
			AccessExpiry:          accessExpiry,
			RefreshExpiry:         refreshExpiry,
			RememberRefreshExpiry: rememberExpiry,
		},
		Seed: SeedConfig{
			AdminEmail:     viper.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword:  viper.GetString("SEED_ADMIN_PASSWORD"),
			AdminFirstName: viper.GetString("SEED_ADMIN_FIRST_NAME"),
			AdminLastName:  viper.GetString("SEED_ADMIN_LAST_NAME"),
		},
		Upload: UploadConfig{
			Dir: uploadDir,
		},
	}

	return config, nil
}
