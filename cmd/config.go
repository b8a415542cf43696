package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string `mapstructure:"http_port"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	JWTSecret string `mapstructure:"jwt_secret"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	StaleLoadingAfter    time.Duration `mapstructure:"stale_loading_after"`
	StaleLoadingSchedule string        `mapstructure:"stale_loading_schedule"`
}

var configDefaults = map[string]any{
	"http_port":              "8080",
	"db_port":                "5432",
	"db_sslmode":             "disable",
	"log_level":              "info",
	"log_format":             "json",
	"stale_loading_after":    "24h",
	"stale_loading_schedule": "0 */15 * * * *",
}

var configEnv = map[string]string{
	"http_port":              "HTTP_PORT",
	"db_host":                "DB_HOST",
	"db_port":                "DB_PORT",
	"db_user":                "DB_USER",
	"db_password":            "DB_PASSWORD",
	"db_name":                "DB_NAME",
	"db_sslmode":             "DB_SSLMODE",
	"jwt_secret":             "JWT_SECRET",
	"log_level":              "LOG_LEVEL",
	"log_format":             "LOG_FORMAT",
	"stale_loading_after":    "STALE_LOADING_AFTER",
	"stale_loading_schedule": "STALE_LOADING_SCHEDULE",
}

// LoadConfig reads envFile into the process environment when it exists and then
// resolves every setting from the environment, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	for key, env := range configEnv {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks what serving requires. Migrations only need the database.
func (c Config) Validate() error {
	var missing []error
	required := []struct{ name, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, fmt.Errorf("%s is required", r.name))
		}
	}
	if c.StaleLoadingAfter <= 0 {
		missing = append(missing, errors.New("STALE_LOADING_AFTER must be positive"))
	}
	return errors.Join(missing...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
