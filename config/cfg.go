package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/nuxtvisa/visa-portal/internal/api/http"
	"github.com/nuxtvisa/visa-portal/internal/apisrv/auth"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/mail"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/realtime"
	"github.com/nuxtvisa/visa-portal/internal/sessioncleanup"
	"github.com/nuxtvisa/visa-portal/internal/store"
	"github.com/nuxtvisa/visa-portal/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB             store.Config          `mapstructure:"mysql"`
	Logger         log.Config            `mapstructure:"logger"`
	HTTP           httpapi.Config        `mapstructure:"http"`
	Auth           auth.Config           `mapstructure:"auth"`
	Mailer         mail.Config           `mapstructure:"mailer"`
	Content        content.Config        `mapstructure:"content"`
	Realtime       realtime.Config       `mapstructure:"realtime"`
	RateLimit      ratelimit.Config      `mapstructure:"rate_limit"`
	SessionCleanup sessioncleanup.Config `mapstructure:"session_cleanup"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	// Enable environment variable support
	// Viper will automatically read env vars and override config file values
	viper.AutomaticEnv()
	// Replace dots and dashes with underscores in env var names
	// e.g., mysql.dsn -> MYSQL__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	// Bind common environment variables to config keys
	// This allows using simpler env var names that match app.yaml
	bindEnvVars()

	// Try to read config file (optional - can work with env vars only)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/visa-portal")
		viper.AddConfigPath("/etc/visa-portal")
		// Try to read config, but don't fail if it doesn't exist
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Handle MySQL DSN construction from individual env vars if DSN is not set
	// Supports both MYSQL_* env vars and DigitalOcean's db.* env vars
	if config.DB.DSN == "" {
		var mysqlHost, mysqlPort, mysqlUser, mysqlPassword, mysqlDatabase string

		// Check for DigitalOcean's db.* env vars first
		if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
			mysqlHost = dbHost
			mysqlPort = os.Getenv("db.PORT")
			mysqlUser = os.Getenv("db.USERNAME")
			mysqlPassword = os.Getenv("db.PASSWORD")
			mysqlDatabase = os.Getenv("db.DATABASE")
		} else {
			// Fall back to MYSQL_* env vars
			mysqlHost = os.Getenv("MYSQL_HOST")
			mysqlPort = os.Getenv("MYSQL_PORT")
			mysqlUser = os.Getenv("MYSQL_USER")
			mysqlPassword = os.Getenv("MYSQL_PASSWORD")
			mysqlDatabase = os.Getenv("MYSQL_DATABASE")
		}

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				// Construct DSN for DO managed database (with TLS)
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true&tls=custom",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.master_password", "AUTH_MASTER_PASSWORD")
	viper.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	viper.BindEnv("auth.secure_cookie", "AUTH_SECURE_COOKIE")

	// Mailer
	viper.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	viper.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	viper.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	viper.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")
	viper.BindEnv("mailer.worker_interval", "MAILER_WORKER_INTERVAL")

	// Content
	viper.BindEnv("content.whatsapp_number", "CONTENT_WHATSAPP_NUMBER")

	// Realtime
	viper.BindEnv("realtime.broker", "REALTIME_BROKER")
	viper.BindEnv("realtime.redis_addr", "REALTIME_REDIS_ADDR")
	viper.BindEnv("realtime.redis_password", "REALTIME_REDIS_PASSWORD")
	viper.BindEnv("realtime.redis_db", "REALTIME_REDIS_DB")
	viper.BindEnv("realtime.buffer_size", "REALTIME_BUFFER_SIZE")

	// Rate limits
	viper.BindEnv("rate_limit.applications_per_hour", "RATE_LIMIT_APPLICATIONS_PER_HOUR")
	viper.BindEnv("rate_limit.chat_messages_per_hour", "RATE_LIMIT_CHAT_MESSAGES_PER_HOUR")
	viper.BindEnv("rate_limit.sign_ins_per_hour", "RATE_LIMIT_SIGN_INS_PER_HOUR")
	viper.BindEnv("rate_limit.sign_ups_per_hour", "RATE_LIMIT_SIGN_UPS_PER_HOUR")

	// Expired session cleanup
	viper.BindEnv("session_cleanup.worker_interval", "SESSION_CLEANUP_WORKER_INTERVAL")
}
