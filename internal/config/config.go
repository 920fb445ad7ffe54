package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	ImageHost      ImageHost      `mapstructure:",squash"`
	StockAlertSync StockAlertSync `mapstructure:",squash"`
	Migration      Migration      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"required"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url" validate:"required"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey    string        `mapstructure:"secret_key" validate:"required"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl" validate:"gt=0"`
	CookieMaxAge time.Duration `mapstructure:"auth_cookie_max_age" validate:"gt=0"`
}

type Dashboard struct {
	Timezone          string         `mapstructure:"dashboard_timezone"`
	Location          *time.Location `mapstructure:"-"`
	LowStockThreshold int            `mapstructure:"dashboard_low_stock_threshold" validate:"gte=0"`
	RecentOrdersLimit int            `mapstructure:"dashboard_recent_orders_limit" validate:"gt=0"`
	TopProductsLimit  int            `mapstructure:"dashboard_top_products_limit" validate:"gt=0"`
}

type ImageHost struct {
	URL          string `mapstructure:"image_host_url" validate:"required,url"`
	CloudName    string `mapstructure:"image_host_cloud_name"`
	APIKey       string `mapstructure:"image_host_api_key"`
	APISecret    string `mapstructure:"image_host_api_secret"`
	UploadPreset string `mapstructure:"image_host_upload_preset"`
}

type StockAlertSync struct {
	CronSchedule string `mapstructure:"stock_alert_sync_cron"`
	Enabled      bool   `mapstructure:"stock_alert_sync_enabled"`
}

type Migration struct {
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendor_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "120h")    // 5 dias
	viper.SetDefault("AUTH_COOKIE_MAX_AGE", "2h") // cookie vendor_token

	viper.SetDefault("DASHBOARD_TIMEZONE", "UTC")
	viper.SetDefault("DASHBOARD_LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("DASHBOARD_RECENT_ORDERS_LIMIT", 5)
	viper.SetDefault("DASHBOARD_TOP_PRODUCTS_LIMIT", 10)

	viper.SetDefault("IMAGE_HOST_URL", "https://api.cloudinary.com/v1_1")
	viper.SetDefault("IMAGE_HOST_CLOUD_NAME", "")
	viper.SetDefault("IMAGE_HOST_API_KEY", "")
	viper.SetDefault("IMAGE_HOST_API_SECRET", "")
	viper.SetDefault("IMAGE_HOST_UPLOAD_PRESET", "vendor_uploads")

	viper.SetDefault("STOCK_ALERT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("STOCK_ALERT_SYNC_ENABLED", false)

	viper.SetDefault("AUTO_MIGRATE", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize monta os campos derivados e valida o resultado
func (c *Config) finalize() error {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	if c.Dashboard.Timezone == "" {
		c.Dashboard.Timezone = "UTC"
	}
	location, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.Dashboard.Timezone, err)
	}
	c.Dashboard.Location = location

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
