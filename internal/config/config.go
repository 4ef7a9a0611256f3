package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Ambientes em que os logs saem no formato compacto
var developmentEnvs = []string{"", "development", "dev", "local"}

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Cors      Cors     `mapstructure:",squash"`
	Summary   Summary  `mapstructure:",squash"`
	AuditLog  AuditLog `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// IsDevelopment indica se o serviço roda fora de produção
func (a App) IsDevelopment() bool {
	return slices.Contains(developmentEnvs, strings.ToLower(strings.TrimSpace(a.Env)))
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Summary struct {
	MaxConcurrentQueries int    `mapstructure:"summary_max_concurrent_queries"`
	DefaultCurrency      string `mapstructure:"summary_default_currency"`
}

type AuditLog struct {
	Enabled          bool   `mapstructure:"audit_log_enabled"`
	RetentionCron    string `mapstructure:"audit_log_retention_cron"`
	RetentionDays    int    `mapstructure:"audit_log_retention_days"`
	RetentionEnabled bool   `mapstructure:"audit_log_retention_enabled"`
}

var defaults = map[string]any{
	"APP_ENV":   "development",
	"LOG_LEVEL": "debug",

	"HOST": "localhost",
	"PORT": 8000,

	"DATABASE_DRIVER":         "postgres",
	"DATABASE_URL":            "localhost:5432/erpnext?sslmode=disable",
	"DATABASE_USER":           "postgres",
	"DATABASE_PASSWORD":       "",
	"DATABASE_MAX_OPEN_CONNS": 0, // 0 = sem limite

	"SECRET_KEY": "",

	"CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://localhost:8000",

	"SUMMARY_MAX_CONCURRENT_QUERIES": 6,     // consultas simultâneas por relatório
	"SUMMARY_DEFAULT_CURRENCY":       "USD", // moeda quando a empresa não define uma

	"AUDIT_LOG_ENABLED":           true,
	"AUDIT_LOG_RETENTION_CRON":    "0 2 * * 0", // domingo às 2h
	"AUDIT_LOG_RETENTION_DAYS":    365,
	"AUDIT_LOG_RETENTION_ENABLED": false,
}

func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// NewConfig lê o .env (quando existir) e as variáveis de ambiente
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("Viper não leu o .env, usando apenas variáveis de ambiente")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.SecretKey == "" {
		logrus.Warn("SECRET_KEY não configurada, nenhum token será aceito")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile procura o .env no diretório atual e nos dois acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível obter o diretório atual")
		return
	}

	for _, location := range []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "..", ".env"),
		filepath.Join(cwd, "..", "..", ".env"),
	} {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Info("Arquivo .env carregado")
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, seguindo com o ambiente do processo")
}
