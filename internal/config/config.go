package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Import       Import       `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	RunRetention RunRetention `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Import struct {
	MaxFileBytes       int64  `mapstructure:"import_max_file_bytes"`
	ErrorSampleLimit   int    `mapstructure:"import_error_sample_limit"`
	ProgressEvery      int    `mapstructure:"import_progress_every"`
	Workers            int    `mapstructure:"import_workers"`
	DefaultSalesperson string `mapstructure:"import_default_salesperson"`
}

type Cache struct {
	Driver     string `mapstructure:"cache_driver"`
	RedisURL   string `mapstructure:"redis_url"`
	TTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RunRetention struct {
	CronSchedule string `mapstructure:"run_retention_cron"`
	Days         int    `mapstructure:"run_retention_days"`
	Enabled      bool   `mapstructure:"run_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/portal_comercial?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("IMPORT_MAX_FILE_BYTES", 50*1024*1024) // 50 MB, limite do upload do BI
	viper.SetDefault("IMPORT_ERROR_SAMPLE_LIMIT", 50)
	viper.SetDefault("IMPORT_PROGRESS_EVERY", 100)
	viper.SetDefault("IMPORT_WORKERS", 1)
	viper.SetDefault("IMPORT_DEFAULT_SALESPERSON", "001")

	viper.SetDefault("CACHE_DRIVER", "memory")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_TTL_SECONDS", 300)

	viper.SetDefault("RUN_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RUN_RETENTION_DAYS", 90)
	viper.SetDefault("RUN_RETENTION_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.validate(); err != nil {
		return nil, err
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

func (c *Config) validate() error {
	if c.Import.MaxFileBytes <= 0 {
		return fmt.Errorf("IMPORT_MAX_FILE_BYTES deve ser positivo: %d", c.Import.MaxFileBytes)
	}
	if c.Import.Workers < 1 {
		c.Import.Workers = 1
	}
	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("CACHE_DRIVER inválido: %q", c.Cache.Driver)
	}
	return nil
}

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

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
