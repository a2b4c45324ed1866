package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Catalog        Catalog        `mapstructure:",squash"`
	CatalogSync    CatalogSync    `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
	Chart          Chart          `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Catalog struct {
	URL     string        `mapstructure:"catalog_url"`
	Timeout time.Duration `mapstructure:"catalog_timeout"`
}

type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

type SessionCleanup struct {
	CronSchedule string        `mapstructure:"session_cleanup_cron"`
	IdleTimeout  time.Duration `mapstructure:"session_idle_timeout"`
	Enabled      bool          `mapstructure:"session_cleanup_enabled"`
}

type Chart struct {
	Width      int     `mapstructure:"chart_width"`
	Height     int     `mapstructure:"chart_height"`
	MaxTicks   int     `mapstructure:"chart_max_ticks"`
	WheelSpeed float64 `mapstructure:"zoom_wheel_speed"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("CATALOG_URL", "http://localhost:3000/data.json")
	viper.SetDefault("CATALOG_TIMEOUT", "30s")

	// Defaults para atualização do catálogo
	viper.SetDefault("CATALOG_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CATALOG_SYNC_ENABLED", true)

	// Defaults para limpeza de sessões ociosas
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("CHART_WIDTH", 1024)
	viper.SetDefault("CHART_HEIGHT", 400)
	viper.SetDefault("CHART_MAX_TICKS", 12)
	viper.SetDefault("ZOOM_WHEEL_SPEED", 0.01)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
