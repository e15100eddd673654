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
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Tracker            Tracker            `mapstructure:",squash"`
	Clustering         Clustering         `mapstructure:",squash"`
	StatusAPI          StatusAPI          `mapstructure:",squash"`
	StatusSync         StatusSync         `mapstructure:",squash"`
	RecommendationSync RecommendationSync `mapstructure:",squash"`
	Geo                Geo                `mapstructure:",squash"`
	Pipeline           Pipeline           `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Tracker é a API de relatórios que fornece as métricas por adset
type Tracker struct {
	URL         string        `mapstructure:"tracker_url"`
	APIKey      string        `mapstructure:"tracker_api_key"`
	Timezone    string        `mapstructure:"tracker_timezone"`
	Timeout     time.Duration `mapstructure:"tracker_timeout"`
	MaxAttempts int           `mapstructure:"tracker_max_attempts"`
	RowLimit    int           `mapstructure:"tracker_row_limit"`
}

type Clustering struct {
	Mode         string        `mapstructure:"clustering_mode"`
	ArtifactPath string        `mapstructure:"clustering_artifact_path"`
	RemoteURL    string        `mapstructure:"clustering_remote_url"`
	ModelVersion string        `mapstructure:"clustering_model_version"`
	Timeout      time.Duration `mapstructure:"clustering_timeout"`
	MaxAttempts  int           `mapstructure:"clustering_max_attempts"`
}

// StatusAPI é a API externa que informa se um adset está ativo ou pausado
type StatusAPI struct {
	URL         string        `mapstructure:"status_api_url"`
	Timeout     time.Duration `mapstructure:"status_api_timeout"`
	MaxAttempts int           `mapstructure:"status_api_max_attempts"`
	BaseDelay   time.Duration `mapstructure:"status_api_base_delay"`
}

type StatusSync struct {
	CronSchedule string        `mapstructure:"status_sync_cron"`
	Throttle     time.Duration `mapstructure:"status_sync_throttle"`
	Enabled      bool          `mapstructure:"status_sync_enabled"`
}

type RecommendationSync struct {
	CronSchedule string `mapstructure:"recommendation_sync_cron"`
	Enabled      bool   `mapstructure:"recommendation_sync_enabled"`
}

type Geo struct {
	CountryFile string `mapstructure:"geo_country_file"`
}

type Pipeline struct {
	Workers int `mapstructure:"pipeline_workers"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_advisor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("TRACKER_URL", "https://tracker.example.com/admin_api/v1")
	viper.SetDefault("TRACKER_API_KEY", "")
	viper.SetDefault("TRACKER_TIMEZONE", "Europe/Amsterdam")
	viper.SetDefault("TRACKER_TIMEOUT", "30s")
	viper.SetDefault("TRACKER_MAX_ATTEMPTS", 3)
	viper.SetDefault("TRACKER_ROW_LIMIT", 100000)

	// artifact: modelo local em JSON, remote: serviço de inferência
	viper.SetDefault("CLUSTERING_MODE", "artifact")
	viper.SetDefault("CLUSTERING_ARTIFACT_PATH", "model/dbscan_model_bundle.json")
	viper.SetDefault("CLUSTERING_REMOTE_URL", "")
	viper.SetDefault("CLUSTERING_MODEL_VERSION", "latest")
	viper.SetDefault("CLUSTERING_TIMEOUT", "20s")
	viper.SetDefault("CLUSTERING_MAX_ATTEMPTS", 3)

	viper.SetDefault("STATUS_API_URL", "http://localhost:8001/api/adset/status")
	viper.SetDefault("STATUS_API_TIMEOUT", "10s")
	viper.SetDefault("STATUS_API_MAX_ATTEMPTS", 5)
	viper.SetDefault("STATUS_API_BASE_DELAY", "2s")

	viper.SetDefault("STATUS_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("STATUS_SYNC_THROTTLE", "500ms")    // Intervalo mínimo entre chamadas
	viper.SetDefault("STATUS_SYNC_ENABLED", false)

	viper.SetDefault("RECOMMENDATION_SYNC_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("RECOMMENDATION_SYNC_ENABLED", false)

	viper.SetDefault("GEO_COUNTRY_FILE", "data/country.json")

	viper.SetDefault("PIPELINE_WORKERS", 0) // 0 = GOMAXPROCS

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env a partir do diretório atual e dos diretórios acima
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
