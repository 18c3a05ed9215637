package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Nome do secret file do Render com a credencial da conta de serviço do Google
const GoogleCredentialsSecretName = "google_service_account.json"

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Bedrock    Bedrock    `mapstructure:",squash"`
	Email      Email      `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	Clients    Clients    `mapstructure:",squash"`
	Render     Render     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	MigrateOnBoot bool   `mapstructure:"database_migrate_on_boot"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

// Sheets configura o acesso às planilhas de dados, clientes e planos
type Sheets struct {
	BaseURL            string        `mapstructure:"sheets_base_url"`
	SpreadsheetID      string        `mapstructure:"sheets_spreadsheet_id"`
	ConfigSheet        string        `mapstructure:"sheets_config_sheet"`
	FunnelSheetSuffix  string        `mapstructure:"sheets_funnel_sheet_suffix"`
	CredentialsJSON    string        `mapstructure:"google_credentials_json"`
	CredentialsFile    string        `mapstructure:"google_credentials_file"`
	RequestTimeout     time.Duration `mapstructure:"sheets_request_timeout"`
	DateLayouts        []string      `mapstructure:"sheets_date_layouts"`
	PlanTaskHeaderCell string        `mapstructure:"sheets_plan_task_header"`
}

// Bedrock configura o modelo usado para gerar os comentários
type Bedrock struct {
	Region          string  `mapstructure:"aws_region"`
	AccessKeyID     string  `mapstructure:"aws_access_key_id"`
	SecretAccessKey string  `mapstructure:"aws_secret_access_key"`
	ModelID         string  `mapstructure:"bedrock_model_id"`
	MaxTokens       int     `mapstructure:"bedrock_max_tokens"`
	Temperature     float64 `mapstructure:"bedrock_temperature"`
	Enabled         bool    `mapstructure:"bedrock_enabled"`
}

// Email configura o envio do relatório
type Email struct {
	Provider     string   `mapstructure:"email_provider"`
	From         string   `mapstructure:"email_from"`
	FromName     string   `mapstructure:"email_from_name"`
	Recipients   []string `mapstructure:"email_recipients"`
	SMTPHost     string   `mapstructure:"smtp_host"`
	SMTPPort     int      `mapstructure:"smtp_port"`
	SMTPUser     string   `mapstructure:"smtp_user"`
	SMTPPassword string   `mapstructure:"smtp_password"`
}

type ReportSync struct {
	CronSchedule  string `mapstructure:"report_sync_cron"`
	Enabled       bool   `mapstructure:"report_sync_enabled"`
	RetentionDays int    `mapstructure:"report_sync_retention_days"`
}

// Report configura o motor de comparação
type Report struct {
	CutoffDay        int           `mapstructure:"report_cutoff_day"`
	LatencyDays      int           `mapstructure:"report_latency_days"`
	CurrencySymbol   string        `mapstructure:"report_currency_symbol"`
	DefaultDimension string        `mapstructure:"report_default_dimension"`
	Columns          ReportColumns `mapstructure:",squash"`
}

// ReportColumns mapeia os cabeçalhos da planilha para as colunas canônicas
type ReportColumns struct {
	Date         string `mapstructure:"report_column_date"`
	Impressions  string `mapstructure:"report_column_impressions"`
	Clicks       string `mapstructure:"report_column_clicks"`
	Cost         string `mapstructure:"report_column_cost"`
	Conversions  string `mapstructure:"report_column_conversions"`
	Transactions string `mapstructure:"report_column_transactions"`
	Revenue      string `mapstructure:"report_column_revenue"`
	Sessions     string `mapstructure:"report_column_sessions"`
}

// Clients define de onde vem a lista de clientes: planilha (sheets) ou arquivo yaml (file)
type Clients struct {
	Source string `mapstructure:"clients_source"`
	File   string `mapstructure:"clients_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/performance_report?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_BOOT", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4/spreadsheets")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CONFIG_SHEET", "Config")
	viper.SetDefault("SHEETS_FUNNEL_SHEET_SUFFIX", "Funnel Import")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SHEETS_DATE_LAYOUTS", "2006-01-02,02/01/2006,2006-01-02 15:04:05")
	viper.SetDefault("SHEETS_PLAN_TASK_HEADER", "Task")

	viper.SetDefault("AWS_REGION", "eu-west-2")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("BEDROCK_MODEL_ID", "anthropic.claude-3-5-sonnet-20240620-v1:0")
	viper.SetDefault("BEDROCK_MAX_TOKENS", 2048)
	viper.SetDefault("BEDROCK_TEMPERATURE", 0.2)
	viper.SetDefault("BEDROCK_ENABLED", true)

	viper.SetDefault("EMAIL_PROVIDER", "smtp") // smtp ou ses
	viper.SetDefault("EMAIL_FROM", "reports@example.com")
	viper.SetDefault("EMAIL_FROM_NAME", "Performance Reports")
	viper.SetDefault("EMAIL_RECIPIENTS", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")

	viper.SetDefault("REPORT_SYNC_CRON", "0 7 * * 1")  // Toda segunda-feira às 7h
	viper.SetDefault("REPORT_SYNC_ENABLED", false)     // Habilitar envio automático
	viper.SetDefault("REPORT_SYNC_RETENTION_DAYS", 90) // Histórico de execuções mantido por 90 dias

	viper.SetDefault("REPORT_CUTOFF_DAY", 5)   // Até o dia 5 reporta o mês anterior fechado
	viper.SetDefault("REPORT_LATENCY_DAYS", 2) // Dados disponíveis até hoje - 2 dias
	viper.SetDefault("REPORT_CURRENCY_SYMBOL", "£")
	viper.SetDefault("REPORT_DEFAULT_DIMENSION", "")

	viper.SetDefault("REPORT_COLUMN_DATE", "Date")
	viper.SetDefault("REPORT_COLUMN_IMPRESSIONS", "Impressions")
	viper.SetDefault("REPORT_COLUMN_CLICKS", "Clicks")
	viper.SetDefault("REPORT_COLUMN_COST", "Cost")
	viper.SetDefault("REPORT_COLUMN_CONVERSIONS", "Conversions")
	viper.SetDefault("REPORT_COLUMN_TRANSACTIONS", "Transactions")
	viper.SetDefault("REPORT_COLUMN_REVENUE", "Transaction Revenue")
	viper.SetDefault("REPORT_COLUMN_SESSIONS", "Sessions")

	viper.SetDefault("CLIENTS_SOURCE", "sheets") // sheets ou file
	viper.SetDefault("CLIENTS_FILE", "clients.yaml")

	viper.SetDefault("APP_TIMEZONE", "Europe/London")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
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

	// A credencial do Google pode vir dos secret files do Render
	if config.Sheets.CredentialsJSON == "" && config.Render.ServiceID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		secretsByName, err := NewRenderClient(config).ListSecrets(ctx, config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		config.Sheets.CredentialsJSON = secretsByName[GoogleCredentialsSecretName]
	}

	config.Email.Recipients = compact(config.Email.Recipients)
	config.Sheets.DateLayouts = compact(config.Sheets.DateLayouts)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Location devolve o fuso configurado para calcular o "hoje" do relatório
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.WithField("timezone", c.App.Timezone).Warn("Fuso horário inválido, usando UTC")
		return time.UTC
	}
	return loc
}

// GoogleCredentials devolve o JSON da conta de serviço, do ambiente ou do arquivo configurado
func (c *Config) GoogleCredentials() ([]byte, error) {
	if c.Sheets.CredentialsJSON != "" {
		return []byte(c.Sheets.CredentialsJSON), nil
	}
	if c.Sheets.CredentialsFile == "" {
		return nil, fmt.Errorf("config: credencial do Google não configurada")
	}
	return os.ReadFile(c.Sheets.CredentialsFile)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
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
