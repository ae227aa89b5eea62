package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	TimezoneRefresh TimezoneRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL            string `mapstructure:"meta_base_url"`
	URL                string `mapstructure:"meta_url"`
	Version            string `mapstructure:"meta_version"`
	AccessToken        string `mapstructure:"meta_access_token"`
	AdAccountID        string `mapstructure:"ad_account_id"`
	CallTimeoutSeconds int    `mapstructure:"meta_call_timeout_seconds"`
}

// Report concentra as opções que unificam as variantes do relatório de
// campanhas: janela padrão, filtro de status, formato da resposta e os
// limites do fan-out de requisições.
type Report struct {
	LookbackDays           int    `mapstructure:"report_lookback_days"`
	CampaignStatusFilter   string `mapstructure:"report_campaign_status_filter"`
	ResponseShape          string `mapstructure:"report_response_shape"`
	IncludeZeroSpend       bool   `mapstructure:"report_include_zero_spend"`
	CampaignLimit          int    `mapstructure:"report_campaign_limit"`
	AdsPerCampaign         int    `mapstructure:"report_ads_per_campaign"`
	CreativesPerAd         int    `mapstructure:"report_creatives_per_ad"`
	MaxConcurrentCampaigns int    `mapstructure:"report_max_concurrent_campaigns"`
	RequestDelayMs         int    `mapstructure:"report_request_delay_ms"`
	RequestTimeoutSeconds  int    `mapstructure:"report_request_timeout_seconds"`
}

type TimezoneRefresh struct {
	CronSchedule string `mapstructure:"timezone_refresh_cron"`
	Enabled      bool   `mapstructure:"timezone_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("AD_ACCOUNT_ID", "")
	viper.SetDefault("META_CALL_TIMEOUT_SECONDS", 15)

	// Defaults do relatório de campanhas
	viper.SetDefault("REPORT_LOOKBACK_DAYS", 30)             // Janela padrão quando o cliente não envia datas
	viper.SetDefault("REPORT_CAMPAIGN_STATUS_FILTER", "all") // Incluir campanhas encerradas e arquivadas
	viper.SetDefault("REPORT_RESPONSE_SHAPE", "nested")      // Métricas apenas dentro de "insights"
	viper.SetDefault("REPORT_INCLUDE_ZERO_SPEND", true)      // Manter campanhas sem gasto na janela
	viper.SetDefault("REPORT_CAMPAIGN_LIMIT", 200)           // Limite da listagem de campanhas
	viper.SetDefault("REPORT_ADS_PER_CAMPAIGN", 5)           // Amostra de anúncios por campanha
	viper.SetDefault("REPORT_CREATIVES_PER_AD", 2)           // Amostra de criativos por anúncio
	viper.SetDefault("REPORT_MAX_CONCURRENT_CAMPAIGNS", 5)   // Tamanho do semáforo do fan-out
	viper.SetDefault("REPORT_REQUEST_DELAY_MS", 50)          // Pausa entre disparos (melhor esforço)
	viper.SetDefault("REPORT_REQUEST_TIMEOUT_SECONDS", 60)   // Timeout total de uma requisição de relatório

	viper.SetDefault("TIMEZONE_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("TIMEZONE_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config, nil
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
