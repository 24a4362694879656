package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	Security   SecurityConfig
	RateLimit  RateLimitConfig
	Storage    StorageConfig
	ApiKey     ApiKeyConfig
	AIPricer   AIPricerConfig
	Pricing    PricingConfig
	Validation ValidationConfig
	Jobs       JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	ReferrerPolicy        string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	WhitelistIPs      []string
	WhitelistPaths    []string
}

// StorageConfig holds artwork file storage configuration
type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	MaxUploadSizeMB       int64
}

type ApiKeyConfig struct {
	Value string
}

// AIPricerConfig holds configuration for the external AI pricing service.
// The service is optional; when disabled or unreachable, estimation falls
// back to pure rule-based pricing.
type AIPricerConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	// Timeout bounds the proposal call in seconds (recommended 10)
	Timeout int
}

// PricingConfig is the policy table consumed by the rule-based pricer and
// the reconciler. All rates are externally overridable without code change.
type PricingConfig struct {
	DigitalSetupCost float64
	OffsetSetupCost  float64
	DigitalUnitRate  float64
	OffsetUnitRate   float64

	// BasePaperRate is the per-sqm paper cost at the GSM baseline
	BasePaperRate float64
	GSMBaseline   int

	// Photo premium applies when the sheet is at least A3 and the stock is heavy
	PhotoPremiumRate       float64
	PhotoPremiumMinAreaSqm float64
	PhotoPremiumMinGSM     int

	DuplexMultiplier float64
	FinishingRates   map[string]float64

	RushPremium1Day float64
	RushPremium2Day float64

	// Margin tiering: small orders carry a higher margin, bulk orders a
	// more competitive one
	MarginRate           float64
	MarginRateSmallOrder float64
	MarginRateBulkOrder  float64
	SmallOrderQty        int
	BulkOrderQty         int

	// Method efficiency bands
	DigitalEfficiencyMax int
	OffsetEfficiencyMin  int

	// Normalization defaults and bounds
	QuantityDefault       int
	QuantityMax           int
	GSMDefault            int
	GSMMin                int
	GSMMax                int
	DefaultWidthMM        float64
	DefaultHeightMM       float64
	DefaultTurnaroundDays float64

	// DeviationOverrideThreshold is the relative deviation above which an
	// external proposal is discarded in favor of the rule-based price
	DeviationOverrideThreshold float64
	// BreakdownEpsilon is the tolerance for the component-sum invariant
	BreakdownEpsilon float64
}

// ValidationConfig holds the thresholds of the specification feasibility
// rules. The anomaly threshold is intentionally looser than the reconciler
// override threshold; the two are distinct policy knobs.
type ValidationConfig struct {
	AnomalyFlagThreshold     float64
	SmallOrderLeniencyFactor float64
	SmallOrderQty            int

	GSMFeasibleMin int
	GSMFeasibleMax int

	MinDimensionMM float64
	MaxWidthMM     float64
	MaxHeightMM    float64

	OffsetMinQty  int
	DigitalMaxQty int

	MinTurnaroundDays float64
	BulkRushQty       int
	BulkRushMinDays   float64
	LowResArtMinQty   int
	LaminateMinGSM    int
	FinishingLaminate string
}

// JobsConfig holds background job configuration
type JobsConfig struct {
	EstimateExpiryEnabled bool
	EstimateExpiryCron    string
	EstimateTTLDays       int
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// TimeoutDuration returns the AI pricer call timeout as duration
func (a *AIPricerConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// EstimateTTL returns the estimate validity window as duration
func (j *JobsConfig) EstimateTTL() time.Duration {
	return time.Duration(j.EstimateTTLDays) * 24 * time.Hour
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Load secrets from environment if not in config
	if cfg.ApiKey.Value == "" {
		cfg.ApiKey.Value = v.GetString("ADMIN_API_KEY")
	}
	if cfg.AIPricer.APIKey == "" {
		cfg.AIPricer.APIKey = v.GetString("AIPRICER_API_KEY")
	}

	return &cfg, nil
}

// DefaultConfig returns the full configuration with default values only.
// Tests use this to exercise components without loading files.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return &cfg
}

// DefaultPricingConfig returns the pricing policy table with its default rates
func DefaultPricingConfig() *PricingConfig {
	return &DefaultConfig().Pricing
}

// DefaultValidationConfig returns the validation thresholds with defaults
func DefaultValidationConfig() *ValidationConfig {
	return &DefaultConfig().Validation
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Presswork Estimate API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "estimate")
	v.SetDefault("database.user", "estimate_user")
	v.SetDefault("database.password", "estimate_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults - secure by default
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 60)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready"})

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "artwork")
	v.SetDefault("storage.maxUploadSizeMB", 50)

	// AI pricer defaults - disabled until a base URL is configured
	v.SetDefault("aipricer.enabled", false)
	v.SetDefault("aipricer.baseURL", "")
	v.SetDefault("aipricer.timeout", 10)

	// Pricing policy table
	v.SetDefault("pricing.digitalSetupCost", 300.0)
	v.SetDefault("pricing.offsetSetupCost", 5000.0)
	v.SetDefault("pricing.digitalUnitRate", 1.5)
	v.SetDefault("pricing.offsetUnitRate", 0.6)
	v.SetDefault("pricing.basePaperRate", 2.0)
	v.SetDefault("pricing.gsmBaseline", 80)
	v.SetDefault("pricing.photoPremiumRate", 1.0)
	v.SetDefault("pricing.photoPremiumMinAreaSqm", 0.12474) // A3: 297x420mm
	v.SetDefault("pricing.photoPremiumMinGSM", 200)
	v.SetDefault("pricing.duplexMultiplier", 1.6)
	v.SetDefault("pricing.finishingRates", map[string]float64{
		"laminate": 0.8,
		"cut":      0.5,
		"fold":     0.3,
	})
	v.SetDefault("pricing.rushPremium1Day", 0.15)
	v.SetDefault("pricing.rushPremium2Day", 0.10)
	v.SetDefault("pricing.marginRate", 0.20)
	v.SetDefault("pricing.marginRateSmallOrder", 0.22)
	v.SetDefault("pricing.marginRateBulkOrder", 0.18)
	v.SetDefault("pricing.smallOrderQty", 100)
	v.SetDefault("pricing.bulkOrderQty", 1000)
	v.SetDefault("pricing.digitalEfficiencyMax", 1000)
	v.SetDefault("pricing.offsetEfficiencyMin", 500)
	v.SetDefault("pricing.quantityDefault", 100)
	v.SetDefault("pricing.quantityMax", 50000)
	v.SetDefault("pricing.gsmDefault", 80)
	v.SetDefault("pricing.gsmMin", 80)
	v.SetDefault("pricing.gsmMax", 400)
	v.SetDefault("pricing.defaultWidthMM", 210.0)
	v.SetDefault("pricing.defaultHeightMM", 297.0)
	v.SetDefault("pricing.defaultTurnaroundDays", 3.0)
	v.SetDefault("pricing.deviationOverrideThreshold", 0.30)
	v.SetDefault("pricing.breakdownEpsilon", 0.01)

	// Validation thresholds
	v.SetDefault("validation.anomalyFlagThreshold", 0.50)
	v.SetDefault("validation.smallOrderLeniencyFactor", 3.0)
	v.SetDefault("validation.smallOrderQty", 100)
	v.SetDefault("validation.gsmFeasibleMin", 60)
	v.SetDefault("validation.gsmFeasibleMax", 400)
	v.SetDefault("validation.minDimensionMM", 50.0)
	v.SetDefault("validation.maxWidthMM", 1000.0)
	v.SetDefault("validation.maxHeightMM", 1500.0)
	v.SetDefault("validation.offsetMinQty", 500)
	v.SetDefault("validation.digitalMaxQty", 5000)
	v.SetDefault("validation.minTurnaroundDays", 1.0)
	v.SetDefault("validation.bulkRushQty", 5000)
	v.SetDefault("validation.bulkRushMinDays", 2.0)
	v.SetDefault("validation.lowResArtMinQty", 250)
	v.SetDefault("validation.laminateMinGSM", 100)
	v.SetDefault("validation.finishingLaminate", "laminate")

	// Background jobs
	v.SetDefault("jobs.estimateExpiryEnabled", true)
	v.SetDefault("jobs.estimateExpiryCron", "@hourly")
	v.SetDefault("jobs.estimateTTLDays", 14)
}
