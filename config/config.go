package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMaxImages         = 10
	defaultPublicPageSize    = 20
	defaultAdminPageSize     = 50
	defaultRelatedLimit      = 6
	defaultSiteName          = "ThePhotographers.uk"
	defaultCountryCode       = "GB"
	defaultReconcileInterval = 24 * time.Hour
	defaultSitemapInterval   = 7 * 24 * time.Hour
	defaultBatchSize         = 200
	defaultWorkerPort        = 8081
	defaultSnapshotBucket    = "mem://"
	defaultMetricsNamespace  = "directory"

	defaultRateLimitPerSecond = 1
	defaultRateLimitBurst     = 10
	defaultRateLimitExpiresIn = 3 * time.Minute
)

// Notification providers
const (
	NotificationProviderNone     = "none"
	NotificationProviderFirebase = "firebase"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the Pub/Sub push endpoint served by cmd/worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Directory holds the default directory settings. Values stored through the
	// admin settings endpoint take precedence at runtime.
	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	Entitlement *EntitlementConfig `json:"entitlement" yaml:"entitlement"`

	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Notification selects the push notification provider
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Snapshot configures where sitemap entries and page snapshots are written
	Snapshot *SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// SlowQuery is the duration above which GORM queries are logged as slow
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// Audience expected in Pub/Sub push OIDC tokens outside of development
	Audience string `json:"audience" yaml:"audience"`
}

// DirectoryConfig defines the directory defaults and presentation settings
type DirectoryConfig struct {
	Enabled                       bool     `json:"enabled" yaml:"enabled"`
	AutoApprove                   bool     `json:"autoApprove" yaml:"autoApprove"`
	MaxImages                     int      `json:"maxImages" yaml:"maxImages"`
	Locations                     []string `json:"locations" yaml:"locations"`
	Categories                    []string `json:"categories" yaml:"categories"`
	PublicPageSize                int      `json:"publicPageSize" yaml:"publicPageSize"`
	AdminPageSize                 int      `json:"adminPageSize" yaml:"adminPageSize"`
	RelatedLimit                  int      `json:"relatedLimit" yaml:"relatedLimit"`
	FeaturedLimit                 int      `json:"featuredLimit" yaml:"featuredLimit"`
	ShowInSitemap                 bool     `json:"showInSitemap" yaml:"showInSitemap"`
	SiteName                      string   `json:"siteName" yaml:"siteName"`
	BaseURL                       string   `json:"baseUrl" yaml:"baseUrl"`
	CountryCode                   string   `json:"countryCode" yaml:"countryCode"`
	SendExpiryNotifications       bool     `json:"sendExpiryNotifications" yaml:"sendExpiryNotifications"`
	SendReactivationNotifications bool     `json:"sendReactivationNotifications" yaml:"sendReactivationNotifications"`
	AutoMigrate                   bool     `json:"autoMigrate" yaml:"autoMigrate"`
}

// EntitlementConfig defines which subscription plan qualifies for a listing.
// An empty PlanID disables entitlement gating.
type EntitlementConfig struct {
	PlanID string `json:"planId" yaml:"planId"`
}

// SchedulerConfig defines the periodic directory jobs
type SchedulerConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`
	SitemapInterval   time.Duration `json:"sitemapInterval" yaml:"sitemapInterval"`
	BatchSize         int           `json:"batchSize" yaml:"batchSize"`
	RunOnStart        bool          `json:"runOnStart" yaml:"runOnStart"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// NotificationConfig selects the push provider: "firebase" or "none"
type NotificationConfig struct {
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SnapshotConfig defines the blob bucket holding generated snapshots,
// e.g. "mem://", "file:///var/lib/directory" or "gs://bucket".
type SnapshotConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace"`
}

// RateLimitConfig throttles listing mutations per user
type RateLimitConfig struct {
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections so that consumers never see nil.
func applyDefaults(cfg *Config) {
	if cfg.Directory == nil {
		cfg.Directory = &DirectoryConfig{Enabled: true, AutoApprove: true}
	}
	if cfg.Directory.MaxImages <= 0 {
		cfg.Directory.MaxImages = defaultMaxImages
	}
	if cfg.Directory.PublicPageSize <= 0 {
		cfg.Directory.PublicPageSize = defaultPublicPageSize
	}
	if cfg.Directory.AdminPageSize <= 0 {
		cfg.Directory.AdminPageSize = defaultAdminPageSize
	}
	if cfg.Directory.RelatedLimit <= 0 {
		cfg.Directory.RelatedLimit = defaultRelatedLimit
	}
	if cfg.Directory.SiteName == "" {
		cfg.Directory.SiteName = defaultSiteName
	}
	if cfg.Directory.CountryCode == "" {
		cfg.Directory.CountryCode = defaultCountryCode
	}
	cfg.Directory.BaseURL = strings.TrimRight(cfg.Directory.BaseURL, "/")

	if cfg.Entitlement == nil {
		cfg.Entitlement = &EntitlementConfig{}
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	if cfg.Scheduler.ReconcileInterval <= 0 {
		cfg.Scheduler.ReconcileInterval = defaultReconcileInterval
	}
	if cfg.Scheduler.SitemapInterval <= 0 {
		cfg.Scheduler.SitemapInterval = defaultSitemapInterval
	}
	if cfg.Scheduler.BatchSize <= 0 {
		cfg.Scheduler.BatchSize = defaultBatchSize
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{Port: defaultWorkerPort}
	}
	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{Provider: NotificationProviderNone}
	}
	if cfg.Snapshot == nil || cfg.Snapshot.BucketURL == "" {
		cfg.Snapshot = &SnapshotConfig{BucketURL: defaultSnapshotBucket}
	}
	if cfg.Metrics == nil || cfg.Metrics.Namespace == "" {
		cfg.Metrics = &MetricsConfig{Namespace: defaultMetricsNamespace}
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultRateLimitPerSecond
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		cfg.RateLimit.ExpiresIn = defaultRateLimitExpiresIn
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
