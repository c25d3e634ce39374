package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"trajmatch/internal/domain/constants"

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
	defaultConfigName         = "config"
	defaultMaxRequestBodySize = "1MB"
	defaultMatcherBaseURL     = "http://localhost:8080"
	defaultMatcherPath        = "/map_match_dynamic"
	defaultQRCodeSize         = 256
	defaultWorkerPort         = 8081
	defaultMaxTrackedRuns     = 100
	defaultRedisKeyPrefix     = "trajmatch:"
	defaultRedisTTL           = 24 * time.Hour
	defaultSQLitePath         = "routes.db"
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

	// Matcher is the dynamic map matching server the simulation talks to
	Matcher *MatcherConfig `json:"matcher" yaml:"matcher"`

	// Persistence selects the named route store
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for the Firestore route store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Blob configuration for the object storage route store
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// PubSub configuration for simulation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for route share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// SQLite file for the sqlite route store
	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// Worker is the event subscriber service
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// RunStore selects where the worker keeps run progress
	RunStore *RunStoreConfig `json:"runStore" yaml:"runStore"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MatcherConfig defines how the map matching server is reached
type MatcherConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Path    string `json:"path" yaml:"path"`

	// Per request timeout. Zero keeps the transport default, so a hung server blocks until stop.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Delay between an applied response and the next request
	RequestInterval time.Duration `json:"requestInterval" yaml:"requestInterval"`
}

// PersistenceConfig selects the route store: memory, firestore, postgres or blob
type PersistenceConfig struct {
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase configuration for the Firestore route store
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Collection      string `json:"collection" yaml:"collection"`
}

// BlobConfig points the blob route store at a bucket, e.g. file:///var/routes or gs://bucket
type BlobConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// SQLiteConfig points the sqlite route store at a database file
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

// WorkerConfig defines the event subscriber service
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Oldest runs are forgotten beyond this many
	MaxTrackedRuns int `json:"maxTrackedRuns" yaml:"maxTrackedRuns"`
}

// RunStoreConfig selects the run progress store: memory or redis
type RunStoreConfig struct {
	Provider string `json:"provider" yaml:"provider"`
}

// RedisConfig defines the Redis connection for the redis run store
type RedisConfig struct {
	Addr      string        `json:"addr" yaml:"addr"`
	Password  string        `json:"password" yaml:"password"`
	DB        int           `json:"db" yaml:"db"`
	KeyPrefix string        `json:"keyPrefix" yaml:"keyPrefix"`
	TTL       time.Duration `json:"ttl" yaml:"ttl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop" (default), "local" for HTTP push or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
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

// findConfigFile looks for name in the working directory, then in each
// configPath relative to it.
func findConfigFile(name string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config](configName(), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// configName lets TRAJMATCH_CONFIG pick another file, e.g. "config.local".
func configName() string {
	if name := strings.TrimSpace(os.Getenv("TRAJMATCH_CONFIG")); name != "" {
		return strings.TrimSuffix(name, ".yaml")
	}

	return defaultConfigName
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Matcher == nil {
		c.Matcher = &MatcherConfig{}
	}
	if c.Matcher.BaseURL == "" {
		c.Matcher.BaseURL = defaultMatcherBaseURL
	}
	if c.Matcher.Path == "" {
		c.Matcher.Path = defaultMatcherPath
	}
	if c.Persistence == nil || c.Persistence.Provider == "" {
		c.Persistence = &PersistenceConfig{Provider: constants.PersistenceProviderMemory}
	}
	if c.Firebase != nil && c.Firebase.Collection == "" {
		c.Firebase.Collection = constants.DefaultRoutesCollection
	}
	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "M"
	}

	if c.SQLite == nil {
		c.SQLite = &SQLiteConfig{}
	}
	if c.SQLite.Path == "" {
		c.SQLite.Path = defaultSQLitePath
	}
	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.Worker.MaxTrackedRuns <= 0 {
		c.Worker.MaxTrackedRuns = defaultMaxTrackedRuns
	}
	if c.RunStore == nil || c.RunStore.Provider == "" {
		c.RunStore = &RunStoreConfig{Provider: constants.RunStoreProviderMemory}
	}
	if c.Redis != nil {
		if c.Redis.KeyPrefix == "" {
			c.Redis.KeyPrefix = defaultRedisKeyPrefix
		}
		if c.Redis.TTL <= 0 {
			c.Redis.TTL = defaultRedisTTL
		}
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if c.Postgres != nil {
		c.Postgres.Replicas = buildReplicasFromEnv()
	}
}

func (c *Config) validate() error {
	if c.Matcher.Timeout < 0 || c.Matcher.RequestInterval < 0 {
		return errors.New("matcher timeout and requestInterval must not be negative")
	}

	switch c.Persistence.Provider {
	case constants.PersistenceProviderMemory:
	case constants.PersistenceProviderFirestore:
		if c.Firebase == nil || c.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required for the firestore provider")
		}
	case constants.PersistenceProviderPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres provider")
		}
	case constants.PersistenceProviderBlob:
		if c.Blob == nil || c.Blob.BucketURL == "" {
			return errors.New("blob.bucketUrl is required for the blob provider")
		}
	case constants.PersistenceProviderSQLite:
	default:
		return errors.Errorf("unknown persistence provider: %s", c.Persistence.Provider)
	}

	switch c.RunStore.Provider {
	case constants.RunStoreProviderMemory:
	case constants.RunStoreProviderRedis:
		if c.Redis == nil || c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis run store")
		}
	default:
		return errors.Errorf("unknown run store provider: %s", c.RunStore.Provider)
	}

	return nil
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
