package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string      `mapstructure:"host"`
	JWTSecret       SecretValue `mapstructure:"jwt_secret"`
	TokenDurationHr int         `mapstructure:"token_duration_hr"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type RunnerConfig struct {
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
	WaitDelay      time.Duration `mapstructure:"wait_delay"`
	MaxOutputBytes int           `mapstructure:"max_output_bytes"`
	ScriptTimeout  time.Duration `mapstructure:"script_timeout"`
}

type EscalationConfig struct {
	// Mode is either "fail_fast" or "queue".
	Mode          string        `mapstructure:"mode"`
	PromptTimeout time.Duration `mapstructure:"prompt_timeout"`
}

type PollConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type PollerConfig struct {
	Processes PollConfig `mapstructure:"processes"`
	Tabs      PollConfig `mapstructure:"tabs"`
	Health    PollConfig `mapstructure:"health"`
}

type ProcessConfig struct {
	HeavyThresholdMB     float64  `mapstructure:"heavy_threshold_mb"`
	SuperUser            string   `mapstructure:"super_user"`
	ReservedUserPrefixes []string `mapstructure:"reserved_user_prefixes"`
	VendorNamespaces     []string `mapstructure:"vendor_namespaces"`
}

type TabConfig struct {
	Browsers         []string           `mapstructure:"browsers"`
	HeavyThresholdMB float64            `mapstructure:"heavy_threshold_mb"`
	BaseMemoryMB     float64            `mapstructure:"base_memory_mb"`
	DomainWeights    map[string]float64 `mapstructure:"domain_weights"`
}

type HealthConfig struct {
	Concurrency       int     `mapstructure:"concurrency"`
	DiskWarnPercent   float64 `mapstructure:"disk_warn_percent"`
	DiskFailPercent   float64 `mapstructure:"disk_fail_percent"`
	MemoryWarnPercent float64 `mapstructure:"memory_warn_percent"`
	MemoryFailPercent float64 `mapstructure:"memory_fail_percent"`
	SwapWarnMB        float64 `mapstructure:"swap_warn_mb"`
	LoadWarnPerCPU    float64 `mapstructure:"load_warn_per_cpu"`
}

type CleanupCategoryConfig struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Paths       []string `mapstructure:"paths"`
	Command     []string `mapstructure:"command"`
	Privileged  bool     `mapstructure:"privileged"`
}

type CleanupConfig struct {
	EstimateTTL time.Duration           `mapstructure:"estimate_ttl"`
	Categories  []CleanupCategoryConfig `mapstructure:"categories"`
}

type PresenterConfig struct {
	QueueSize     int `mapstructure:"queue_size"`
	ActionHistory int `mapstructure:"action_history"`
}

type KeeperConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Runner     RunnerConfig     `mapstructure:"runner"`
	Escalation EscalationConfig `mapstructure:"escalation"`
	Poller     PollerConfig     `mapstructure:"poller"`
	Processes  ProcessConfig    `mapstructure:"processes"`
	Tabs       TabConfig        `mapstructure:"tabs"`
	Health     HealthConfig     `mapstructure:"health"`
	Cleanup    CleanupConfig    `mapstructure:"cleanup"`
	Presenter  PresenterConfig  `mapstructure:"presenter"`
}

// SecretValue hides its content from logs and fmt output.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

// keyDelimiter replaces viper's "." so map keys such as "youtube.com" in tabs.domain_weights stay
// whole.
const keyDelimiter = "::"

// Loader owns a viper instance so the file can be watched after the first read.
type Loader struct {
	v   *viper.Viper
	mu  sync.RWMutex
	cfg KeeperConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server::host", "127.0.0.1:7420")
	v.SetDefault("server::token_duration_hr", 24)
	v.SetDefault("logging::level", "info")
	v.SetDefault("logging::console", true)
	v.SetDefault("runner::default_timeout", "30s")
	v.SetDefault("runner::wait_delay", "2s")
	v.SetDefault("runner::max_output_bytes", 16<<20)
	v.SetDefault("runner::script_timeout", "15s")
	v.SetDefault("escalation::mode", "fail_fast")
	v.SetDefault("escalation::prompt_timeout", "2m")
	v.SetDefault("poller::processes::interval", "5s")
	v.SetDefault("poller::processes::initial_wait", "0s")
	v.SetDefault("poller::processes::timeout", "10s")
	v.SetDefault("poller::tabs::interval", "15s")
	v.SetDefault("poller::tabs::initial_wait", "1s")
	v.SetDefault("poller::tabs::timeout", "20s")
	v.SetDefault("poller::health::interval", "5m")
	v.SetDefault("poller::health::initial_wait", "2s")
	v.SetDefault("poller::health::timeout", "30s")
	v.SetDefault("processes::heavy_threshold_mb", 500)
	v.SetDefault("processes::super_user", "root")
	v.SetDefault("processes::reserved_user_prefixes", []string{"_"})
	v.SetDefault("processes::vendor_namespaces", []string{"com.apple."})
	v.SetDefault("tabs::browsers", []string{"Safari", "Google Chrome"})
	v.SetDefault("tabs::heavy_threshold_mb", 200)
	v.SetDefault("tabs::base_memory_mb", 80)
	v.SetDefault("health::concurrency", 4)
	v.SetDefault("health::disk_warn_percent", 15)
	v.SetDefault("health::disk_fail_percent", 5)
	v.SetDefault("health::memory_warn_percent", 20)
	v.SetDefault("health::memory_fail_percent", 10)
	v.SetDefault("health::swap_warn_mb", 2048)
	v.SetDefault("health::load_warn_per_cpu", 2)
	v.SetDefault("cleanup::estimate_ttl", "60s")
	v.SetDefault("presenter::queue_size", 256)
	v.SetDefault("presenter::action_history", 50)
}

// InitKeeperConfig reads configName (toml) from configPath or the repo config directory.
// A missing file is not an error: defaults and KEEPER_* environment variables still apply.
func InitKeeperConfig(configName string, configPath string) (*Loader, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "keeper_config"
	}
	configName = strings.TrimSuffix(configName, ".toml")
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix("KEEPER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	loader := &Loader{v: v}
	if err := v.Unmarshal(&loader.cfg); err != nil {
		return nil, err
	}
	return loader, nil
}

func (l *Loader) Config() KeeperConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// ConfigFile is the file that was read, empty when running on defaults.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Watch re-reads the file on change and hands the new config to onChange.
// Invalid edits are reported through onError and the previous config stays in place.
func (l *Loader) Watch(onChange func(KeeperConfig), onError func(error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		var cfg KeeperConfig
		if err := l.v.Unmarshal(&cfg); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		l.mu.Lock()
		l.cfg = cfg
		l.mu.Unlock()
		onChange(cfg)
	})
	l.v.WatchConfig()
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
