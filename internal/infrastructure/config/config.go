package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full service configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RPC        RPCConfig        `mapstructure:"rpc"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClassifierConfig holds zero-shot model configuration
type ClassifierConfig struct {
	APIURL     string        `mapstructure:"api_url"`
	APIKey     string        `mapstructure:"api_key"`
	TextModel  string        `mapstructure:"text_model"`
	ImageModel string        `mapstructure:"image_model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Workers    int           `mapstructure:"workers"`
}

// CacheConfig holds classification cache configuration
type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Size    int           `mapstructure:"size"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RPCConfig holds the upstream JSON-RPC forwarding configuration.
// An empty UpstreamURL disables the /rpc endpoint.
type RPCConfig struct {
	UpstreamURL string        `mapstructure:"upstream_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// NotifyConfig holds notification provider credentials. A channel with
// missing credentials is disabled, not an error.
type NotifyConfig struct {
	SendGridAPIKey   string `mapstructure:"sendgrid_api_key"`
	EmailFrom        string `mapstructure:"email_from"`
	EmailTo          string `mapstructure:"email_to"`
	TwilioAccountSID string `mapstructure:"twilio_account_sid"`
	TwilioAuthToken  string `mapstructure:"twilio_auth_token"`
	TwilioFrom       string `mapstructure:"twilio_from"`
	SMSTo            string `mapstructure:"sms_to"`
}

// CORSConfig holds the cross-origin allow-list
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the GRIEVAI_
// prefix, falling back to documented defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("GRIEVAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Classifier defaults
	v.SetDefault("classifier.api_url", "https://api-inference.huggingface.co")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.text_model", "facebook/bart-large-mnli")
	v.SetDefault("classifier.image_model", "openai/clip-vit-large-patch14")
	v.SetDefault("classifier.timeout", 20*time.Second)
	v.SetDefault("classifier.workers", 4)

	// Cache defaults
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.size", 1024)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// RPC defaults
	v.SetDefault("rpc.upstream_url", "")
	v.SetDefault("rpc.timeout", 30*time.Second)

	// Notification defaults: all channels disabled until configured
	v.SetDefault("notify.sendgrid_api_key", "")
	v.SetDefault("notify.email_from", "")
	v.SetDefault("notify.email_to", "")
	v.SetDefault("notify.twilio_account_sid", "")
	v.SetDefault("notify.twilio_auth_token", "")
	v.SetDefault("notify.twilio_from", "")
	v.SetDefault("notify.sms_to", "")

	// CORS defaults: local development origins only
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})
}
