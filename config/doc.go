// Package config provides configuration loading for ssekit applications.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with godotenv support for .env files. Applications embed
// ServiceConfig in their own config struct and load it with LoadConfig:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    SSE sse.Config `yaml:"sse" mapstructure:"sse"`
//	}
//
//	var cfg AppConfig
//	if err := config.LoadConfig("stockmonitor", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
//
// Environment variables override file values; SSE_KEEPALIVE_SECONDS binds
// to sse.keepalive_seconds.
package config
