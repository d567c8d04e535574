package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})

	t.Run("service name propagates to logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Logging.ServiceName != "svc" {
			t.Errorf("expected logging service name 'svc', got %q", cfg.Logging.ServiceName)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid staging", ServiceConfig{Name: "svc", Environment: "staging"}, false, ""},
		{"valid production", ServiceConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "name: is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "invalid"}, true, "environment: must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-service
environment: staging
version: "1.0.0"
sse:
  keepalive_seconds: 15
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	type sseSection struct {
		KeepAliveSeconds int `mapstructure:"keepalive_seconds"`
	}
	type testConfig struct {
		ServiceConfig `mapstructure:",squash"`
		SSE           sseSection `mapstructure:"sse"`
	}

	var cfg testConfig
	if err := LoadConfig("test-service", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "test-service" {
		t.Errorf("expected name 'test-service', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.SSE.KeepAliveSeconds != 15 {
		t.Errorf("expected keepalive 15, got %d", cfg.SSE.KeepAliveSeconds)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SSE_KEEPALIVE_SECONDS", "5")

	type sseSection struct {
		KeepAliveSeconds int `mapstructure:"keepalive_seconds"`
	}
	type testConfig struct {
		SSE sseSection `mapstructure:"sse"`
	}

	var cfg testConfig
	if err := LoadConfig("test-service", &cfg, WithConfigFile("/nonexistent/config.yml")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SSE.KeepAliveSeconds != 5 {
		t.Errorf("expected env override keepalive 5, got %d", cfg.SSE.KeepAliveSeconds)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	if err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/pushd/config.yml": true,
		"./cmd/pushd/.env":       true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("pushd", LoaderConfig{})
	if files.ConfigFile != "./cmd/pushd/config.yml" {
		t.Errorf("unexpected config file: %q", files.ConfigFile)
	}
	if files.EnvFile != "./cmd/pushd/.env" {
		t.Errorf("unexpected env file: %q", files.EnvFile)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/config.yml")(&lc)
	WithEnvFile("/path/.env")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/config.yml" {
		t.Errorf("unexpected config file: %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/.env" {
		t.Errorf("unexpected env file: %q", lc.EnvFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("sse_keepalive_seconds")
	want := map[string]bool{
		"sse_keepalive_seconds": false,
		"sse.keepalive.seconds": false,
		"sse.keepalive_seconds": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("variant %q missing from %v", key, variants)
		}
	}
}
