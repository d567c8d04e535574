package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp to default to true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, false},
		{"valid console", Config{Level: "info", Format: "console"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("connection_id", uint64(7), "bytes", 42)

	if m["connection_id"] != uint64(7) {
		t.Errorf("expected connection_id 7, got %v", m["connection_id"])
	}
	if m["bytes"] != 42 {
		t.Errorf("expected bytes 42, got %v", m["bytes"])
	}
}

func TestFields_OddArgs(t *testing.T) {
	m := Fields("key", "value", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key to be dropped, got %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("ssekit")
	cl := l.WithComponent("sse")
	if cl == nil {
		t.Fatal("expected component logger")
	}
	// The original logger must not be mutated.
	if l == cl {
		t.Error("expected a new logger instance")
	}
}

func TestGet_Unregistered(t *testing.T) {
	l := Get("nonexistent-component")
	if l == nil {
		t.Fatal("expected fallback logger for unregistered name")
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("ssekit").WithComponent("registry")
	Register("registry", l)

	if got := Get("registry"); got != l {
		t.Error("expected registered logger to be returned")
	}
}
