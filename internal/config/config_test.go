package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"48", 48},
		{"", 24},
		{"abc", 24},
		{"-3", 24},
		{"0", 24},
	}

	for _, tt := range tests {
		t.Setenv("CFG_INT", tt.value)
		if got := getEnvInt("CFG_INT", 24); got != tt.want {
			t.Fatalf("getEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "SEED", "SENSOR_DATA_PATH",
		"DEFAULT_WINDOW_HOURS", "MQTT_BROKER", "MQTT_TOPIC", "OPENAI_API_KEY", "OPENAI_COACHING_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.SensorDataPath != "sensor_data.json" || cfg.DefaultWindowHours != 24 {
		t.Fatalf("sensor defaults not applied: %+v", cfg)
	}
	if cfg.MQTTBroker != "" || cfg.MQTTTopic != "wellness/+/readings" {
		t.Fatalf("mqtt defaults not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("DEFAULT_WINDOW_HOURS", "72")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_COACHING_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.DefaultWindowHours != 72 || cfg.MQTTBroker != "tcp://broker:1883" {
		t.Fatalf("window/mqtt overrides missing: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAICoachingModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}
