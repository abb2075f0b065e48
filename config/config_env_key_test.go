package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"tracking": map[string]any{
			"maxAttempts": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TRACKING_MAXATTEMPTS", want: "tracking.maxAttempts"},
		{envKey: "STORAGE_DRIVER", want: "storage.driver"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"
		cfg.Storage.Driver = " Memory "

		if err := cfg.applyDefaults(); err != nil {
			t.Fatalf("applyDefaults() error = %v", err)
		}
		if cfg.Storage.Driver != StorageDriverMemory {
			t.Fatalf("driver = %q, want %q", cfg.Storage.Driver, StorageDriverMemory)
		}
		if cfg.Tracking.MaxAttempts != defaultTrackingAttempts {
			t.Fatalf("maxAttempts = %d, want %d", cfg.Tracking.MaxAttempts, defaultTrackingAttempts)
		}
		if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
			t.Fatalf("maxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
		}
	})

	t.Run("postgres driver needs postgres section", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"

		if err := cfg.applyDefaults(); err == nil {
			t.Fatal("expected an error for a missing postgres section")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"
		cfg.Storage.Driver = "sqlite"

		if err := cfg.applyDefaults(); err == nil {
			t.Fatal("expected an error for an unknown driver")
		}
	})

	t.Run("access secret required", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = StorageDriverMemory

		if err := cfg.applyDefaults(); err == nil {
			t.Fatal("expected an error for a missing access secret")
		}
	})
}
