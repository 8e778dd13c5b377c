package main

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Run("MissingCredentials", func(t *testing.T) {
		t.Setenv("ALIYUN_ACCESS_KEY_ID", "")
		t.Setenv("ALIYUN_ACCESS_KEY_SECRET", "")

		if _, err := LoadConfig(); err == nil {
			t.Error("expected error when credentials are absent")
		}
	})

	t.Run("DefaultRegion", func(t *testing.T) {
		t.Setenv("ALIYUN_ACCESS_KEY_ID", "key")
		t.Setenv("ALIYUN_ACCESS_KEY_SECRET", "secret")
		t.Setenv("ALIYUN_REGION", "")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Region != defaultRegion {
			t.Errorf("region = %q, want %q", cfg.Region, defaultRegion)
		}
	})

	t.Run("ExplicitRegion", func(t *testing.T) {
		t.Setenv("ALIYUN_ACCESS_KEY_ID", "key")
		t.Setenv("ALIYUN_ACCESS_KEY_SECRET", "secret")
		t.Setenv("ALIYUN_REGION", "cn-shanghai")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Region != "cn-shanghai" {
			t.Errorf("region = %q, want cn-shanghai", cfg.Region)
		}
	})
}
