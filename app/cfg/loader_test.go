package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestValidateAPICredentials(t *testing.T) {
	cfg := &Cfg{
		Source:    SourceAPI,
		UserAgent: "test-agent",
	}

	if err := cfg.validate(); err == nil {
		t.Error("Expected error for missing API credentials")
	}

	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"
	if err := cfg.validate(); err != nil {
		t.Errorf("Expected no error with full credentials, got: %v", err)
	}
}

func TestValidateRSSWithoutCredentials(t *testing.T) {
	cfg := &Cfg{Source: SourceRSS}

	if err := cfg.validate(); err != nil {
		t.Errorf("RSS source should not require credentials, got: %v", err)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		UserAgent:    "Test Agent",
		JobFile:      "./job.yml",
		OutputPath:   "./out.csv",
		Source:       SourceAPI,
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.ClientID != "test-id" {
		t.Errorf("Expected client ID 'test-id', got '%s'", cfg.ClientID)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.JobFile != "./job.yml" {
		t.Errorf("Expected job file './job.yml', got '%s'", cfg.JobFile)
	}
	if cfg.OutputPath != "./out.csv" {
		t.Errorf("Expected output path './out.csv', got '%s'", cfg.OutputPath)
	}
	if cfg.Source != SourceAPI {
		t.Errorf("Expected source 'api', got '%s'", cfg.Source)
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
