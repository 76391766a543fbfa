// Copyright 2025 BookRelay, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Literal.GraphQLEndpoint != "https://literal.club/graphql/" {
		t.Errorf("GraphQLEndpoint = %q, want the public Literal endpoint", cfg.Literal.GraphQLEndpoint)
	}
	if cfg.Literal.EmailEnv != "LITERAL_EMAIL" {
		t.Errorf("EmailEnv = %q, want LITERAL_EMAIL", cfg.Literal.EmailEnv)
	}
	if cfg.Literal.PasswordEnv != "LITERAL_PASSWORD" {
		t.Errorf("PasswordEnv = %q, want LITERAL_PASSWORD", cfg.Literal.PasswordEnv)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Format != "csv" {
		t.Errorf("Format = %q, want csv", cfg.Defaults.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
literal:
  graphql_endpoint: https://example.com/graphql/
  email_env: MY_EMAIL
defaults:
  page_size: 25
  format: json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Literal.GraphQLEndpoint != "https://example.com/graphql/" {
		t.Errorf("GraphQLEndpoint = %q, want override", cfg.Literal.GraphQLEndpoint)
	}
	if cfg.Literal.EmailEnv != "MY_EMAIL" {
		t.Errorf("EmailEnv = %q, want MY_EMAIL", cfg.Literal.EmailEnv)
	}
	// Unset keys keep their defaults.
	if cfg.Literal.PasswordEnv != "LITERAL_PASSWORD" {
		t.Errorf("PasswordEnv = %q, want default LITERAL_PASSWORD", cfg.Literal.PasswordEnv)
	}
	if cfg.Defaults.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Defaults.Format)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LITERAL_GRAPHQL_ENDPOINT", "https://stub.example.com/graphql/")
	t.Setenv("LITERAL_RELAY_PAGE_SIZE", "10")
	t.Setenv("LITERAL_RELAY_FORMAT", "json")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Literal.GraphQLEndpoint != "https://stub.example.com/graphql/" {
		t.Errorf("GraphQLEndpoint = %q, want env override", cfg.Literal.GraphQLEndpoint)
	}
	if cfg.Defaults.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Defaults.Format)
	}
}

func TestEnvOverrideInvalidPageSize(t *testing.T) {
	t.Setenv("LITERAL_RELAY_PAGE_SIZE", "not-a-number")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want default 100 when override is invalid", cfg.Defaults.PageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Defaults.PageSize = 0 },
			wantErr: true,
		},
		{
			name:    "page size above limit",
			mutate:  func(c *Config) { c.Defaults.PageSize = 500 },
			wantErr: true,
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.Literal.GraphQLEndpoint = "" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Defaults.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
