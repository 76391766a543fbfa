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

// Package config types define the configuration structures used throughout
// literal-relay. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for literal-relay.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Literal  LiteralConfig  `yaml:"literal"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LiteralConfig contains Literal-specific settings: the GraphQL endpoint
// and the names of the environment variables consulted for credentials.
// A custom endpoint is mainly useful for testing against a stub server.
type LiteralConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	EmailEnv        string `yaml:"email_env"`
	PasswordEnv     string `yaml:"password_env"`
}

// DefaultsConfig contains default settings that apply to every export
// unless overridden by command-line flags.
type DefaultsConfig struct {
	PageSize int    `yaml:"page_size"`
	Format   string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. The page size matches the maximum the myReviews query accepts.
func DefaultConfig() *Config {
	return &Config{
		Literal: LiteralConfig{
			GraphQLEndpoint: "https://literal.club/graphql/",
			EmailEnv:        "LITERAL_EMAIL",
			PasswordEnv:     "LITERAL_PASSWORD",
		},
		Defaults: DefaultsConfig{
			PageSize: 100,
			Format:   "csv",
		},
	}
}
