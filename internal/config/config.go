// Package config はアプリケーション設定を提供する。
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する。
// CLIフラグで上書き可能な値は環境変数をデフォルトとして読み込む。
type Config struct {
	// PyHSS API接続設定
	APIURL string `envconfig:"PYHSS_API" default:"http://127.0.0.1:8080"`
	APIKey string `envconfig:"PYHSS_APIKEY" default:"changeThisInProduction"`

	// ログ設定
	LogMaskSecrets bool `envconfig:"PYHSS_LOG_MASK_SECRETS" default:"true"`
	Debug          bool `envconfig:"PYHSS_DEBUG" default:"false"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate は設定値のバリデーションを行う。
// CLIフラグで上書きした後の再検証にも使う。
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("PYHSS_API must start with http:// or https://")
	}
	return nil
}

// BaseURL は末尾スラッシュを除いたAPIベースURLを返す。
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIURL, "/")
}
