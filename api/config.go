/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package api

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the settings needed to open a PIX session.
type Config struct {
	// Host is the PIX API host, e.g. "project.pixsystem.com".
	Host string `env:"PIX_API_URL" yaml:"host"`

	// AppKey is the developer application key issued by PIX.
	AppKey string `env:"PIX_APP_KEY" yaml:"app_key"`

	// Username and Password identify the PIX user to log in as. Password
	// may be stored base64-encoded to slightly obfuscate plain text.
	Username string `env:"PIX_USERNAME" yaml:"username"`
	Password string `env:"PIX_PASSWORD" yaml:"password"`

	// Timeout bounds each HTTP request. Zero means 30s.
	Timeout time.Duration `env:"PIX_TIMEOUT,default=30s" yaml:"-"`
}

// FromEnv loads configuration from the environment, honoring a .env file
// in the working directory when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}
	return cfg, nil
}

// LoadFile reads configuration from a YAML file. Values absent from the
// file stay zero; callers typically overlay the result on FromEnv.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns c with empty fields filled in from other.
func (c Config) Merge(other Config) Config {
	if c.Host == "" {
		c.Host = other.Host
	}
	if c.AppKey == "" {
		c.AppKey = other.AppKey
	}
	if c.Username == "" {
		c.Username = other.Username
	}
	if c.Password == "" {
		c.Password = other.Password
	}
	if c.Timeout == 0 {
		c.Timeout = other.Timeout
	}
	return c
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("missing PIX API host (PIX_API_URL)")
	case c.AppKey == "":
		return fmt.Errorf("missing PIX app key (PIX_APP_KEY)")
	case c.Username == "":
		return fmt.Errorf("missing PIX username (PIX_USERNAME)")
	case c.Password == "":
		return fmt.Errorf("missing PIX password (PIX_PASSWORD)")
	}
	return nil
}

// password returns the configured password, decoding it when it is stored
// base64-encoded.
func (c Config) password() string {
	dec, err := base64.StdEncoding.DecodeString(c.Password)
	if err != nil || !utf8.Valid(dec) {
		return c.Password
	}
	return string(dec)
}
