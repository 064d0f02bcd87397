/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package api

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordDecoding(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
	}{
		{
			name:     "base64 encoded",
			password: "aHVudGVyMiE=",
			expected: "hunter2!",
		},
		{
			name:     "plain text",
			password: "hunter2!",
			expected: "hunter2!",
		},
		{
			name:     "empty",
			password: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Password: tt.password}
			assert.Equal(t, tt.expected, cfg.password())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	full := Config{
		Host:     "project.pixsystem.com",
		AppKey:   "key",
		Username: "user",
		Password: "pass",
	}
	assert.NoError(t, full.Validate())

	missingHost := full
	missingHost.Host = ""
	assert.ErrorContains(t, missingHost.Validate(), "PIX_API_URL")

	missingKey := full
	missingKey.AppKey = ""
	assert.ErrorContains(t, missingKey.Validate(), "PIX_APP_KEY")
}

func TestConfigMerge(t *testing.T) {
	base := Config{Host: "host-a", Username: "user-a"}
	other := Config{
		Host:     "host-b",
		AppKey:   "key-b",
		Username: "user-b",
		Password: "pass-b",
		Timeout:  10 * time.Second,
	}

	merged := base.Merge(other)
	assert.Equal(t, "host-a", merged.Host, "set fields win")
	assert.Equal(t, "user-a", merged.Username)
	assert.Equal(t, "key-b", merged.AppKey, "empty fields fill in")
	assert.Equal(t, "pass-b", merged.Password)
	assert.Equal(t, 10*time.Second, merged.Timeout)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PIX_API_URL", "project.pixsystem.com")
	t.Setenv("PIX_APP_KEY", "key")
	t.Setenv("PIX_USERNAME", "user")
	t.Setenv("PIX_PASSWORD", "pass")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "project.pixsystem.com", cfg.Host)
	assert.Equal(t, "key", cfg.AppKey)
	assert.Equal(t, "user", cfg.Username)
	assert.Equal(t, "pass", cfg.Password)
	assert.Equal(t, 30*time.Second, cfg.Timeout, "default timeout")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pix.yaml")
	content := []byte("host: project.pixsystem.com\napp_key: key\nusername: user\npassword: pass\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project.pixsystem.com", cfg.Host)
	assert.Equal(t, "key", cfg.AppKey)
	assert.NoError(t, cfg.Validate())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
