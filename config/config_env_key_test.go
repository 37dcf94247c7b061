package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"accessSecret": "",
		},
		"draft": map[string]any{
			"optimisticConcurrency": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_ACCESSSECRET", want: "auth.accessSecret"},
		{envKey: "DRAFT_OPTIMISTICCONCURRENCY", want: "draft.optimisticConcurrency"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Store)
	assert.Equal(t, StoreMemory, cfg.Store.Provider)
	assert.Equal(t, OnDeniedRevoke, cfg.Auth.OnDenied)
	assert.Equal(t, 6, cfg.Auth.PasswordMinLength)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.Equal(t, VerificationDerived, cfg.Verification.Mode)
	assert.Equal(t, 30*time.Minute, cfg.Draft.SessionTTL)
	assert.Len(t, cfg.Draft.SubjectOptions, 9)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.NotEmpty(t, cfg.Storage.AllowedContentTypes)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{OnDenied: OnDeniedKeep, PasswordMinLength: 10},
		Store: &StoreConfig{Provider: StoreSQLite, SQLitePath: "/tmp/x.db"},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, OnDeniedKeep, cfg.Auth.OnDenied)
	assert.Equal(t, 10, cfg.Auth.PasswordMinLength)
	assert.Equal(t, StoreSQLite, cfg.Store.Provider)
	assert.Equal(t, "/tmp/x.db", cfg.Store.SQLitePath)
}
