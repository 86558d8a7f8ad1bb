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
		"directory": map[string]any{
			"autoApprove":   true,
			"maxImages":     10,
			"showInSitemap": true,
		},
		"entitlement": map[string]any{
			"planId": "",
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
		{envKey: "DIRECTORY_AUTOAPPROVE", want: "directory.autoApprove"},
		{envKey: "DIRECTORY_MAXIMAGES", want: "directory.maxImages"},
		{envKey: "ENTITLEMENT_PLANID", want: "entitlement.planId"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Directory)
	assert.True(t, cfg.Directory.Enabled)
	assert.Equal(t, 20, cfg.Directory.PublicPageSize)
	assert.Equal(t, 50, cfg.Directory.AdminPageSize)
	assert.Equal(t, 6, cfg.Directory.RelatedLimit)
	assert.Equal(t, 10, cfg.Directory.MaxImages)
	assert.Equal(t, 200, cfg.Scheduler.BatchSize)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.ReconcileInterval)
	assert.Equal(t, "mem://", cfg.Snapshot.BucketURL)
	assert.Equal(t, NotificationProviderNone, cfg.Notification.Provider)
	assert.NotNil(t, cfg.Entitlement)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Directory: &DirectoryConfig{
			PublicPageSize: 12,
			MaxImages:      4,
			BaseURL:        "https://example.com/",
		},
		Scheduler: &SchedulerConfig{BatchSize: 50},
	}

	applyDefaults(cfg)

	assert.False(t, cfg.Directory.Enabled)
	assert.Equal(t, 12, cfg.Directory.PublicPageSize)
	assert.Equal(t, 4, cfg.Directory.MaxImages)
	assert.Equal(t, "https://example.com", cfg.Directory.BaseURL)
	assert.Equal(t, 50, cfg.Scheduler.BatchSize)
}
