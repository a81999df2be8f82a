package config

import (
	"testing"

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
		"ingestion": map[string]any{
			"identifierWidth": 4,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "INGESTION_IDENTIFIERWIDTH", want: "ingestion.identifierWidth"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsIngestionAndHTTP(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Ingestion)
	assert.Equal(t, defaultIdentifierWidth, cfg.Ingestion.IdentifierWidth)
	assert.Equal(t, DefaultDateLayouts, cfg.Ingestion.DateLayouts)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Ingestion: &IngestionConfig{IdentifierWidth: 6, DateLayouts: []string{"2006.01.02"}, MaxBatchSize: 10},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, 6, cfg.Ingestion.IdentifierWidth)
	assert.Equal(t, []string{"2006.01.02"}, cfg.Ingestion.DateLayouts)
	assert.Equal(t, 10, cfg.Ingestion.MaxBatchSize)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Nil(t, cfg.Metrics)
}
