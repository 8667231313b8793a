package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	require.NoError(t, SetupViper(v, ""))
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yaml)))
	return v
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, SetupViper(v, ""))
	cfg, err := New(v)
	require.NoError(t, err)

	assert.True(t, cfg.Decoder.ApplyDefaults)
	assert.False(t, cfg.Decoder.RecommendedWarnings)
	assert.True(t, cfg.Decoder.SemanticChecks)
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.ExtSchemas.Dir)
	assert.Equal(t, MetricsTypeNone, cfg.Metrics.Type)
	assert.Equal(t, "ortbcodec", cfg.Metrics.Prometheus.Namespace)
	assert.Equal(t, LogBackendGlog, cfg.Log.Backend)
}

func TestFullConfig(t *testing.T) {
	v := newViper(t, `
decoder:
  apply_defaults: false
  recommended_warnings: true
  semantic_checks: false
strict: true
ext_schemas:
  dir: /etc/ortbcodec/schemas
metrics:
  type: prometheus
  prometheus:
    namespace: exchange
    subsystem: codec
log:
  backend: logrus
`)
	cfg, err := New(v)
	require.NoError(t, err)

	assert.False(t, cfg.Decoder.ApplyDefaults)
	assert.True(t, cfg.Decoder.RecommendedWarnings)
	assert.False(t, cfg.Decoder.SemanticChecks)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "/etc/ortbcodec/schemas", cfg.ExtSchemas.Dir)
	assert.Equal(t, MetricsTypePrometheus, cfg.Metrics.Type)
	assert.Equal(t, "exchange", cfg.Metrics.Prometheus.Namespace)
	assert.Equal(t, "codec", cfg.Metrics.Prometheus.Subsystem)
	assert.Equal(t, LogBackendLogrus, cfg.Log.Backend)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ORTBCODEC_STRICT", "true")
	t.Setenv("ORTBCODEC_METRICS_TYPE", "gometrics")

	v := viper.New()
	require.NoError(t, SetupViper(v, ""))
	cfg, err := New(v)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, MetricsTypeGoMetrics, cfg.Metrics.Type)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		description string
		metrics     Metrics
		wantErr     string
	}{
		{
			description: "None",
			metrics:     Metrics{Type: MetricsTypeNone},
		},
		{
			description: "Go Metrics",
			metrics:     Metrics{Type: MetricsTypeGoMetrics},
		},
		{
			description: "Prometheus",
			metrics:     Metrics{Type: MetricsTypePrometheus, Prometheus: PrometheusMetrics{Namespace: "ns"}},
		},
		{
			description: "Prometheus Without Namespace",
			metrics:     Metrics{Type: MetricsTypePrometheus},
			wantErr:     "metrics.prometheus.namespace must not be empty",
		},
		{
			description: "Unknown Type",
			metrics:     Metrics{Type: "influxdb"},
			wantErr:     `metrics.type "influxdb" is invalid`,
		},
		{
			description: "Go Metrics And Prometheus",
			metrics:     Metrics{Type: "gometrics, prometheus", Prometheus: PrometheusMetrics{Namespace: "ns"}},
		},
		{
			description: "List With Unknown Type",
			metrics:     Metrics{Type: "gometrics,statsd"},
			wantErr:     `metrics.type "statsd" is invalid`,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			cfg := Configuration{Metrics: test.metrics}
			err := cfg.Validate()
			if test.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}

func TestMetricsTypes(t *testing.T) {
	tests := []struct {
		description string
		given       string
		expected    []string
	}{
		{description: "Empty", given: "", expected: nil},
		{description: "Single", given: "prometheus", expected: []string{"prometheus"}},
		{description: "List", given: "gometrics, prometheus", expected: []string{"gometrics", "prometheus"}},
		{description: "Duplicates And Blanks", given: "gometrics,,gometrics ", expected: []string{"gometrics"}},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			cfg := Metrics{Type: test.given}
			assert.Equal(t, test.expected, cfg.Types())
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ortbcodec.yaml")
	require.NoError(t, os.WriteFile(good, []byte("strict: true\nmetrics:\n  type: gometrics\n"), 0o644))
	bad := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("strict: [true\n"), 0o644))

	tests := []struct {
		description string
		filename    string
		wantErr     bool
		wantStrict  bool
	}{
		{description: "No File", filename: ""},
		{description: "Missing Name", filename: "no-such-ortbcodec-config"},
		{description: "Path", filename: good, wantStrict: true},
		{description: "Missing Path", filename: filepath.Join(dir, "missing.yaml"), wantErr: true},
		{description: "Malformed File", filename: bad, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			v := viper.New()
			err := SetupViper(v, test.filename)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg, err := New(v)
			require.NoError(t, err)
			assert.Equal(t, test.wantStrict, cfg.Strict)
		})
	}
}

func TestValidateLog(t *testing.T) {
	for _, backend := range []string{"", LogBackendGlog, LogBackendSlog, LogBackendLogrus} {
		cfg := Configuration{Metrics: Metrics{Type: MetricsTypeNone}, Log: Log{Backend: backend}}
		assert.NoError(t, cfg.Validate(), backend)
	}

	cfg := Configuration{Metrics: Metrics{Type: MetricsTypeNone}, Log: Log{Backend: "zap"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log.backend "zap" is invalid`)
}

func TestNewRejectsInvalid(t *testing.T) {
	v := newViper(t, "metrics:\n  type: statsd\n")
	cfg, err := New(v)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
