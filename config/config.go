package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/prebid/openrtb-codec/util/sliceutil"
)

// Configuration of the ortbcodec tool.
type Configuration struct {
	Decoder Decoder `mapstructure:"decoder"`
	// Strict makes Warning findings fail validation, not only Error findings.
	Strict     bool       `mapstructure:"strict"`
	ExtSchemas ExtSchemas `mapstructure:"ext_schemas"`
	Metrics    Metrics    `mapstructure:"metrics"`
	Log        Log        `mapstructure:"log"`
}

type Decoder struct {
	ApplyDefaults       bool `mapstructure:"apply_defaults"`
	RecommendedWarnings bool `mapstructure:"recommended_warnings"`
	SemanticChecks      bool `mapstructure:"semantic_checks"`
}

// ExtSchemas points at a directory of JSON schemas, one per entity type, used to
// validate "ext" payloads. An empty Dir disables ext validation.
type ExtSchemas struct {
	Dir string `mapstructure:"dir"`
}

const (
	MetricsTypeNone       = "none"
	MetricsTypeGoMetrics  = "gometrics"
	MetricsTypePrometheus = "prometheus"
)

// Metrics selects the metrics engines. Type is a comma separated list, so that
// "gometrics,prometheus" records to both.
type Metrics struct {
	Type       string            `mapstructure:"type"`
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
}

type PrometheusMetrics struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

const (
	LogBackendGlog   = "glog"
	LogBackendSlog   = "slog"
	LogBackendLogrus = "logrus"
)

// Log selects where the codec packages send their log lines. An empty Backend
// means glog.
type Log struct {
	Backend string `mapstructure:"backend"`
}

type configErrors []error

func (c configErrors) Error() string {
	if len(c) == 0 {
		return ""
	}
	buf := strings.Builder{}
	buf.WriteString("validation errors are:\n\n")
	for _, err := range c {
		buf.WriteString(fmt.Sprintf("  %s\n", err.Error()))
	}
	return buf.String()
}

func (cfg *Configuration) validate() configErrors {
	var errs configErrors
	errs = cfg.Metrics.validate(errs)
	errs = cfg.Log.validate(errs)
	return errs
}

func (cfg *Log) validate(errs []error) []error {
	switch cfg.Backend {
	case "", LogBackendGlog, LogBackendSlog, LogBackendLogrus:
	default:
		errs = append(errs, fmt.Errorf("log.backend %q is invalid. It must be one of %q, %q or %q", cfg.Backend, LogBackendGlog, LogBackendSlog, LogBackendLogrus))
	}
	return errs
}

// Types returns the engines named by Type, without blanks and duplicates.
func (cfg *Metrics) Types() []string {
	var types []string
	for _, typ := range strings.Split(cfg.Type, ",") {
		typ = strings.TrimSpace(typ)
		if typ == "" || sliceutil.Contains(types, typ) {
			continue
		}
		types = append(types, typ)
	}
	return types
}

func (cfg *Metrics) validate(errs []error) []error {
	for _, typ := range cfg.Types() {
		switch typ {
		case MetricsTypeNone, MetricsTypeGoMetrics:
		case MetricsTypePrometheus:
			if cfg.Prometheus.Namespace == "" {
				errs = append(errs, errors.New("metrics.prometheus.namespace must not be empty"))
			}
		default:
			errs = append(errs, fmt.Errorf("metrics.type %q is invalid. It must be one of %q, %q or %q", typ, MetricsTypeNone, MetricsTypeGoMetrics, MetricsTypePrometheus))
		}
	}
	return errs
}

// Validate reports every configuration problem at once, or nil.
func (cfg *Configuration) Validate() error {
	if errs := cfg.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

// New uses viper to get our configuration.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetupViper sets the defaults, the config file lookup and the environment
// binding of v, then reads the config file. A filename with an extension is used
// as a path. Without one it names a file looked up in . and /etc/config, and a
// missing file leaves the defaults and the environment in effect. A file which
// exists but cannot be read or parsed is an error.
func SetupViper(v *viper.Viper, filename string) error {
	v.SetDefault("decoder.apply_defaults", true)
	v.SetDefault("decoder.recommended_warnings", false)
	v.SetDefault("decoder.semantic_checks", true)
	v.SetDefault("strict", false)
	v.SetDefault("ext_schemas.dir", "")
	v.SetDefault("metrics.type", MetricsTypeNone)
	v.SetDefault("metrics.prometheus.namespace", "ortbcodec")
	v.SetDefault("metrics.prometheus.subsystem", "")
	v.SetDefault("log.backend", LogBackendGlog)

	v.SetEnvPrefix("ORTBCODEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename == "" {
		return nil
	}
	if filepath.Ext(filename) != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config %q: %w", filename, err)
	}
	return nil
}
