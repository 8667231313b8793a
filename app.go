package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/common/expfmt"
	gometrics "github.com/rcrowley/go-metrics"

	"github.com/prebid/openrtb-codec/codec"
	"github.com/prebid/openrtb-codec/config"
	"github.com/prebid/openrtb-codec/errortypes"
	metricsConf "github.com/prebid/openrtb-codec/metrics/config"
	"github.com/prebid/openrtb-codec/openrtb2"
	"github.com/prebid/openrtb-codec/openrtb_ext"
	"github.com/prebid/openrtb-codec/schema"
	"github.com/prebid/openrtb-codec/util/jsonutil"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	stdinMarker = "-"
)

// app runs one ortbcodec command over a list of files.
type app struct {
	cfg           *config.Configuration
	schema        *schema.Schema
	decoder       *codec.Decoder
	encoder       *codec.Encoder
	extValidator  openrtb_ext.ExtValidator
	metricsEngine *metricsConf.DetailedMetricsEngine

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(cfg *config.Configuration, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	a := &app{
		cfg:           cfg,
		schema:        schema.Default(),
		metricsEngine: metricsConf.NewMetricsEngine(cfg),
		stdin:         stdin,
		stdout:        stdout,
		stderr:        stderr,
	}

	opts := []codec.Option{codec.WithSchema(a.schema), codec.WithMetrics(a.metricsEngine)}
	if !cfg.Decoder.ApplyDefaults {
		opts = append(opts, codec.WithoutDefaults())
	}
	if cfg.Decoder.RecommendedWarnings {
		opts = append(opts, codec.WithRecommendedWarnings())
	}
	if !cfg.Decoder.SemanticChecks {
		opts = append(opts, codec.WithoutSemanticChecks())
	}
	a.decoder = codec.NewDecoder(opts...)
	a.encoder = codec.NewEncoder(opts...)

	if cfg.ExtSchemas.Dir != "" {
		validator, err := openrtb_ext.NewExtValidator(cfg.ExtSchemas.Dir)
		if err != nil {
			return nil, err
		}
		a.extValidator = validator
	}
	return a, nil
}

type command func(a *app, name string, data []byte, t schema.EntityType) bool

var commands = map[string]command{
	"validate":  (*app).validate,
	"normalize": (*app).normalize,
	"roundtrip": (*app).roundTrip,
}

// run executes args, the command line after the global flags, and returns the
// process exit code.
func (a *app) run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, "missing command: expected one of validate, normalize or roundtrip")
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q: expected one of validate, normalize or roundtrip\n", args[0])
		return exitUsage
	}

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	entity := flags.String("entity", string(schema.BidRequest), "OpenRTB object type of the input files")
	if err := flags.Parse(args[1:]); err != nil {
		return exitUsage
	}
	t := schema.EntityType(*entity)
	if _, ok := a.schema.Entity(t); !ok {
		fmt.Fprintf(a.stderr, "unknown entity %q\n", *entity)
		return exitUsage
	}
	files := flags.Args()
	if len(files) == 0 {
		files = []string{stdinMarker}
	}

	code := exitOK
	for _, name := range files {
		data, err := a.read(name)
		if err != nil {
			fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
			code = exitFailed
			continue
		}
		if !cmd(a, name, data, t) {
			code = exitFailed
		}
	}

	a.writeMetrics()
	return code
}

func (a *app) read(name string) ([]byte, error) {
	if name == stdinMarker {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(name)
}

// decode reports parse errors itself and returns nil for them.
func (a *app) decode(name string, data []byte, t schema.EntityType) (openrtb2.Extensible, codec.Findings) {
	obj, findings, err := a.decoder.Decode(t, data)
	if err != nil {
		var parseErr *errortypes.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(a.stderr, "%s: %v, no-bid reason %d\n", name, err, errortypes.NoBidReason(parseErr))
		} else {
			glog.Errorf("%s: %v", name, err)
		}
		return nil, nil
	}
	return obj, findings
}

func (a *app) validate(name string, data []byte, t schema.EntityType) bool {
	obj, findings := a.decode(name, data, t)
	if obj == nil {
		return false
	}

	if a.extValidator != nil {
		extFindings, err := openrtb_ext.ValidateExtensions(a.schema, a.extValidator, t, obj)
		if err != nil {
			glog.Errorf("%s: validating ext: %v", name, err)
			return false
		}
		findings = append(findings, extFindings...)
	}

	errs := make([]error, len(findings))
	for i, f := range findings {
		fmt.Fprintf(a.stdout, "%s: %s %s %s: %s\n", name, f.Sev, f.Kind, f.Path, f.Message)
		errs[i] = f
	}
	if errortypes.ContainsError(errs) {
		fmt.Fprintf(a.stdout, "%s: invalid, no-bid reason %d\n", name, errortypes.NoBidReason(findings.Err()))
		return false
	}
	if warnings := errortypes.WarningOnly(errs); a.cfg.Strict && len(warnings) > 0 {
		fmt.Fprintf(a.stdout, "%s: %d warning(s) in strict mode\n", name, len(warnings))
		return false
	}
	fmt.Fprintf(a.stdout, "%s: ok\n", name)
	return true
}

func (a *app) normalize(name string, data []byte, t schema.EntityType) bool {
	obj, _ := a.decode(name, data, t)
	if obj == nil {
		return false
	}
	out, err := a.encoder.EncodeEntity(t, obj)
	if err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
		return false
	}
	if _, err := a.stdout.Write(append(out, '\n')); err != nil {
		fmt.Fprintf(a.stderr, "%s: writing output: %v\n", name, err)
		return false
	}
	return true
}

func (a *app) roundTrip(name string, data []byte, t schema.EntityType) bool {
	obj, _ := a.decode(name, data, t)
	if obj == nil {
		return false
	}
	out, err := a.encoder.EncodeEntity(t, obj)
	if err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
		return false
	}

	diff, err := jsonutil.Diff(data, out)
	if err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
		return false
	}
	if diff != "" {
		fmt.Fprintf(a.stdout, "%s: round trip changed the document\n%s\n", name, diff)
		return false
	}
	fmt.Fprintf(a.stdout, "%s: ok\n", name)
	return true
}

// writeMetrics dumps the collected metrics to stderr, since the process exits
// before anything could scrape them.
func (a *app) writeMetrics() {
	if a.metricsEngine.GoMetrics != nil {
		gometrics.WriteOnce(a.metricsEngine.GoMetrics.MetricsRegistry, a.stderr)
	}
	if a.metricsEngine.PrometheusMetrics == nil {
		return
	}
	families, err := a.metricsEngine.PrometheusMetrics.Registry.Gather()
	if err != nil {
		glog.Warningf("gathering metrics: %v", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.stderr, mf); err != nil {
			glog.Warningf("writing metrics: %v", err)
			return
		}
	}
}
