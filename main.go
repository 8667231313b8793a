package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang/glog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/prebid/openrtb-codec/config"
	"github.com/prebid/openrtb-codec/logger"
)

// Rev holds binary revision string
// Set manually at build time using:
//
//	go build -ldflags "-X main.Rev=`git rev-parse --short HEAD`"
var Rev string

const configFileName = "ortbcodec"

func main() {
	configFile := flag.String("config", configFileName, "configuration file: a path with extension, or a name looked up in . and /etc/config")
	flag.Usage = usage
	flag.Parse() // required for glog flags and testing package flags

	cfg, err := loadConfig(*configFile)
	if err != nil {
		glog.Exitf("Configuration could not be loaded or did not pass validation: %v", err)
	}

	logger.SetLogger(newLogger(cfg.Log))

	a, err := newApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		glog.Exitf("ortbcodec could not start: %v", err)
	}

	code := a.run(flag.Args())
	glog.Flush()
	os.Exit(code)
}

func loadConfig(filename string) (*config.Configuration, error) {
	v := viper.New()
	if err := config.SetupViper(v, filename); err != nil {
		return nil, err
	}
	return config.New(v)
}

func newLogger(cfg config.Log) logger.Logger {
	switch cfg.Backend {
	case config.LogBackendSlog:
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	case config.LogBackendLogrus:
		l := logrus.New()
		l.SetOutput(os.Stderr)
		return logger.NewLogrusLogger(l)
	default:
		return logger.NewGlogLogger(2)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: ortbcodec [-config file] <validate|normalize|roundtrip> [-entity BidRequest] file...\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "A file named - is read from standard input. Revision %q.\n\n", Rev)
	flag.PrintDefaults()
}
