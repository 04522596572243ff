package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/checkin-sim/checkin-sim/sim"
)

// FileConfig is the optional YAML run configuration. Zero values mean
// "not set"; explicitly set flags take precedence over the file.
// Strict parsing: unknown keys are errors so typos do not pass silently.
type FileConfig struct {
	Clerks     int    `yaml:"clerks"`
	LogLevel   string `yaml:"log_level"`
	MetricsOut string `yaml:"metrics_out"`
	TraceOut   string `yaml:"trace_out"`
}

// loadFileConfig parses the YAML file at path.
func loadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &ConfigError{Source: path, Err: err}
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, &ConfigError{Source: path, Err: errors.Wrap(err, "parse YAML")}
	}
	return cfg, nil
}

// runSettings is the resolved configuration of one run.
type runSettings struct {
	Clerks     int
	LogLevel   logrus.Level
	MetricsOut string
	TraceOut   string
}

// resolveSettings merges flag values with the optional config file.
func resolveSettings(cmd *cobra.Command, opts *runOptions) (runSettings, error) {
	var file FileConfig
	if opts.configPath != "" {
		var err error
		if file, err = loadFileConfig(opts.configPath); err != nil {
			return runSettings{}, err
		}
	}

	flags := cmd.Flags()
	pick := func(flag, flagValue, fileValue string) string {
		if flags.Changed(flag) || fileValue == "" {
			return flagValue
		}
		return fileValue
	}

	clerks := opts.clerks
	if !flags.Changed("clerks") && file.Clerks != 0 {
		clerks = file.Clerks
	}
	if err := (sim.Config{Clerks: clerks}).Validate(); err != nil {
		return runSettings{}, &ConfigError{Source: "clerks", Err: err}
	}

	levelName := pick("log", opts.logLevel, file.LogLevel)
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return runSettings{}, &ConfigError{Source: "log", Err: err}
	}

	return runSettings{
		Clerks:     clerks,
		LogLevel:   level,
		MetricsOut: pick("metrics-out", opts.metricsOut, file.MetricsOut),
		TraceOut:   pick("trace-out", opts.traceOut, file.TraceOut),
	}, nil
}
