package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/checkin-sim/checkin-sim/internal/tracing"
	"github.com/checkin-sim/checkin-sim/sim"
	"github.com/checkin-sim/checkin-sim/sim/workload"
)

// runOptions holds the flag values of the root command.
type runOptions struct {
	clerks     int    // Number of clerks serving both queues
	logLevel   string // Log verbosity level
	configPath string // Optional YAML config file
	metricsOut string // Prometheus text output path
	traceOut   string // OpenTelemetry span output path
}

// NewRootCommand builds the CLI. The root command runs the simulation on
// its single input file argument; validate only parses it. Event lines and
// the summary go to stdout, logs and usage to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:           "checkin-sim <input-file>",
		Short:         "Concurrent simulator of a two-class airline check-in desk",
		Args:          exactlyOneInput,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			logrus.SetOutput(stderr)
			logrus.SetLevel(settings.LogLevel)
			return runSimulation(cmd.Context(), settings, args[0], stdout)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.Flags().IntVar(&opts.clerks, "clerks", sim.DefaultClerks, "Number of clerks")
	root.Flags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.Flags().StringVar(&opts.configPath, "config", "", "YAML file with clerks, log_level, metrics_out, trace_out")
	root.Flags().StringVar(&opts.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	root.Flags().StringVar(&opts.traceOut, "trace-out", "", "Write OpenTelemetry spans as JSON to this file")

	root.AddCommand(newValidateCommand(stdout))
	return root
}

// exactlyOneInput accepts a single input file argument.
func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

func newValidateCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Parse a customer file and report what would be simulated",
		Args:  exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := workload.Load(cmd.Context(), afs.New(), args[0])
			if err != nil {
				return err
			}
			business, economy := workload.Breakdown(customers)
			fmt.Fprintf(stdout, "customers: %d (business %d, economy %d)\n", len(customers), business, economy)
			if len(customers) > 0 {
				fmt.Fprintf(stdout, "arrivals: first %.2f s, last %.2f s\n",
					customers[0].Arrival.Seconds(), customers[len(customers)-1].Arrival.Seconds())
			}
			return nil
		},
	}
}

// runSimulation loads the input, runs the simulator with the configured
// observers and prints the summary.
func runSimulation(ctx context.Context, settings runSettings, input string, stdout io.Writer) error {
	runID := uuid.NewString()
	log := logrus.WithField("run_id", runID)

	customers, err := workload.Load(ctx, afs.New(), input)
	if err != nil {
		return err
	}
	log.Infof("loaded %d customers from %s", len(customers), input)

	observers := []sim.Observer{sim.NewPrinter(stdout)}

	var metrics *sim.Metrics
	if settings.MetricsOut != "" {
		metrics = sim.NewMetrics()
		observers = append(observers, metrics)
	}

	var s *sim.Simulator
	if settings.TraceOut != "" {
		f, err := os.Create(settings.TraceOut)
		if err != nil {
			return errors.Wrap(err, "create trace output")
		}
		defer f.Close()

		tp, err := tracing.NewProvider(f, runID)
		if err != nil {
			return errors.Wrap(err, "init tracing")
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Warnf("flush traces: %v", err)
			}
		}()
		observers = append(observers, tracing.NewSpanObserver(tp, func() sim.Clock { return s.Clock() }))
	}

	s, err = sim.NewSimulator(sim.Config{Clerks: settings.Clerks, RunID: runID}, customers, observers...)
	if err != nil {
		return err
	}
	summary := s.Run()
	summary.Print(stdout)

	if metrics != nil {
		if err := metrics.WriteToFile(settings.MetricsOut); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

// Execute runs the CLI with the process arguments and exits with the code
// matching the failure class.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	code := exitCode(err)
	if err == nil {
		return code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if code == ExitUsage {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}
