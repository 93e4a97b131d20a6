package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/mlfq-sim/mlfq-sim/sim"
	"github.com/mlfq-sim/mlfq-sim/sim/trace"
	"github.com/mlfq-sim/mlfq-sim/sim/workload"
)

var (
	// CLI flags for the run command
	configPath    string        // Optional YAML config file
	logLevel      string        // Log verbosity level
	jobsPath      string        // Comma-separated job sizes (seconds)
	timesPath     string        // Comma-separated inter-arrival times (seconds)
	outputPath    string        // Completed-job records, appended
	thresholdFG   time.Duration // Lifetime service before foreground -> background
	thresholdFCFS time.Duration // Lifetime service before background -> FCFS
	quantum       time.Duration // Simulated time per tick
	maxJobs       int           // Bounded prefix of the workload
	progressEvery int           // Completions between progress reports
	speedup       float64       // Simulated seconds per wall-clock second (0 = unpaced)
	traceLevel    string        // Transition trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mlfq-sim",
	Short: "Multi-level feedback queue CPU scheduler simulator",
}

// runOptions is everything the run command needs after flags and the config
// file have been merged.
type runOptions struct {
	Config     sim.Config
	JobsPath   string
	TimesPath  string
	OutputPath string
	Trace      trace.TraceConfig
}

// resolveRunOptions merges defaults, the optional config file, and flags.
// A flag only overrides the file when it was set explicitly.
func resolveRunOptions(flags *pflag.FlagSet) (runOptions, error) {
	opts := runOptions{
		Config:     sim.DefaultConfig(),
		JobsPath:   jobsPath,
		TimesPath:  timesPath,
		OutputPath: outputPath,
		Trace:      trace.TraceConfig{Level: trace.TraceLevel(traceLevel)},
	}

	if configPath != "" {
		fc, err := LoadFileConfig(configPath)
		if err != nil {
			return opts, err
		}
		fc.ApplyTo(&opts.Config)
		if fc.Jobs != "" && !flags.Changed("jobs") {
			opts.JobsPath = fc.Jobs
		}
		if fc.Times != "" && !flags.Changed("times") {
			opts.TimesPath = fc.Times
		}
		if fc.Output != "" && !flags.Changed("output") {
			opts.OutputPath = fc.Output
		}
		if fc.TraceLevel != "" && !flags.Changed("trace-level") {
			opts.Trace.Level = trace.TraceLevel(fc.TraceLevel)
		}
	}

	if configPath == "" || flags.Changed("threshold-fg") {
		opts.Config.ThresholdFG = thresholdFG
	}
	if configPath == "" || flags.Changed("threshold-fcfs") {
		opts.Config.ThresholdFCFS = thresholdFCFS
	}
	if configPath == "" || flags.Changed("quantum") {
		opts.Config.Quantum = quantum
	}
	if configPath == "" || flags.Changed("max-jobs") {
		opts.Config.MaxJobs = maxJobs
	}
	if configPath == "" || flags.Changed("progress-every") {
		opts.Config.ProgressEvery = progressEvery
	}
	if configPath == "" || flags.Changed("speedup") {
		opts.Config.Speedup = speedup
	}

	if !trace.IsValidTraceLevel(string(opts.Trace.Level)) {
		return opts, fmt.Errorf("unknown trace level %q", opts.Trace.Level)
	}
	if err := opts.Config.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduler simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		opts, err := resolveRunOptions(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		// Workload errors abort before any scheduling starts
		src := workload.CSVSource{JobsPath: opts.JobsPath, TimesPath: opts.TimesPath, Limit: opts.Config.MaxJobs}
		arrivals, err := workload.Load(src)
		if err != nil {
			logrus.Fatalf("Unable to load workload: %v", err)
		}
		logrus.Infof("Loaded %d jobs from %s and %s", len(arrivals), opts.JobsPath, opts.TimesPath)

		s, err := sim.NewSimulation(opts.Config, arrivals,
			sim.WithSink(sim.NewFileSink(opts.OutputPath)),
			sim.WithTrace(opts.Trace),
		)
		if err != nil {
			logrus.Fatalf("Unable to create simulation: %v", err)
		}

		metrics, err := s.Run()
		metrics.Print(os.Stdout)
		if s.Trace != nil {
			printTraceSummary(trace.Summarize(s.Trace))
		}
		if err != nil {
			logrus.Fatalf("Simulation finished but results could not be saved: %v", err)
		}
		logrus.Infof("Wrote %d records to %s", metrics.CompletedJobs, opts.OutputPath)
	},
}

func printTraceSummary(summary *trace.TraceSummary) {
	logrus.Infof("Trace: %d demotions (fg->bg=%d, bg->fcfs=%d), %d completions, max turnaround %v",
		summary.TotalTransitions,
		summary.TransitionCounts[trace.TransitionKey(string(sim.TierForeground), string(sim.TierBackground))],
		summary.TransitionCounts[trace.TransitionKey(string(sim.TierBackground), string(sim.TierFCFS))],
		summary.TotalCompletions, summary.MaxTurnaround)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags binds the run command's flags to their package variables,
// resetting each variable to its default.
func registerRunFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "Optional YAML config file; explicitly set flags take precedence")
	fs.StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Workload and output
	fs.StringVar(&jobsPath, "jobs", "jobs.csv", "Comma-separated job sizes in seconds")
	fs.StringVar(&timesPath, "times", "times.csv", "Comma-separated inter-arrival times in seconds")
	fs.StringVar(&outputPath, "output", "output.txt", "File completed-job records are appended to")
	fs.IntVar(&maxJobs, "max-jobs", sim.DefaultMaxJobs, "Simulate only the first N jobs (0 = all)")

	// Scheduler tuning
	fs.DurationVar(&thresholdFG, "threshold-fg", sim.DefaultThresholdFG, "Lifetime service before a foreground job is demoted to background")
	fs.DurationVar(&thresholdFCFS, "threshold-fcfs", sim.DefaultThresholdFCFS, "Lifetime service before a background job is demoted to FCFS")
	fs.DurationVar(&quantum, "quantum", sim.DefaultQuantum, "Simulated time advanced per tick")

	// Pacing and diagnostics
	fs.Float64Var(&speedup, "speedup", sim.DefaultSpeedup, "Simulated seconds per wall-clock second (0 = as fast as possible)")
	fs.IntVar(&progressEvery, "progress-every", sim.DefaultProgressEvery, "Completions between progress reports (0 = off)")
	fs.StringVar(&traceLevel, "trace-level", "none", "Transition trace level (none, transitions)")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd.Flags())
	registerGenerateFlags(generateCmd.Flags())

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
