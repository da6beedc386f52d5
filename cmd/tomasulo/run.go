package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Lahhamix/tumasulo-simulator/internal/config"
	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
	"github.com/Lahhamix/tumasulo-simulator/internal/trace"
)

var (
	runTracePath  string
	runConfigPath string
	runStep       bool
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVar(&runTracePath, "trace", "", "trace file to load (required)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "optional YAML config overriding the default pool sizes/latencies")
	runCmd.Flags().BoolVar(&runStep, "step", false, "advance one cycle at a time, pausing for Enter between cycles")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "print full per-cycle state in --step mode")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a trace to completion, or step through it",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if runTracePath == "" {
		return errors.New("--trace is required")
	}

	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	instructions, parseErrs, err := trace.ParseFile(runTracePath, logger)
	if err != nil {
		return errors.Wrapf(err, "loading trace %s", runTracePath)
	}
	for _, pe := range parseErrs {
		fmt.Fprintln(os.Stderr, pe.Error())
	}

	sched := tomasulo.New(cfg, logger)
	sched.Load(instructions)

	if runStep {
		return runStepped(sched)
	}

	report, err := sched.Run()
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func runStepped(sched *tomasulo.Scheduler) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		cont, snap, err := sched.RunStep()
		if err != nil {
			return err
		}
		printSnapshot(snap, runVerbose)
		if !cont {
			break
		}
		fmt.Print("Press Enter to continue...")
		_, _ = reader.ReadString('\n')
	}
	printReport(sched.Metrics.Report())
	return nil
}
