package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvalign/checker"
	"github.com/katalvlaran/lvalign/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the costs reported in an alignment report",
		Long: `Recompute the cost of every alignment in a report and compare it with the
reported cost. With --solution, also compare each reported cost against a
reference report line by line.

One result line per report line is written to the results file. The first
malformed line ends the check with an "Error:" result line.`,
		Example: `  # Check the default output file
  lvalign check

  # Cross-check against a reference solution
  lvalign check -r mine.txt -s reference.txt --results results.txt`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().StringP("report", "r", "", "report to check (default: "+config.DefaultOutput+")")
	cmd.Flags().StringP("solution", "s", "", "reference report to cross-check against")
	cmd.Flags().String("results", "", "results file (default: "+config.DefaultResults+")")

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	logger := config.GetLogger(ctx)

	model, err := loadModel(ctx, cfg)
	if err != nil {
		return err
	}

	primary, err := os.Open(cfg.Check.Report)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer func() { _ = primary.Close() }()

	var solution io.Reader
	if cfg.Check.Solution != "" {
		f, err := os.Open(cfg.Check.Solution)
		if err != nil {
			return fmt.Errorf("open solution: %w", err)
		}
		defer func() { _ = f.Close() }()
		solution = f
	}

	var results bytes.Buffer
	sum, checkErr := checker.New(model).Check(primary, solution, &results)
	if errors.Is(checkErr, checker.ErrLengthMismatch) {
		return checkErr
	}
	if err := os.WriteFile(cfg.Check.Results, results.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if checkErr != nil {
		return checkErr
	}

	logger.Info("check complete",
		slog.Int("lines", sum.Lines),
		slog.Int("primary_failures", sum.PrimaryFailures),
		slog.Int("solution_mismatches", sum.SolutionMismatches))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Primary file cost-check failures: %d\n", sum.PrimaryFailures)
	if sum.CrossChecked {
		_, _ = fmt.Fprintf(out, "Solution file mismatches (by cost only): %d\n", sum.SolutionMismatches)
	}
	_, _ = fmt.Fprintf(out, "Results written to: %s\n", cfg.Check.Results)

	return nil
}
