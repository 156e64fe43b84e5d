package commands

import (
	"github.com/katalvlaran/lvalign/experiment"
	"github.com/katalvlaran/lvalign/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewBenchCommand creates the bench command.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure alignment runtime against sequence length",
		Long: `Align random, equal-length sequences over an alphabet for each configured
length, report the average, minimum and maximum wall time per length, and
fit the growth exponent on a log-log scale.`,
		Example: `  # Default lengths 500..5000, 10 trials each
  lvalign bench --costs matrix.csv

  # Quick run on four workers
  lvalign bench --lengths 50,100,200 --trials 3 --workers 4`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}

	cmd.Flags().IntSlice("lengths", nil, "sequence lengths to measure")
	cmd.Flags().Int("trials", 0, "alignments per length")
	cmd.Flags().Int64("seed", 0, "random seed")
	cmd.Flags().Int("workers", 0, "concurrent alignments")
	cmd.Flags().String("alphabet", "", "symbols sampled for random sequences (default: "+config.DefaultAlphabet+")")

	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	model, err := loadModel(ctx, cfg)
	if err != nil {
		return err
	}

	rep, err := experiment.Run(ctx, model,
		experiment.WithLengths(cfg.Bench.Lengths...),
		experiment.WithTrials(cfg.Bench.Trials),
		experiment.WithAlphabet(cfg.Bench.Alphabet),
		experiment.WithSeed(cfg.Bench.Seed),
		experiment.WithWorkers(cfg.Bench.Workers),
		experiment.WithLogger(config.GetLogger(ctx)),
	)
	if err != nil {
		return err
	}
	rep.Render(cmd.OutOrStdout())

	return nil
}
