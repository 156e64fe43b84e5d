package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvalign/alignio"
	"github.com/katalvlaran/lvalign/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewAlignCommand creates the align command.
func NewAlignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align every sequence pair of an input file",
		Long: `Compute a minimum-cost global alignment for each "seq1, seq2" line of the
input file and write "aligned1,aligned2:cost" lines to the output file.

Processing stops at the first malformed line or un-costed symbol.`,
		Example: `  # Use the default file names
  lvalign align

  # Explicit files
  lvalign align --costs matrix.csv -i pairs.txt -o aligned.txt`,
		Args: cobra.NoArgs,
		RunE: runAlign,
	}

	cmd.Flags().StringP("input", "i", "", "alignment input file (default: "+config.DefaultInput+")")
	cmd.Flags().StringP("output", "o", "", "alignment output file (default: "+config.DefaultOutput+")")

	return cmd
}

func runAlign(cmd *cobra.Command, _ []string) error {
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

	in, err := os.Open(cfg.Align.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	pairs, err := alignio.ReadPairs(in)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Align.Input, err)
	}

	out, err := os.Create(cfg.Align.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := alignio.NewWriter(out)
	n, alignErr := alignio.AlignAll(model, pairs, w)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if alignErr != nil {
		return fmt.Errorf("%s: %w", cfg.Align.Input, alignErr)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info("alignment complete",
		slog.Int("pairs", n),
		slog.String("input", cfg.Align.Input),
		slog.String("output", cfg.Align.Output))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d alignments to %s\n", n, cfg.Align.Output)

	return nil
}
