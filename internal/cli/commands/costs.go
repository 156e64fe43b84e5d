package commands

import (
	"github.com/katalvlaran/lvalign/costmodel"
	"github.com/katalvlaran/lvalign/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewCostsCommand creates the costs command.
func NewCostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Print a uniform cost matrix",
		Long: `Print a cost-matrix file over the given alphabet plus the gap symbol, with
one cost for matches, one for mismatches and one for any pairing with a gap.`,
		Example: `  # Unit edit distance over DNA
  lvalign costs --alphabet AGTC > imp2cost.txt

  # Penalise gaps more than substitutions
  lvalign costs --alphabet AGTC --mismatch 1 --indel 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alphabet, _ := cmd.Flags().GetString("alphabet")
			match, _ := cmd.Flags().GetInt("match")
			mismatch, _ := cmd.Flags().GetInt("mismatch")
			indel, _ := cmd.Flags().GetInt("indel")

			_, err := costmodel.Uniform(alphabet, match, mismatch, indel).WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().String("alphabet", config.DefaultAlphabet, "matrix symbols, excluding the gap")
	cmd.Flags().Int("match", 0, "cost of aligning a symbol with itself")
	cmd.Flags().Int("mismatch", 1, "cost of aligning two different symbols")
	cmd.Flags().Int("indel", 1, "cost of aligning a symbol with a gap")
	_ = cmd.Flags().SetAnnotation("alphabet", config.LocalOnly, []string{"true"})

	return cmd
}
