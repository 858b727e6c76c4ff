package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/pkg/wordgraph/stoplist"
)

func newSuggestCmd(o *rootOptions) *cobra.Command {
	var (
		limit int
		th    = stoplist.DefaultThresholds()
	)

	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Suggest further stopwords",
		Long: `Suggest words that are frequent but carry little association with their
neighbours, or that co-occur with a large part of the vocabulary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := o.session(cmd, args[0])
			if err != nil {
				return err
			}

			cands := s.SuggestStopwords(th)
			o.logger.Info("suggestions computed", "candidates", len(cands))
			if limit > 0 && len(cands) > limit {
				cands = cands[:limit]
			}

			out := cmd.OutOrStdout()
			if len(cands) == 0 {
				fmt.Fprintln(out, "No suggestions.")
				return nil
			}
			fmt.Fprintf(out, "%-20s %6s %7s %6s %6s\n", "WORD", "SCORE", "SHARE%", "NPMI", "SPREAD")
			for _, c := range cands {
				fmt.Fprintf(out, "%-20s %6.3f %7.2f %6.3f %6.3f\n",
					c.Token, c.Score, c.Reason.Share, c.Reason.AssocMax, c.Reason.Coverage)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of suggestions (0 = all)")
	cmd.Flags().Float64Var(&th.SharePercent, "min-share", th.SharePercent, "Minimum share of content words, in percent")
	cmd.Flags().Float64Var(&th.AssocMax, "max-assoc", th.AssocMax, "Association at or below which a word counts as unspecific")
	cmd.Flags().Float64Var(&th.Spread, "min-spread", th.Spread, "Fraction of the vocabulary a word must touch to count as spread")
	cmd.Flags().IntVar(&th.MinCount, "min-count", th.MinCount, "Minimum occurrences")
	return cmd
}
