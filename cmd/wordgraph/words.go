package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/pkg/wordgraph/freq"
)

type wordsReport struct {
	Summary     freq.Summary     `json:"summary"`
	Words       []freq.WordCount `json:"words"`
	Stopwords   []freq.WordCount `json:"stopwords"`
	Punctuation []string         `json:"punctuation,omitempty"`
}

func newWordsCmd(o *rootOptions) *cobra.Command {
	var (
		top         int
		punctuation bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Show word frequencies",
		Long:  `Print headline counts, the frequency list of content words and the stopword list.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := o.session(cmd, args[0])
			if err != nil {
				return err
			}

			report := wordsReport{
				Summary:   s.Summary(),
				Words:     s.VisibleWords(),
				Stopwords: s.StopwordList(),
			}
			if top > 0 && len(report.Words) > top {
				report.Words = report.Words[:top]
			}
			if punctuation {
				report.Punctuation = s.Punctuation()
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "Total words:  %d\n", report.Summary.TotalWords)
			fmt.Fprintf(out, "Unique words: %d\n", report.Summary.UniqueWords)
			fmt.Fprintf(out, "Hidden words: %d\n", report.Summary.HiddenWords)

			fmt.Fprintf(out, "\nWords (%d):\n", len(report.Words))
			for _, wc := range report.Words {
				fmt.Fprintf(out, "  %6d  %s\n", wc.Count, wc.Word)
			}

			fmt.Fprintf(out, "\nStopwords (%d):\n", len(report.Stopwords))
			for _, wc := range report.Stopwords {
				fmt.Fprintf(out, "  %6d  %s\n", wc.Count, wc.Word)
			}

			if punctuation {
				fmt.Fprintf(out, "\nPunctuation: %s\n", strings.Join(report.Punctuation, " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Show only the N most frequent words (0 = all)")
	cmd.Flags().BoolVar(&punctuation, "punctuation", false, "List the punctuation glyphs found in the text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}
