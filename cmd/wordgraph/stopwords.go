package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/pkg/wordgraph/export"
)

func newStopwordsCmd(o *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "stopwords <file>",
		Short: "Export the stopword list",
		Long: `Write the stopwords, one per line and sorted. The output can be passed
back with --stopwords.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := o.session(cmd, args[0])
			if err != nil {
				return err
			}

			out, closeOut, err := output(cmd, outPath)
			if err != nil {
				return err
			}
			text := export.StopwordText(s.StopwordList())
			if text != "" && (outPath == "" || outPath == "-") {
				text += "\n"
			}
			if _, err := io.WriteString(out, text); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout if empty)")
	return cmd
}
