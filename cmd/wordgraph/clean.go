package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/pkg/wordgraph/reconstruct"
)

func newCleanCmd(o *rootOptions) *cobra.Command {
	var (
		mode        string
		placeholder string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Write the text with stopwords masked or removed",
		Long: `Reconstruct the text from its tokens.

Modes:
  display   - stopwords replaced by placeholder glyphs, layout unchanged
  download  - stopwords removed and the gaps they leave collapsed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, comp, err := o.session(cmd, args[0])
			if err != nil {
				return err
			}

			var text string
			switch mode {
			case "display":
				p := comp.Placeholder
				if cmd.Flags().Changed("placeholder") {
					if p, err = reconstruct.ParsePlaceholder(placeholder); err != nil {
						return err
					}
				}
				text = s.CleanedText(p)
			case "download":
				text = s.DownloadText()
			default:
				return fmt.Errorf("unknown mode %q (want display or download)", mode)
			}

			out, closeOut, err := output(cmd, outPath)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(out, text); err != nil {
				closeOut()
				return err
			}
			o.logger.Info("text written", "mode", mode, "bytes", len(text))
			return closeOut()
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "display", "Reconstruction mode: display or download")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "Placeholder style (underscore, dot, dash, hidden) or a single glyph")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout if empty)")
	return cmd
}
