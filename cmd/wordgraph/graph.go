package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cognicore/wordgraph/pkg/wordgraph/config"
	"github.com/cognicore/wordgraph/pkg/wordgraph/export"
	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

// graphFlags are the construction and display overrides of the graph
// command. Only flags set on the command line override the configuration.
type graphFlags struct {
	window           int
	weighting        string
	value            float64
	base             float64
	bonusRange       int
	bonus            float64
	boundaries       string
	minEdgeWeight    float64
	minNodeFrequency int
}

func (f *graphFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.window, "window", 5, "Window size in content words (>= 2)")
	fs.StringVar(&f.weighting, "weighting", config.WeightingTypeUniform, "Weighting: uniform or distance")
	fs.Float64Var(&f.value, "value", 1, "Uniform weight per co-occurrence")
	fs.Float64Var(&f.base, "base", 1, "Distance weighting: base weight")
	fs.IntVar(&f.bonusRange, "bonus-range", 2, "Distance weighting: max distance that earns the bonus")
	fs.Float64Var(&f.bonus, "bonus", 1, "Distance weighting: bonus weight")
	fs.StringVar(&f.boundaries, "boundaries", ".?!", "Sentence boundary glyphs; each character resets the window")
	fs.Float64Var(&f.minEdgeWeight, "min-edge-weight", 1, "Hide edges lighter than this")
	fs.IntVar(&f.minNodeFrequency, "min-node-frequency", 1, "Hide words rarer than this")
}

// apply overrides cfg and display with every flag set on fs.
func (f *graphFlags) apply(fs *pflag.FlagSet, cfg graph.Config, display graph.DisplayConfig) (graph.Config, graph.DisplayConfig, error) {
	if fs.Changed("window") {
		cfg.WindowSize = f.window
	}
	if fs.Changed("boundaries") {
		cfg.SentenceBoundaries = splitGlyphs(f.boundaries)
	}

	if fs.Changed("weighting") {
		switch strings.ToLower(f.weighting) {
		case config.WeightingTypeUniform:
			if _, ok := cfg.Weighting.(graph.Uniform); !ok {
				cfg.Weighting = graph.Uniform{Value: 1}
			}
		case config.WeightingTypeDistance:
			if _, ok := cfg.Weighting.(graph.Distance); !ok {
				d := config.DefaultDistance()
				cfg.Weighting = graph.Distance{BaseValue: d.BaseValue, BonusRange: d.BonusRange, BonusValue: d.BonusValue}
			}
		default:
			return cfg, display, fmt.Errorf("unknown weighting %q: %w", f.weighting, internalerr.ErrInvalidConfig)
		}
	}

	switch w := cfg.Weighting.(type) {
	case graph.Uniform:
		if fs.Changed("value") {
			w.Value = f.value
		}
		if fs.Changed("base") || fs.Changed("bonus-range") || fs.Changed("bonus") {
			return cfg, display, errors.New("--base, --bonus-range and --bonus need --weighting distance")
		}
		cfg.Weighting = w
	case graph.Distance:
		if fs.Changed("base") {
			w.BaseValue = f.base
		}
		if fs.Changed("bonus-range") {
			w.BonusRange = f.bonusRange
		}
		if fs.Changed("bonus") {
			w.BonusValue = f.bonus
		}
		if fs.Changed("value") {
			return cfg, display, errors.New("--value needs --weighting uniform")
		}
		cfg.Weighting = w
	}

	if fs.Changed("min-edge-weight") {
		display.MinEdgeWeight = f.minEdgeWeight
	}
	if fs.Changed("min-node-frequency") {
		display.MinNodeFrequency = f.minNodeFrequency
	}
	return cfg, display, nil
}

func splitGlyphs(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func newGraphCmd(o *rootOptions) *cobra.Command {
	var (
		flags      graphFlags
		format     string
		outPath    string
		components bool
		top        int
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Build a co-occurrence graph",
		Long: `Build the co-occurrence graph of the content words and print its
statistics, or export the display graph as JSON or into a SQLite file.

Formats:
  stats   - node/edge counts, maxima and average edge weight
  json    - the graph as pretty-printed JSON
  sqlite  - append the graph to the SQLite file given by --out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := o.session(cmd, args[0])
			if err != nil {
				return err
			}

			cfg, display, err := flags.apply(cmd.Flags(), s.NGramConfig(), s.Display())
			if err != nil {
				return err
			}
			if err := s.SetNGramConfig(cfg); err != nil {
				return err
			}
			s.SetDisplay(display)

			full := s.BuildGraph()
			g := s.DisplayGraph()
			o.logger.Info("graph built",
				"ngram", cfg.String(),
				"nodes", len(full.Nodes),
				"edges", len(full.Edges),
				"display_nodes", len(g.Nodes),
				"display_edges", len(g.Edges),
			)

			switch format {
			case "stats":
				out, closeOut, err := output(cmd, outPath)
				if err != nil {
					return err
				}
				defer closeOut()
				printStats(out, s.GraphStats())
				if top > 0 {
					printStrength(out, graph.Strength(g), top)
				}
				if components {
					printComponents(out, graph.Components(g))
				}
				return nil

			case "json":
				out, closeOut, err := output(cmd, outPath)
				if err != nil {
					return err
				}
				if err := export.WriteJSON(out, g); err != nil {
					closeOut()
					return err
				}
				return closeOut()

			case "sqlite":
				if outPath == "" || outPath == "-" {
					return errors.New("--format sqlite needs --out <file>")
				}
				w, err := export.OpenSQLite(cmd.Context(), outPath)
				if err != nil {
					return err
				}
				defer w.Close()

				id, err := w.WriteGraph(cmd.Context(), g, export.Meta{
					Source:    args[0],
					Config:    cfg.String(),
					Stopwords: s.Stopwords().Len(),
				})
				if err != nil {
					return err
				}
				o.logger.Info("graph exported", "path", outPath, "id", id)
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil

			default:
				return fmt.Errorf("unknown format %q: %w", format, internalerr.ErrInvalidInput)
			}
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "stats", "Output format: stats, json, sqlite")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&components, "components", false, "List connected components")
	cmd.Flags().IntVar(&top, "top", 0, "List the N words with the highest weighted degree")
	return cmd
}

func printStats(w io.Writer, st graph.Stats) {
	fmt.Fprintf(w, "Nodes:              %d\n", st.NodeCount)
	fmt.Fprintf(w, "Edges:              %d\n", st.EdgeCount)
	fmt.Fprintf(w, "Max node frequency: %d\n", st.MaxNodeFrequency)
	fmt.Fprintf(w, "Max edge weight:    %g\n", st.MaxEdgeWeight)
	fmt.Fprintf(w, "Avg edge weight:    %.2f\n", st.AvgEdgeWeight)
}

func printStrength(w io.Writer, scores []graph.NodeScore, top int) {
	if len(scores) > top {
		scores = scores[:top]
	}
	fmt.Fprintf(w, "\nStrongest words:\n")
	for _, ns := range scores {
		fmt.Fprintf(w, "  %8.2f  %3d  %s\n", ns.Score, ns.Degree, ns.Word)
	}
}

func printComponents(w io.Writer, comps [][]string) {
	fmt.Fprintf(w, "\nComponents (%d):\n", len(comps))
	for i, comp := range comps {
		fmt.Fprintf(w, "  %d. [%d] %s\n", i+1, len(comp), strings.Join(comp, " "))
	}
}
