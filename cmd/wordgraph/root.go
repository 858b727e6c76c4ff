package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/internal/textload"
	"github.com/cognicore/wordgraph/pkg/wordgraph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	logLevel     string
	stoplistPath string
	languages    []string
	stops        []string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "Word frequencies and co-occurrence graphs from text",
		Long: `wordgraph tokenizes a text, hides stopwords and derives a frequency list
and a weighted co-occurrence graph from the remaining content words.

Input files may be plain text, HTML (.html, .htm) or JSONL news dumps
(.jsonl); use - to read stdin.

Examples:
  wordgraph words story.txt --lang en
  wordgraph graph story.txt --window 3 --weighting distance --format json
  wordgraph clean story.txt --mode download --stop the --stop a`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q", o.logLevel)
			}
			o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&o.configPath, "config", "", "YAML configuration file")
	pflags.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pflags.StringVar(&o.stoplistPath, "stopwords", "", "Stopword list file (YAML terms or one word per line)")
	pflags.StringSliceVar(&o.languages, "lang", nil, "Bundled stopword list to load (de, en); repeatable")
	pflags.StringSliceVar(&o.stops, "stop", nil, "Extra stopword; repeatable")

	cmd.AddCommand(
		newWordsCmd(o),
		newGraphCmd(o),
		newCleanCmd(o),
		newSuggestCmd(o),
		newStopwordsCmd(o),
		newWatchCmd(o),
	)
	return cmd
}

// load reads the configuration and returns its components.
func (o *rootOptions) load() (*config.Components, error) {
	loader := &config.Loader{
		ConfigPath:   o.configPath,
		StoplistPath: o.stoplistPath,
		Languages:    o.languages,
		Terms:        o.stops,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("configuration loaded",
		"config", o.configPath,
		"stopwords", comp.Stopwords.Len(),
		"ngram", comp.Graph.String(),
	)
	return comp, nil
}

// session loads the configuration and the input at path into a new Session.
func (o *rootOptions) session(cmd *cobra.Command, path string) (*wordgraph.Session, *config.Components, error) {
	comp, err := o.load()
	if err != nil {
		return nil, nil, err
	}

	text, err := readInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Info("input loaded", "path", path, "bytes", len(text), "format", textload.DetectFormat(path))

	s := wordgraph.New(wordgraph.Options{
		Stopwords: comp.Stopwords,
		NGram:     &comp.Graph,
		Display:   &comp.Display,
		CacheSize: comp.CacheSize,
	})
	s.SetText(text)
	return s, comp, nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		return textload.Read(cmd.InOrStdin(), path)
	}
	return textload.Load(path)
}

// output returns the destination for command output: the file at path or
// the command's stdout. The returned close func is always non-nil.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}
