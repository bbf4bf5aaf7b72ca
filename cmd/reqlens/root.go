package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/filter"
	"github.com/reqlens/reqlens/internal/parser"
	"github.com/reqlens/reqlens/internal/sink"
	"github.com/reqlens/reqlens/internal/source"
	"github.com/reqlens/reqlens/internal/stats"
	"github.com/reqlens/reqlens/internal/tui"
)

var (
	output     string
	outPath    string
	levelFlag  string
	keyword    string
	requestID  string
	envFlag    string
	errorsOnly bool
	useTUI     bool
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "reqlens [logfile]",
		Short: "reqlens parses application logs and correlates entries by request",
		Long: `reqlens converts raw application log text into discrete entries,
groups them by request correlation id, and derives per-request metadata
(HTTP method/URL, response status, duration, error flags). Results can be
browsed interactively or emitted as text, JSON, or a report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
)

func init() {
	cobra.OnInitialize()

	rootCmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, report, html")
	rootCmd.Flags().StringVar(&outPath, "out", "", "write output to a file instead of stdout")
	rootCmd.Flags().StringVarP(&levelFlag, "level", "l", "", "only entries at this level (error, warn, info, debug)")
	rootCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "only entries containing this substring")
	rootCmd.Flags().StringVarP(&requestID, "request", "r", "", "only entries for this request id")
	rootCmd.Flags().StringVar(&envFlag, "env", "", "only entries for this environment")
	rootCmd.Flags().BoolVarP(&errorsOnly, "errors-only", "e", false, "only error entries (declared or status >= 400)")
	rootCmd.Flags().BoolVarP(&useTUI, "tui", "t", false, "browse results interactively")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors in text output")
}

func run(args []string) error {
	var src source.Source
	if len(args) == 1 {
		src = source.NewFileSource(args[0])
	} else {
		src = source.NewStdinSource()
	}

	raw, err := src.Read()
	if err != nil {
		return err
	}

	entries := parser.Parse(raw)
	entries = filter.Apply(entries, buildChain())

	result := &sink.Result{
		Source:  src.Name(),
		Entries: entries,
		Groups:  correlate.Correlate(entries),
		Stats:   stats.Aggregate(entries),
	}

	if useTUI {
		return tui.Run(result)
	}

	out, err := buildSink()
	if err != nil {
		return err
	}
	return emit(out, result)
}

// emit writes the result and always closes the sink, so a failed write
// does not leak an open file handle.
func emit(out sink.Sink, r *sink.Result) error {
	if err := out.Write(r); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s output: %w", out.Name(), err)
	}
	return out.Close()
}

// buildChain translates filter flags into a presentation-layer chain.
// Filtering happens before correlation so groups reflect the visible set.
func buildChain() *filter.Chain {
	chain := filter.NewChain(filter.MatchAll)
	if levelFlag != "" {
		chain.Add(filter.NewLevelFilter(entry.ParseLevel(levelFlag)))
	}
	if keyword != "" {
		chain.Add(filter.NewKeywordFilter(keyword))
	}
	if requestID != "" {
		chain.Add(filter.NewRequestFilter(requestID))
	}
	if envFlag != "" {
		chain.Add(filter.NewEnvironmentFilter(envFlag))
	}
	if errorsOnly {
		chain.Add(filter.NewErrorsOnlyFilter())
	}
	return chain
}

func buildSink() (sink.Sink, error) {
	if outPath != "" {
		return sink.NewFileSink(outPath, output)
	}
	switch output {
	case "json":
		return sink.NewJSONSink(os.Stdout), nil
	case "report":
		return sink.NewReportSink(os.Stdout), nil
	case "html":
		return sink.NewHTMLSink(os.Stdout), nil
	default:
		return sink.NewTerminalSink(os.Stdout, !noColor), nil
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
