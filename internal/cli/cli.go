package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"pobsd/internal/catalog"
	"pobsd/internal/config"
	"pobsd/internal/logging"
	"pobsd/internal/parser"
	"pobsd/internal/query"
	"pobsd/internal/textutil"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	cfg := config.Load()

	ctx, cancel := setupContext()
	defer cancel()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every command.
type options struct {
	dbPath   string
	mode     string
	logLevel string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "pobsd",
		Short:        "Query the PlayOnBSD games database",
		Long:         "Parses the PlayOnBSD flat-file games database and lists, shows, or exports its entries.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.Options{
				Level:      opts.logLevel,
				File:       cfg.LogFile,
				MaxSizeMB:  cfg.LogMaxSizeMB,
				MaxBackups: cfg.LogMaxBackups,
				Compress:   cfg.LogCompression,
			})
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", cfg.DatabasePath, "Path to the games database file")
	flags.StringVar(&opts.mode, "mode", cfg.ParseMode.String(), "Parsing mode: strict or relaxed")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(parseCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(showCmd(opts))
	rootCmd.AddCommand(facetsCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))

	return rootCmd
}

func parseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse the database and report malformed lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failOnError, _ := cmd.Flags().GetBool("fail-on-error")
			return runParse(cmd.Context(), opts, cmd.OutOrStdout(), failOnError)
		},
	}

	cmd.Flags().Bool("fail-on-error", false, "Exit with an error when any line is malformed")

	return cmd
}

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var filters listFilters
			filters.name, _ = f.GetString("name")
			filters.tag, _ = f.GetString("tag")
			filters.genre, _ = f.GetString("genre")
			filters.year, _ = f.GetString("year")
			filters.engine, _ = f.GetString("engine")
			filters.status, _ = f.GetString("status")
			return runList(cmd.Context(), opts, cmd.OutOrStdout(), filters)
		},
	}

	cmd.Flags().String("name", "", "Only games whose name contains this text")
	cmd.Flags().String("tag", "", "Only games with this tag")
	cmd.Flags().String("genre", "", "Only games with this genre")
	cmd.Flags().String("year", "", "Only games released this year")
	cmd.Flags().String("engine", "", "Only games using this engine")
	cmd.Flags().String("status", "", "Only games with this status")

	return cmd
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q: %w", args[0], err)
			}
			return runShow(cmd.Context(), opts, cmd.OutOrStdout(), id)
		},
	}
}

func facetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "facets <tags|genres>",
		Short:     "List distinct tags or genres with their game counts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"tags", "genres"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacets(cmd.Context(), opts, cmd.OutOrStdout(), args[0])
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// loadDatabase parses the configured database file.
func loadDatabase(ctx context.Context, opts *options) (parser.Result, error) {
	if err := ctx.Err(); err != nil {
		return parser.Result{}, err
	}

	mode, err := parser.ParseMode(opts.mode)
	if err != nil {
		return parser.Result{}, err
	}

	res, err := parser.New(mode).ConsumeFile(opts.dbPath)
	if err != nil {
		return parser.Result{}, fmt.Errorf("load database: %w", err)
	}

	log.Info().
		Str("path", opts.dbPath).
		Str("mode", mode.String()).
		Int("games", len(res.Games)).
		Int("error_runs", len(res.ErrorLines)).
		Msg("Loaded database")

	return res, ctx.Err()
}

// runParse handles the `parse` command.
func runParse(ctx context.Context, opts *options, w io.Writer, failOnError bool) error {
	res, err := loadDatabase(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "games: %d\n", len(res.Games))
	if !res.HasErrors() {
		fmt.Fprintln(w, "errors: none")
		return nil
	}

	fmt.Fprintf(w, "errors at lines: %s\n", joinInts(res.ErrorLines))
	if failOnError {
		return fmt.Errorf("%d malformed line run(s) in %s", len(res.ErrorLines), opts.dbPath)
	}
	return nil
}

type listFilters struct {
	name, tag, genre, year, engine, status string
}

// runList handles the `list` command.
func runList(ctx context.Context, opts *options, w io.Writer, filters listFilters) error {
	res, err := loadDatabase(ctx, opts)
	if err != nil {
		return err
	}
	c := catalog.New(res.Games)

	lookups := []struct {
		value  string
		lookup func(string) query.Result[catalog.Entry]
	}{
		{filters.name, c.GamesByName},
		{filters.tag, c.GamesByTag},
		{filters.genre, c.GamesByGenre},
		{filters.year, c.GamesByYear},
		{filters.engine, c.GamesByEngine},
		{filters.status, c.GamesByStatus},
	}

	selected := c.All()
	for _, l := range lookups {
		if l.value == "" {
			continue
		}
		selected = intersect(selected, l.lookup(l.value))
	}

	for _, e := range selected.Items {
		year := e.Year
		if year == "" {
			year = "?"
		}
		fmt.Fprintf(w, "%5d  %s (%s)\n", e.ID, textutil.Truncate(e.Name, 60), year)
	}
	fmt.Fprintf(w, "%d games\n", selected.Count)
	return nil
}

// intersect keeps the entries of a that also appear in b, preserving a's order.
func intersect(a, b query.Result[catalog.Entry]) query.Result[catalog.Entry] {
	ids := make(map[int]struct{}, b.Count)
	for _, e := range b.Items {
		ids[e.ID] = struct{}{}
	}

	var kept []catalog.Entry
	for _, e := range a.Items {
		if _, ok := ids[e.ID]; ok {
			kept = append(kept, e)
		}
	}
	return query.Result[catalog.Entry]{Count: len(kept), Items: kept}
}

// runShow handles the `show` command.
func runShow(ctx context.Context, opts *options, w io.Writer, id int) error {
	res, err := loadDatabase(ctx, opts)
	if err != nil {
		return err
	}

	e, ok := catalog.New(res.Games).GameByID(id)
	if !ok {
		return fmt.Errorf("no game with id %d", id)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Name", e.Name},
		{"Cover", e.Cover},
		{"Engine", e.Engine},
		{"Setup", e.Setup},
		{"Runtime", e.Runtime},
		{"Stores", strings.Join(e.Stores, " ")},
		{"Hints", strings.Join(e.Hints, ", ")},
		{"Genres", strings.Join(e.Genres, ", ")},
		{"Tags", strings.Join(e.Tags, ", ")},
		{"Year", e.Year},
		{"Developer", e.Dev},
		{"Publisher", e.Publisher},
		{"Version", e.Version},
		{"Status", e.Status},
		{"Added", e.Added},
		{"Updated", e.Updated},
	}

	fmt.Fprintf(w, "%-10s %d\n", "ID", e.ID)
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(w, "%-10s %s\n", r.label, r.value)
	}
	return nil
}

// runFacets handles the `facets` command.
func runFacets(ctx context.Context, opts *options, w io.Writer, kind string) error {
	res, err := loadDatabase(ctx, opts)
	if err != nil {
		return err
	}
	c := catalog.New(res.Games)

	var facets []catalog.Facet
	switch kind {
	case "tags":
		facets = c.Tags()
	case "genres":
		facets = c.Genres()
	default:
		return fmt.Errorf("unknown facet %q", kind)
	}

	for _, f := range facets {
		fmt.Fprintf(w, "%5d  %s\n", f.Count, f.Value)
	}
	return nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
