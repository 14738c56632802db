package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/CTAG07/landingkit/pkg/keywords"
	"github.com/CTAG07/landingkit/pkg/templating"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// cliOptions holds the persistent flags shared by every command.
type cliOptions struct {
	configPath string
	document   string
	catalog    string
	seed       uint64
	logLevel   string
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "trends [document]",
		Short: "Refresh the dynamic regions of a landing page",
		Long: `trends rewrites the marked regions of an HTML landing page in place:
SEO keywords, the trending ticker, market momentum stats and the current date.
Content between the markers is replaced; everything else is left untouched.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				// A positional document behaves like --document.
				if err := cmd.Flags().Set("document", args[0]); err != nil {
					return err
				}
			}
			return runTemplater(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVarP(&opts.document, "document", "d", "", "HTML document to rewrite (default index.html)")
	flags.StringVar(&opts.catalog, "catalog", "", "SQLite keyword catalog; built-in pools when empty")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible runs (0 picks a random seed)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the rewritten document instead of writing it")

	root.AddCommand(newCatalogCmd(opts), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "trends %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}

// resolveConfig loads the config file and lets explicitly set flags
// override it.
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (*Config, error) {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("document") {
		config.Run.DocumentPath = opts.document
	}
	if flags.Changed("catalog") {
		config.Run.CatalogPath = opts.catalog
	}
	if flags.Changed("seed") {
		config.Run.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		config.Run.LogLevel = opts.logLevel
	}
	return config, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

// loadPools returns the catalog pools when a catalog is configured and the
// built-in pools otherwise.
func loadPools(ctx context.Context, logger *slog.Logger, run *RunConfig) (keywords.Pools, error) {
	if run.CatalogPath == "" {
		return keywords.Default(), nil
	}

	db, err := openCatalog(run.CatalogPath, true)
	if err != nil {
		return keywords.Pools{}, fmt.Errorf("failed to open keyword catalog: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	store, err := keywords.NewStore(db, logger)
	if err != nil {
		return keywords.Pools{}, fmt.Errorf("failed to prepare keyword catalog: %w", err)
	}
	defer store.Close()

	pools, err := store.Load(ctx)
	if err != nil {
		return keywords.Pools{}, fmt.Errorf("failed to load keyword catalog: %w", err)
	}
	logger.Debug("Loaded keyword catalog", "path", run.CatalogPath,
		"jobs", len(pools.Jobs), "education", len(pools.Education), "misc", len(pools.Misc))
	return pools, nil
}

func runTemplater(cmd *cobra.Command, opts *cliOptions) error {
	config, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), config.Run.LogLevel)
	ctx := cmd.Context()

	pools, err := loadPools(ctx, logger, config.Run)
	if err != nil {
		return err
	}

	var tmOpts []templating.Option
	if config.Run.Seed != 0 {
		tmOpts = append(tmOpts, templating.WithRand(rand.New(rand.NewPCG(config.Run.Seed, config.Run.Seed))))
	}
	tm, err := templating.NewTemplater(logger, config.Templates, pools, tmOpts...)
	if err != nil {
		return fmt.Errorf("failed to create templater: %w", err)
	}

	path := config.Run.DocumentPath
	if opts.dryRun {
		doc, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		out, report := tm.Apply(string(doc))
		logger.Info("Dry run finished", "updated", len(report.Updated), "skipped", len(report.Skipped))
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	report, err := tm.Run(ctx, path)
	if err != nil {
		return err
	}
	if len(report.Skipped) > 0 {
		logger.Warn("Some regions were not found", "regions", report.Skipped)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("trends failed", "error", err)
		stop()
		os.Exit(1)
	}
}
