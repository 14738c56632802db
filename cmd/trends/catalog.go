package main

import (
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/CTAG07/landingkit/pkg/keywords"
	"github.com/spf13/cobra"
)

// openCatalog opens the SQLite keyword catalog at path. Read-only handles
// never create the file.
func openCatalog(path string, readOnly bool) (*sql.DB, error) {
	dsn := path
	if readOnly {
		dsn = "file:" + path + "?mode=ro"
	}
	db, err := sql.Open(sqliteDriver, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newCatalogCmd(opts *cliOptions) *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite keyword catalog",
	}

	catalog.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write the built-in keyword pools to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalogSeed(cmd, opts)
		},
	})
	catalog.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every term in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalogList(cmd, opts)
		},
	})
	return catalog
}

func catalogPath(config *Config) (string, error) {
	if config.Run.CatalogPath == "" {
		return "", fmt.Errorf("no catalog configured: pass --catalog or set run_config.catalog_path")
	}
	return config.Run.CatalogPath, nil
}

func runCatalogSeed(cmd *cobra.Command, opts *cliOptions) error {
	config, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	path, err := catalogPath(config)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), config.Run.LogLevel)

	db, err := openCatalog(path, false)
	if err != nil {
		return fmt.Errorf("failed to open keyword catalog: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err = keywords.SetupSchema(db); err != nil {
		return fmt.Errorf("failed to setup catalog schema: %w", err)
	}
	store, err := keywords.NewStore(db, logger)
	if err != nil {
		return fmt.Errorf("failed to prepare keyword catalog: %w", err)
	}
	defer store.Close()

	if err = store.Replace(cmd.Context(), keywords.Default()); err != nil {
		return fmt.Errorf("failed to seed keyword catalog: %w", err)
	}
	counts, err := store.Counts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count catalog terms: %w", err)
	}
	logger.Info("Seeded keyword catalog", "path", path,
		"jobs", counts[keywords.CategoryJobs],
		"education", counts[keywords.CategoryEducation],
		"misc", counts[keywords.CategoryMisc])
	return nil
}

func runCatalogList(cmd *cobra.Command, opts *cliOptions) error {
	config, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if _, err = catalogPath(config); err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), config.Run.LogLevel)

	pools, err := loadPools(cmd.Context(), logger, config.Run)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tTERM")
	for _, c := range keywords.Categories {
		for _, term := range pools.Get(c) {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", c, term)
		}
	}
	return w.Flush()
}
