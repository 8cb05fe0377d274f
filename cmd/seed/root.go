package main

import (
	"database/sql"
	"fmt"
	"os"

	"puz_shelf/internal/app"
	"puz_shelf/internal/db"
	"puz_shelf/sql/schema"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

type seedOptions struct {
	dbPath  string
	pattern string
}

// NewRootCmd creates the root command for seed.
func NewRootCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import every .puz file matching a glob",
		Long: `seed runs the migrations on a sqlite database and imports every file
matching --glob. Files imported before are reported and skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", "puzshelf.db", "sqlite database path")
	cmd.Flags().StringVarP(&opts.pattern, "glob", "g", "internal/app/testdata/**/*.puz", "puzzle files to import")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	files, err := doublestar.FilepathGlob(opts.pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", opts.pattern, err)
	}

	dbConn, err := sql.Open("sqlite", opts.dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	goose.SetBaseFS(schema.Migrations)
	if err := goose.Up(dbConn, "."); err != nil {
		return fmt.Errorf("migrating %s: %w", opts.dbPath, err)
	}

	service := app.NewService(db.New(dbConn), dbConn, 1)
	defer service.Shutdown()

	seed(cmd, service, files)
	return nil
}

func seed(cmd *cobra.Command, service *app.Service, files []string) {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintf(out, "Seeding %d puzzle files...\n", len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "Skipping %s: %v\n", path, err)
			continue
		}
		p, created, err := service.ImportPuzzle(ctx, path, data)
		if err != nil {
			fmt.Fprintf(out, "Error importing %s: %v\n", path, err)
			continue
		}
		if !created {
			fmt.Fprintf(out, "Already imported: %s (ID: %s)\n", p.Title, p.ID)
			continue
		}
		fmt.Fprintf(out, "Imported puzzle: %s (ID: %s)\n", p.Title, p.ID)
	}

	fmt.Fprintln(out, "\nSeeding complete!")
}
