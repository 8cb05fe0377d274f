package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"puz_shelf/internal/app"
	"puz_shelf/internal/config"
	"puz_shelf/internal/db"
	"puz_shelf/internal/transport"
	"puz_shelf/sql/schema"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

type serverOptions struct {
	configPath string
}

// NewRootCmd creates the root command for the server.
func NewRootCmd() *cobra.Command {
	opts := &serverOptions{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the puzzle shelf HTTP API",
		Long: `server stores uploaded .puz files in sqlite and serves them as JSON.
Settings come from config.yaml (found under $XDG_CONFIG_HOME/puz_shelf when
--config is empty) and the PORT, DB_PATH, ENV and CACHE_SIZE variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(opts *serverOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	dbConn, err := sql.Open("sqlite", cfg.DBPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	// Run migrations from embedded FS
	goose.SetBaseFS(schema.Migrations)
	if err := goose.Up(dbConn, "."); err != nil {
		return fmt.Errorf("migrating %s: %w", cfg.DBPath, err)
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn, cfg.CacheSize)
	defer service.Shutdown()
	server := transport.NewServer(service, dbConn, cfg.IsProd(), cfg.MaxUploadBytes)

	log.Printf("Server starting in %s mode on http://localhost:%s\n", cfg.Env, cfg.Port)
	return http.ListenAndServe(":"+cfg.Port, server.Router)
}
