package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	v1 "github.com/kubev2v/filter-clauses/api/v1"
	"github.com/kubev2v/filter-clauses/internal/config"
	"github.com/kubev2v/filter-clauses/internal/handlers"
	"github.com/kubev2v/filter-clauses/internal/server"
	"github.com/kubev2v/filter-clauses/internal/services"
	"github.com/kubev2v/filter-clauses/internal/store"
)

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Serve the clause API",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper.AutomaticEnv()
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			cobraflags.PresetRequiredFlags(envPrefix, map[*pflag.Flag]bool{}, cmd)

			if err := cfg.ExpandPaths(); err != nil {
				return err
			}
			return validateConfiguration(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			zap.S().Named("run").Infow("starting", "configuration", cfg.DebugMap())
			return run(cmd.Context(), cfg)
		},
	}

	registerFlags(runCmd, cfg)
	return runCmd
}

func registerFlags(cmd *cobra.Command, cfg *config.Configuration) {
	nfs := cmd.Flags()

	nfs.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "Port on which the HTTP server is listening")
	nfs.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode (dev, prod). In prod the UI is served over TLS")
	nfs.StringVar(&cfg.Server.StaticsFolder, "server-statics-folder", cfg.Server.StaticsFolder, "Path to the statics folder served in prod mode")
	nfs.DurationVar(&cfg.Server.ShutdownTimeout, "server-shutdown-timeout", cfg.Server.ShutdownTimeout, "Time allowed for in flight requests on shutdown")

	nfs.StringVar(&cfg.Storage.DatabasePath, "storage-database-path", cfg.Storage.DatabasePath, "DuckDB file holding records and saved filters (:memory: for none)")
	nfs.StringVar(&cfg.Storage.SeedFile, "storage-seed-file", cfg.Storage.SeedFile, "XLSX workbook imported when the records table is empty")

	nfs.BoolVar(&cfg.Auth.Enabled, "authentication-enabled", cfg.Auth.Enabled, "Require a bearer token on API requests")
	nfs.StringVar(&cfg.Auth.JWTFilePath, "authentication-jwt-filepath", cfg.Auth.JWTFilePath, "Path of the file holding the HMAC secret tokens are signed with")
	nfs.StringVar(&cfg.Auth.Issuer, "authentication-issuer", cfg.Auth.Issuer, "Expected token issuer")
}

func validateConfiguration(cfg *config.Configuration) error {
	switch cfg.Server.ServerMode {
	case server.DevServer:
	case server.ProductionServer:
		if cfg.Server.StaticsFolder == "" {
			return errors.New("statics folder must be set when server mode is prod")
		}
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.ServerMode, server.DevServer, server.ProductionServer)
	}

	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.Server.HTTPPort)
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid server-shutdown-timeout %s: must be positive", cfg.Server.ShutdownTimeout)
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTFilePath == "" {
		return errors.New("authentication-jwt-filepath must be set when authentication is enabled")
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level %q", cfg.LogLevel)
	}

	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be console or json", cfg.LogFormat)
	}

	return nil
}

func run(ctx context.Context, cfg *config.Configuration) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zap.S().Named("run")

	db, err := store.NewDB(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	st := store.NewStore(db)
	defer func() {
		if err := st.Close(); err != nil {
			logger.Errorw("closing store", "error", err)
		}
	}()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	clauseSrv := services.NewClauseService(st)
	recordSrv := services.NewRecordService(st, clauseSrv)
	filterSrv := services.NewSavedFilterService(st)

	if err := seed(ctx, cfg.Storage.SeedFile, st, recordSrv); err != nil {
		return err
	}

	h := handlers.New(clauseSrv, recordSrv, filterSrv)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		srv.Stop(shutdownCtx)
		return nil
	})

	return g.Wait()
}

// seed imports the workbook when one is configured and the records table is empty.
func seed(ctx context.Context, path string, st *store.Store, recordSrv *services.RecordService) error {
	if path == "" {
		return nil
	}

	count, err := st.Records().Count(ctx)
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	if count > 0 {
		zap.S().Named("run").Infow("records present, skipping seed", "count", count)
		return nil
	}

	f, err := config.AppFs.Open(path)
	if err != nil {
		return fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	n, err := recordSrv.ImportXLSX(ctx, f)
	if err != nil {
		return fmt.Errorf("seeding records: %w", err)
	}
	zap.S().Named("run").Infow("records seeded", "file", path, "count", n)
	return nil
}
