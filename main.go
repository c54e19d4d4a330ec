package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"article-review-cms/config"
	"article-review-cms/handlers"
	"article-review-cms/helper"
	"article-review-cms/logger"
	"article-review-cms/metrics"
	"article-review-cms/repositories"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const programName = "cms"

var (
	globalFlags = struct {
		debug bool
	}{}
	configFile string
	appConfig  *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Article review CMS",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalFlags.debug {
			cfg.Logging.Level = "debug"
			cfg.Server.Mode = gin.DebugMode
		}
		appConfig = cfg
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the schema and provision the sentinel user",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := commonRun()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			db, _, err := openStore(cmd.Context(), log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			log.Info("Migration complete")
			return nil
		},
	}
}

func commonRun() (*zap.Logger, error) {
	log, err := logger.NewLogger(appConfig.Logging.Environment, appConfig.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(log.Sugar().Infof)); err != nil {
		log.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}
	config.LogConfig(appConfig, log)
	return log, nil
}

// openStore connects, migrates and makes sure the sentinel user exists.
func openStore(ctx context.Context, log *zap.Logger) (*gorm.DB, *repositories.Store, error) {
	db, err := config.InitDB(appConfig.Database)
	if err != nil {
		return nil, nil, err
	}
	store := repositories.NewStore(db)
	if err := store.Users.EnsureSentinel(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to provision sentinel user: %w", err)
	}
	log.Info("Database ready", zap.String("driver", appConfig.Database.Driver))
	return db, store, nil
}

func serveRun(ctx context.Context) error {
	log, err := commonRun()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, store, err := openStore(ctx, log)
	if err != nil {
		log.Error("Failed to open database", zap.Error(err))
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	workflowMetrics := metrics.NewWorkflowMetrics(registry)

	httpHelper, err := helper.NewHTTPHelper(log)
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	gin.SetMode(appConfig.Server.Mode)
	svc := services.NewServices(store, appConfig.JWT, log, workflowMetrics)
	router := handlers.NewRouter(svc, httpHelper, log, registry)

	server := &http.Server{
		Addr:         ":" + appConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  appConfig.Server.ReadTimeout,
		WriteTimeout: appConfig.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", appConfig.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("Server failed", zap.Error(err))
			return err
		}
		return nil
	case sig := <-quit:
		log.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exited")
	return nil
}
