package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/pkg/logger"

	"github.com/rs/zerolog"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(configs.Environment, configs.LogLevel)

	if err = run(configs, log); err != nil {
		log.Fatal().Err(err).Msg("marketplace stopped")
	}
}

func run(configs cmd.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, configs.DB)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, log)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, log)
}

func openDatabase(ctx context.Context, dbConfig cmd.DBConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(pgdriver.Open(dbConfig.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port int, log zerolog.Logger) error {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", port).Msg("http server started")
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%d", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down")
	return e.Shutdown(shutdownCtx)
}
