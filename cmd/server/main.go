package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/conditions-service/config"
	"ulascansenturk/conditions-service/internal/api/v1/handlers"
	"ulascansenturk/conditions-service/internal/db/lookuplog"
	"ulascansenturk/conditions-service/internal/providers"
	"ulascansenturk/conditions-service/internal/service"
)

var conf *config.Config

func main() {
	rootCmd := &cobra.Command{
		Use:   "conditions-service",
		Short: "Current fishing conditions for a coordinate",
		Long:  "Looks up current weather and a reverse-geocoded place name for a latitude/longitude pair",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			setupLogger(conf)
			return nil
		},
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up current conditions for a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, _ := cmd.Flags().GetString("lat")
			lon, _ := cmd.Flags().GetString("lon")
			output, _ := cmd.Flags().GetString("output")
			return lookup(cmd.Context(), cmd.OutOrStdout(), lat, lon, output)
		},
	}
	lookupCmd.Flags().String("lat", "", "Latitude")
	lookupCmd.Flags().String("lon", "", "Longitude")
	lookupCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent condition lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return history(cmd.OutOrStdout(), limit)
		},
	}
	historyCmd.Flags().IntP("limit", "n", 20, "Number of lookups to list")

	rootCmd.AddCommand(serveCmd, lookupCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(conf *config.Config) {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func newConditionsService(conf *config.Config, lookupRepo lookuplog.Repository) service.ConditionsService {
	gateway := providers.NewGateway(
		conf.Credentials(),
		conf.ProviderTimeout,
		providers.WeatherEndpoint(conf.WeatherBaseURL),
		providers.GeocodingEndpoint(conf.GeocodingBaseURL),
	)

	return service.NewConditionsService(gateway, lookupRepo)
}

func serve() error {
	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupRepo lookuplog.Repository
	if conf.AuditEnabled() {
		db, err := initializeDatabase(conf)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		lookupRepo = lookuplog.NewRepository(db)
	} else {
		log.Warn().Msg("DATABASE_HOST is not set, lookup audit trail disabled")
	}

	conditionsService := newConditionsService(conf, lookupRepo)

	handler := handlers.NewConditionsHandler(conditionsService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		conditionsService.WaitBackground()
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		mainCtxStop()
		return fmt.Errorf("server stopped: %w", serverErr)
	}
	<-ctx.Done()

	log.Info().Msg("server stopped")
	return nil
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.ConditionLookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
