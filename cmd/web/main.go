package main

import (
	"fmt"
	"os"

	"github.com/de-tools/permit-atlas/pkg/server"
	"github.com/de-tools/permit-atlas/pkg/services/config"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Permit Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (defaults and PERMIT_ATLAS_* variables apply otherwise)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "",
		"Catalog profile to serve (overrides catalog.profile)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if profile != "" {
		cfg.Catalog.Profile = profile
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistryOrDefault(cfg.Catalog.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	catalogProfile, err := registry.GetProfile(ctx, cfg.Catalog.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog profile: %w", err)
	}

	// The catalog is immutable for the life of the process; a load failure is fatal.
	store, err := catalog.Load(ctx, catalogProfile)
	if err != nil {
		logger.Error().Err(err).Str("profile", catalogProfile.String()).Msg("catalog unavailable")
		return err
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: dashboard.NewService(store, dashboard.NewMetrics(metrics)),
			Logger:    logger,
			Registry:  metrics,
		},
	})

	return api.Start()
}
