package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/de-tools/report-deck/pkg/server"
	"github.com/de-tools/report-deck/pkg/services/assistant"
	"github.com/de-tools/report-deck/pkg/services/config"
	"github.com/de-tools/report-deck/pkg/services/viz"
	"github.com/de-tools/report-deck/pkg/store/session"
	"github.com/de-tools/report-deck/pkg/store/upstream"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Report Deck",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gateway := assistant.NewAnthropicGateway(assistant.Config{
		APIKey: cfg.Assistant.APIKey,
		Model:  cfg.Assistant.Model,
	})

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Sessions: session.NewStore(cfg.Uploads.Root),
			Upstream: upstream.NewClient(cfg.Upstream.URL, http.DefaultClient),
			Renderer: viz.NewRenderer(),
			Gateway:  gateway,
		},
	})

	return api.Start()
}
