package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/config"
	"github.com/Aiosol/ccf-bakery-sub001/db"
	"github.com/Aiosol/ccf-bakery-sub001/diag"
	"github.com/Aiosol/ccf-bakery-sub001/logger"
	"github.com/Aiosol/ccf-bakery-sub001/route"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "bakery-server",
		Short: "Bakery management console backend",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/development.yaml", "path to the YAML config")
	root.AddCommand(serveCmd(), diagCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			defer logger.Sync()

			if err := godotenv.Load(); err != nil {
				logger.Warn("no .env file found, using system env vars")
			}

			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			if err := db.InitDB(cfg); err != nil {
				return err
			}
			defer db.Close()

			r := gin.Default()
			if err := route.SetupRoutes(r, cfg); err != nil {
				return err
			}

			port := cfg.Server.Port
			if port == "" {
				port = "8080"
			}
			logger.Info("server starting", zap.String("port", port))
			return r.Run(":" + port)
		},
	}
}

func diagCmd() *cobra.Command {
	var baseURL, token string
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Probe a running backend and report endpoint status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runner := diag.NewRunner(baseURL, token)
			if err := runner.CheckConnectivity(ctx); err != nil {
				return err
			}
			fmt.Println("connectivity: ok")

			for _, res := range runner.Run(ctx, nil) {
				if res.Err != nil {
					fmt.Printf("%-15s error: %v\n", res.Probe.Name, res.Err)
					continue
				}
				shape := "not json"
				if res.JSONShaped {
					shape = "json"
				}
				fmt.Printf("%-15s %d %s (%s)\n", res.Probe.Name, res.StatusCode, shape, res.Duration.Round(time.Millisecond))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "backend base URL")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for authenticated probes")
	return cmd
}
