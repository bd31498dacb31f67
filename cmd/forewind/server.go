// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/backup"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/handlers"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the forewind HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := newLogger()

		// Create Gin router
		r := gin.Default()

		s := handlers.NewServer(logger, db.GetDB(), handlers.Options{
			Prefix:        config.GetString("palette.prefix"),
			RateLimit:     config.GetInt("server.rate_limit"),
			CacheTTL:      config.GetDuration("server.cache_ttl"),
			BlockedIPs:    config.GetStringSlice("server.blocked_ips"),
			APIAllowedIPs: config.GetStringSlice("server.api_allowed_ips"),
			ModeFallback:  config.GetString("mode.fallback"),
		})
		defer s.Close()
		s.Setup(r)

		if interval := config.GetDuration("backups.interval"); interval > 0 {
			manager, err := newBackupManager(cmd.Context(), logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			scheduler := backup.NewScheduler(manager, interval)
			scheduler.Start(cmd.Context())
			defer scheduler.Stop()
			logger.Info().Dur("interval", interval).Msg("scheduled backups enabled")
		}

		httpPort := config.GetString("server.http_port")
		httpAddr := fmt.Sprintf(":%s", httpPort)
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-cmd.Context().Done()
			logger.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("shutdown failed")
			}
		}()

		logger.Info().Str("addr", httpAddr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
