// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "forewind",
	Short: "forewind - palette scales and CSS variables for utility-first CSS",
	Long: `forewind turns a handful of base colors into full 50-950 shade scales,
projects them onto CSS custom properties and wires them into a utility-first
CSS build.

It can print the expanded palette, write it to disk or S3, generate
stylesheets and serve palettes over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// newLogger builds the console logger at the configured level
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(config.GetString("log.level"))
	if err != nil || config.GetString("log.level") == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
