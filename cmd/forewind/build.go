// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/plugin"
	"github.com/thatcatcamp/forewind/internal/themes"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the plugin adapter and print the framework configuration",
	Long: `Expand the palette, write it through the configured output when enabled
and print the framework configuration as JSON.

The host plugins are read from build.plugins. The forms plugin must be
listed with strategy "class". With --base-css the :root variables the
plugin adds are written to that file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := newLogger()
		ctx := cmd.Context()

		source, err := loadSource(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		format, err := palette.ParseFormat(config.GetString("palette.format"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		outputOpts, err := outputOptions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		emitter, err := newEmitter(ctx, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p := plugin.New(plugin.Options{
			Dynamic:       config.GetBool("palette.dynamic"),
			Prefix:        config.GetString("palette.prefix"),
			Format:        format,
			Colors:        source,
			Output:        outputOpts,
			OutputEnabled: config.GetBool("output.enabled"),
		}, emitter, logger)

		cfg, err := p.Config(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var refs []plugin.Ref
		if err := config.UnmarshalKey("build.plugins", &refs); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading build.plugins: %v\n", err)
			os.Exit(1)
		}
		host := &plugin.MemoryHost{PluginList: refs}
		if err := p.Extend(host); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		data, err := cfg.JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))

		baseCSS, _ := cmd.Flags().GetString("base-css")
		if baseCSS != "" && len(host.Base) > 0 {
			var b strings.Builder
			themes.WriteBlocks(&b, host.Base)
			sink := output.FileSink{Root: filepath.Dir(baseCSS)}
			if err := sink.Write(ctx, filepath.Base(baseCSS), []byte(b.String())); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			logger.Info().Str("path", baseCSS).Int("rules", len(host.Base)).Msg("base css written")
		}
	},
}

func init() {
	addSourceFlags(buildCmd)
	buildCmd.Flags().String("base-css", "", "Write the plugin's :root variables to this file")
	rootCmd.AddCommand(buildCmd)
}
