// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/themes"
	"github.com/thatcatcamp/forewind/internal/vars"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand the palette and print it as JSON",
	Long: `Expand every base color into a 50-950 scale with DEFAULT and print the
result. When output.enabled is set the palette is also written to the
configured file or bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := newLogger()

		source, err := loadSource(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = config.GetString("palette.format")
		}
		format, err := palette.ParseFormat(formatName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		expanded, err := palette.ExpandPalette(source, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		data, err := output.Render(expanded, output.TypeJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))

		if config.GetBool("output.enabled") {
			emitter, err := newEmitter(cmd.Context(), logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if _, err := emitter.Emit(cmd.Context(), expanded, true); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Print the palette projected onto CSS variable names",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		source, err := loadSource(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		expanded, err := palette.ExpandPalette(source, palette.FormatHex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		modeName, _ := cmd.Flags().GetString("mode")
		projection, err := vars.ParseMode(modeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sep, _ := cmd.Flags().GetString("sep")
		if sep == "" {
			sep = config.GetString("palette.separator")
		}
		prefix, _ := cmd.Flags().GetString("prefix")
		if prefix == "" {
			prefix = config.GetString("palette.prefix")
		}
		alpha, _ := cmd.Flags().GetBool("alpha")
		nested, _ := cmd.Flags().GetBool("nested")

		opts := vars.Options{Prefix: prefix, Separator: sep, Mode: projection, Alpha: alpha}

		var data []byte
		if nested {
			themeVars, err := vars.ThemeVars(expanded, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			data, err = output.Render(themeVars, output.TypeJSON)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			flat, err := vars.Project(expanded, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			data, err = flat.MarshalIndent("", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Println(string(data))
	},
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print a stylesheet with :root variables, theme blocks and base styles",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		source, err := loadSource(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		root, err := themes.PaletteRoot(source, config.GetString("palette.prefix"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		blocks := []themes.Block{root}

		names, _ := cmd.Flags().GetStringSlice("theme")
		preprocessName, _ := cmd.Flags().GetString("preprocess")
		preprocess, err := themes.ParsePreprocess(preprocessName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var list []*themes.Theme
		for _, name := range names {
			theme, err := themes.PresetTheme(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			theme.Preprocess = preprocess
			list = append(list, theme)
		}
		themeBlocks, err := themes.GenerateThemes(list)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		blocks = append(blocks, themeBlocks...)

		fmt.Print(themes.GenerateCSS(blocks))
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.css>",
	Short: "List the custom properties declared in a stylesheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		blocks, err := themes.ParseCSS(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var b strings.Builder
		for _, block := range blocks {
			fmt.Fprintf(&b, "%s (%d)\n", block.Selector, block.Vars.Len())
			for _, v := range block.Vars.Vars() {
				fmt.Fprintf(&b, "  %s = %s\n", v.Key, v.Value)
			}
		}
		fmt.Print(b.String())
	},
}

func init() {
	addSourceFlags(generateCmd)
	generateCmd.Flags().String("format", "", "Shade format: hex or channels (default from palette.format)")

	addSourceFlags(varsCmd)
	varsCmd.Flags().String("mode", "literal", "Projection: literal, indirection or verbatim")
	varsCmd.Flags().String("sep", "", "Key separator: - or . (default from palette.separator)")
	varsCmd.Flags().String("prefix", "", "Key prefix (default from palette.prefix)")
	varsCmd.Flags().Bool("alpha", false, "Wrap indirection values as rgb(var(--KEY)/<alpha-value>)")
	varsCmd.Flags().Bool("nested", false, "Print the nested name -> shade -> var(...) form")

	addSourceFlags(cssCmd)
	cssCmd.Flags().StringSlice("theme", nil, "Preset themes to add as [data-theme] blocks")
	cssCmd.Flags().String("preprocess", "both", "Theme preprocessing: both, colors, variables or none")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(inspectCmd)
}
