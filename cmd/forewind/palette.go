// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/themes"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage saved palettes",
	Long:  "Save, list, show and delete named base palettes",
}

var paletteSaveCmd = &cobra.Command{
	Use:   "save <name> <file>",
	Short: "Save a palette file under a name, replacing an existing one with --force",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		name := args[0]
		if themes.GetPreset(name) != nil {
			fmt.Fprintf(os.Stderr, "Error: %s is a built-in preset\n", name)
			os.Exit(1)
		}

		p, err := loadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		description, _ := cmd.Flags().GetString("description")
		force, _ := cmd.Flags().GetBool("force")

		if force {
			if _, err := store.GetPaletteByName(db.GetDB(), name); err == nil {
				if _, err := store.UpdatePalette(db.GetDB(), name, p); err != nil {
					fmt.Fprintf(os.Stderr, "Error updating palette: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("Palette updated: %s\n", name)
				return
			}
		}

		record, err := store.CreatePalette(db.GetDB(), name, description, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving palette: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Palette saved: %s (ID: %d, %d colors)\n", record.Name, record.ID, p.Len())
	},
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets and saved palettes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		records, err := store.ListPalettes(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing palettes: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSOURCE\tDESCRIPTION\tUPDATED")
		for _, preset := range themes.ListPresets() {
			fmt.Fprintf(w, "%s\tpreset\t%s / %s\t-\n", preset.Name, preset.Primary, preset.Secondary)
		}
		for _, r := range records {
			description := r.Description
			if description == "" {
				description = "-"
			}
			fmt.Fprintf(w, "%s\tstored\t%s\t%s\n", r.Name, description, r.UpdatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset or saved palette, expanded",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var p *palette.Palette
		if preset := themes.GetPreset(args[0]); preset != nil {
			p = preset.Palette()
		} else {
			if err := initSystemDB(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			loaded, err := store.LoadPalette(db.GetDB(), args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			p = loaded
		}

		formatName, _ := cmd.Flags().GetString("format")
		format, err := palette.ParseFormat(formatName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		raw, _ := cmd.Flags().GetBool("raw")
		if !raw {
			if p, err = palette.ExpandPalette(p, format); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		data, err := output.Render(p, output.TypeJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var paletteDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := store.DeletePalette(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting palette: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Palette deleted: %s\n", args[0])
	},
}

func init() {
	paletteSaveCmd.Flags().String("description", "", "Free-form description (basic HTML allowed)")
	paletteSaveCmd.Flags().Bool("force", false, "Replace the colors of an existing palette")
	paletteShowCmd.Flags().String("format", "hex", "Shade format: hex or channels")
	paletteShowCmd.Flags().Bool("raw", false, "Print the saved base colors without expanding")

	paletteCmd.AddCommand(paletteSaveCmd)
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteDeleteCmd)
	rootCmd.AddCommand(paletteCmd)
}
