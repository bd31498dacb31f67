// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore saved palettes",
	Long:  "Commands for exporting saved palettes to a JSON bundle and restoring them",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a timestamped bundle of every saved palette",
	Long:  "Writes backups.dir/palettes-<timestamp>.json to the output directory, or to output.s3_bucket when set",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager, err := newBackupManager(cmd.Context(), newLogger())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		target, err := manager.CreateBackup(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Backup written: %s\n", target)
	},
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export saved palettes to a file, or stdout",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		manager, err := newBackupManager(cmd.Context(), newLogger())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		bundle, err := manager.Export(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var w io.Writer = os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			w = f
		}
		if _, err := bundle.WriteTo(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore saved palettes from a bundle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		overwrite, _ := cmd.Flags().GetBool("overwrite")
		manager, err := newBackupManager(cmd.Context(), newLogger())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		result, err := manager.Restore(cmd.Context(), f, overwrite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Restored: %d created, %d updated, %d skipped\n", result.Created, result.Updated, result.Skipped)
	},
}

func init() {
	backupRestoreCmd.Flags().Bool("overwrite", false, "Replace palettes that already exist")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
