// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/mode"
	"github.com/thatcatcamp/forewind/internal/store"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Manage the persisted light/dark color mode",
}

func modeManager() *mode.Manager {
	if err := initSystemDB(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mode.NewManager(store.SettingStore{DB: db.GetDB()}, config.GetString("mode.fallback"))
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current mode",
	Run: func(cmd *cobra.Command, args []string) {
		current, err := modeManager().Current(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(current)
	},
}

var modeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Persist a mode",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := mode.Parse(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := modeManager().Set(cmd.Context(), m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mode set to %s\n", m)
	},
}

var modeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Run: func(cmd *cobra.Command, args []string) {
		next, err := modeManager().Toggle(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mode set to %s\n", next)
	},
}

var modeInitCmd = &cobra.Command{
	Use:   "init [light|dark]",
	Short: "Persist the given mode, or the current one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var m mode.Mode
		if len(args) == 1 {
			parsed, err := mode.Parse(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			m = parsed
		}
		saved, err := modeManager().Init(cmd.Context(), m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mode set to %s\n", saved)
	},
}

var modeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the persisted mode",
	Run: func(cmd *cobra.Command, args []string) {
		if err := modeManager().Reset(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Mode reset")
	},
}

func init() {
	modeCmd.AddCommand(modeGetCmd)
	modeCmd.AddCommand(modeSetCmd)
	modeCmd.AddCommand(modeToggleCmd)
	modeCmd.AddCommand(modeInitCmd)
	modeCmd.AddCommand(modeResetCmd)
	rootCmd.AddCommand(modeCmd)
}
