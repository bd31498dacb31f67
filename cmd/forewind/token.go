// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/auth"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/store"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens",
	Long:  "Issue, list and revoke bearer tokens for the palette write API",
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Issue a token and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		token, err := auth.IssueToken(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
			os.Exit(1)
		}

		// The token itself is only shown once
		fmt.Println(token)
	},
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issued tokens",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tokens, err := store.ListTokens(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing tokens: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tEXPIRES")
		for _, t := range tokens {
			status := "active"
			if t.Revoked {
				status = "revoked"
			} else if time.Now().After(t.ExpiresAt) {
				status = "expired"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.TokenID, t.Name, status, t.ExpiresAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "revoke <id>",
	Short: "Revoke a token by its ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := store.RevokeToken(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Token revoked: %s\n", args[0])
	},
}

func init() {
	tokenCmd.AddCommand(tokenCreateCmd)
	tokenCmd.AddCommand(tokenListCmd)
	tokenCmd.AddCommand(tokenRevokeCmd)
	rootCmd.AddCommand(tokenCmd)
}
