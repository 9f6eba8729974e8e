// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint     string
	sessionToken string
	cookie       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "lab-service",
	Short:         "Lab Service",
	Long:          `Lab Service backend and CLI for organizations, teams, invitations and exams.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// client commands already reported the failure through the notifier
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&sessionToken, "session-token", "", "Kratos session token sent as X-Session-Token")
	rootCmd.PersistentFlags().StringVar(&cookie, "cookie", "", "Raw Cookie header carrying a Kratos session")
}
