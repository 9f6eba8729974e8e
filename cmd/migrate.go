// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/lab-service/internal/logging"
	"github.com/canonical/lab-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  "Apply, roll back or inspect the schema of the exams, messages, files and groups tables. Defaults to up.",
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	_ = migrateCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%s takes no version", args[0])
		}
	case "down":
		if len(args) > 1 {
			if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migrate action: %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	action := "up"
	if len(args) > 0 {
		action = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	format, _ := cmd.Flags().GetString("format")

	ctx := cmd.Context()

	db, err := migrations.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return err
	}

	runner := migrations.NewRunner(provider, logging.NewLogger("error"))
	out := cmd.OutOrStdout()

	switch action {
	case "down":
		steps, err := runner.Down(ctx, version)
		if err != nil {
			return err
		}
		return writeSteps(out, format, steps)
	case "status":
		states, err := runner.Status(ctx)
		if err != nil {
			return err
		}
		return writeStates(out, format, states)
	case "check":
		check, err := runner.Check(ctx)
		if err != nil {
			return err
		}
		return writeCheck(out, format, check)
	default:
		steps, err := runner.Up(ctx)
		if err != nil {
			return err
		}
		return writeSteps(out, format, steps)
	}
}

func writeSteps(out io.Writer, format string, steps []migrations.Step) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"applied": steps})
	}

	if len(steps) == 0 {
		fmt.Fprintln(out, "No migrations to run")
		return nil
	}

	for _, s := range steps {
		fmt.Fprintf(out, "%-4s %s (%s)\n", s.Direction, s.Source, s.Duration.Round(time.Millisecond))
	}

	return nil
}

func writeStates(out io.Writer, format string, states []migrations.State) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(states)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")

	for _, s := range states {
		appliedAt := "Pending"
		if s.AppliedAt != nil {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source)
	}

	return w.Flush()
}

// writeCheck returns an error for pending migrations in text mode
func writeCheck(out io.Writer, format string, check *migrations.Check) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(check)
	}

	switch check.Status {
	case migrations.CheckPending:
		return fmt.Errorf("migrations are pending: current version %d", check.Version)
	case migrations.CheckUnknown:
		fmt.Fprintln(out, "Database is up to date")
	default:
		fmt.Fprintf(out, "Database is up to date (version %d)\n", check.Version)
	}

	return nil
}
