// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/exam"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Manage exams",
}

var (
	examTeamID      string
	examDescription string
	examCreatedBy   string
)

var createExamCmd = &cobra.Command{
	Use:   "create [organization-id] [title] [date]",
	Short: "Schedule an exam, date as 2006-01-02 or RFC3339",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(args[2])
		if err != nil {
			return err
		}

		req := exam.CreateExamRequest{
			Title:          args[1],
			Description:    examDescription,
			Date:           types.Timestamp{Time: date},
			CreatedBy:      examCreatedBy,
			OrganizationID: args[0],
			TeamID:         examTeamID,
		}

		r := call[*types.Exam](cmd.Context(), getClient(), http.MethodPost, "/api/v0/exams", req)
		if !r.OK() {
			return report(cmd, r, "", "Failed to create exam")
		}

		return report(cmd, r, fmt.Sprintf("Exam created: %s (ID: %s)", r.Data().Title, r.Data().ID), "")
	},
}

var listExamsCmd = &cobra.Command{
	Use:   "list [organization-id]",
	Short: "List exams of an organization, or of a team with --team",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		switch {
		case examTeamID != "":
			path = fmt.Sprintf("/api/v0/teams/%s/exams", url.PathEscape(examTeamID))
		case len(args) == 1:
			path = fmt.Sprintf("/api/v0/organizations/%s/exams", url.PathEscape(args[0]))
		default:
			return fmt.Errorf("an organization id or --team is required")
		}

		r := call[[]types.Exam](cmd.Context(), getClient(), http.MethodGet, path, nil)
		if err := report(cmd, r, "", "Failed to list exams"); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDATE\tTEAM")
		for _, e := range r.Data() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Date.Format(time.RFC3339), e.TeamID)
		}
		return w.Flush()
	},
}

var deleteExamCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an exam",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := call[bool](cmd.Context(), getClient(), http.MethodDelete, "/api/v0/exams/"+url.PathEscape(args[0]), nil)

		return report(cmd, r, "Exam deleted: "+args[0], "Failed to delete exam")
	},
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected 2006-01-02 or RFC3339", s)
	}

	return t, nil
}

func init() {
	rootCmd.AddCommand(examCmd)
	examCmd.AddCommand(createExamCmd)
	examCmd.AddCommand(listExamsCmd)
	examCmd.AddCommand(deleteExamCmd)

	createExamCmd.Flags().StringVar(&examTeamID, "team", "", "Team the exam belongs to")
	createExamCmd.Flags().StringVar(&examDescription, "description", "", "Exam description")
	createExamCmd.Flags().StringVar(&examCreatedBy, "created-by", "", "User id of the author")
	_ = createExamCmd.MarkFlagRequired("created-by")
	listExamsCmd.Flags().StringVar(&examTeamID, "team", "", "List the exams of this team instead")
}
