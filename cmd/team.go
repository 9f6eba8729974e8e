// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/lab-service/internal/types"
	"github.com/canonical/lab-service/pkg/team"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var listTeamsCmd = &cobra.Command{
	Use:   "list [organization-id]",
	Short: "List the teams of an organization split by membership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/api/v0/organizations/%s/teams", url.PathEscape(args[0]))

		r := call[*types.TeamSplit](cmd.Context(), getClient(), http.MethodGet, path, nil)
		if err := report(cmd, r, "", "Failed to list teams"); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMEMBER")
		for _, t := range r.Data().Joined {
			fmt.Fprintf(w, "%s\t%s\tyes\n", t.ID, t.Name)
		}
		for _, t := range r.Data().Available {
			fmt.Fprintf(w, "%s\t%s\tno\n", t.ID, t.Name)
		}
		return w.Flush()
	},
}

var teamPassword string

var createTeamCmd = &cobra.Command{
	Use:   "create [organization-id] [name]",
	Short: "Create a team, optionally protected by --password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := team.CreateTeamRequest{OrganizationID: args[0], Name: args[1], Password: teamPassword}

		r := call[*types.Team](cmd.Context(), getClient(), http.MethodPost, "/api/v0/teams", req)
		if !r.OK() {
			return report(cmd, r, "", "Failed to create team")
		}

		return report(cmd, r, fmt.Sprintf("Team created: %s (ID: %s)", r.Data().Name, r.Data().ID), "")
	},
}

var joinTeamCmd = &cobra.Command{
	Use:   "join [organization-id] [team-id] [password]",
	Short: "Join a password protected team",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := team.JoinTeamRequest{OrganizationID: args[0], Password: args[2]}
		path := fmt.Sprintf("/api/v0/teams/%s/join", url.PathEscape(args[1]))

		r := call[*types.TeamMember](cmd.Context(), getClient(), http.MethodPost, path, req)

		return report(cmd, r, "Joined team "+args[1], "Failed to join team")
	},
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(listTeamsCmd)
	teamCmd.AddCommand(createTeamCmd)
	teamCmd.AddCommand(joinTeamCmd)

	createTeamCmd.Flags().StringVar(&teamPassword, "password", "", "Password required to join the team")
}
