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
	"github.com/canonical/lab-service/pkg/invitation"
)

var invitationCmd = &cobra.Command{
	Use:   "invitation",
	Short: "Manage organization invitations",
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending invitations of the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := call[[]types.EnrichedInvitation](cmd.Context(), getClient(), http.MethodGet, "/api/v0/invitations", nil)
		if err := report(cmd, r, "", "Failed to list invitations"); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tORGANIZATION\tROLE\tEXPIRES_AT")
		for _, i := range r.Data() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.OrganizationName, i.Role, i.ExpiresAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var invitationRole string

var sendInvitationCmd = &cobra.Command{
	Use:   "send [organization-id] [email]",
	Short: "Invite a user to an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := invitation.InviteMemberRequest{OrganizationID: args[0], Email: args[1], Role: invitationRole}

		r := call[*types.Invitation](cmd.Context(), getClient(), http.MethodPost, "/api/v0/invitations", req)

		return report(cmd, r, "Invitation sent to "+args[1], "Failed to send invitation")
	},
}

func answerInvitationCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [invitation-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v0/invitations/%s/%s", url.PathEscape(args[0]), action)

			r := call[*types.Invitation](cmd.Context(), getClient(), http.MethodPost, path, nil)

			return report(cmd, r, fmt.Sprintf("Invitation %s: %s", args[0], action+"ed"), "Failed to "+action+" invitation")
		},
	}
}

func init() {
	rootCmd.AddCommand(invitationCmd)
	invitationCmd.AddCommand(listInvitationsCmd)
	invitationCmd.AddCommand(sendInvitationCmd)
	invitationCmd.AddCommand(answerInvitationCmd("accept", "Accept an invitation"))
	invitationCmd.AddCommand(answerInvitationCmd("reject", "Reject an invitation"))

	sendInvitationCmd.Flags().StringVar(&invitationRole, "role", "member", "Role granted on acceptance (member or admin)")
}
