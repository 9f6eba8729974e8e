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
	"github.com/canonical/lab-service/pkg/organization"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var listOrgsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations visible to the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := call[[]types.Organization](cmd.Context(), getClient(), http.MethodGet, "/api/v0/organizations", nil)
		if err := report(cmd, r, "", "Failed to list organizations"); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tCREATED_AT")
		for _, o := range r.Data() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Slug, o.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var listOwnersCmd = &cobra.Command{
	Use:   "owners",
	Short: "List organizations with their owner and member count",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := call[[]types.OrganizationWithOwner](cmd.Context(), getClient(), http.MethodGet, "/api/v0/organizations/owners", nil)
		if err := report(cmd, r, "", "Failed to list organization owners"); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tOWNER")
		for _, o := range r.Data() {
			owner := "-"
			if o.Owner != nil {
				owner = fmt.Sprintf("%s <%s>", o.Owner.Name, o.Owner.Email)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", o.ID, o.Name, o.MemberCount, owner)
		}
		return w.Flush()
	},
}

var getOrgBySlug bool

var getOrgCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one organization by id, or by slug with --slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/organizations/" + url.PathEscape(args[0])
		if getOrgBySlug {
			path = "/api/v0/organizations/by-slug/" + url.PathEscape(args[0])
		}

		r := call[*types.Organization](cmd.Context(), getClient(), http.MethodGet, path, nil)
		if err := report(cmd, r, "", "Failed to get organization"); err != nil {
			return err
		}

		o := r.Data()
		fmt.Fprintf(cmd.OutOrStdout(), "%s (ID: %s, slug: %s)\n", o.Name, o.ID, o.Slug)
		return nil
	},
}

var (
	orgSlug string
	orgLogo string
)

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := organization.CreateOrganizationRequest{Name: args[0], Slug: orgSlug, Logo: orgLogo}

		r := call[*types.Organization](cmd.Context(), getClient(), http.MethodPost, "/api/v0/organizations", req)
		if !r.OK() {
			return report(cmd, r, "", "Failed to create organization")
		}

		return report(cmd, r, fmt.Sprintf("Organization created: %s (ID: %s)", r.Data().Name, r.Data().ID), "")
	},
}

func init() {
	rootCmd.AddCommand(orgCmd)
	orgCmd.AddCommand(listOrgsCmd)
	orgCmd.AddCommand(listOwnersCmd)
	orgCmd.AddCommand(getOrgCmd)
	orgCmd.AddCommand(createOrgCmd)

	getOrgCmd.Flags().BoolVar(&getOrgBySlug, "slug", false, "Look the organization up by slug")
	createOrgCmd.Flags().StringVar(&orgSlug, "slug", "", "Slug, derived from the name when empty")
	createOrgCmd.Flags().StringVar(&orgLogo, "logo", "", "Logo URL")
}
