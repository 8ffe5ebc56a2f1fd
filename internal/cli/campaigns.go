package cli

import (
	"fmt"
	"text/tabwriter"

	"phoji-example/internal/auth"

	"github.com/spf13/cobra"
)

func newCampaignsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "campaigns",
		Short: "List your campaigns",
		Long: `List all campaigns associated with your account, in the order the API returns them.

Example:
  phoji campaigns`,
		Args: cobra.NoArgs,
		RunE: a.runCampaigns,
	}
}

func (a *app) runCampaigns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !a.requireCredentials(out) {
		return nil
	}

	authManager := auth.NewAuthManager(a.cfg, a.httpClient)
	session, err := authManager.Login(cmd.Context())
	if err != nil {
		return err
	}

	campaigns, err := authManager.Client(session).Campaigns(cmd.Context())
	if err != nil {
		return err
	}

	if len(campaigns) == 0 {
		fmt.Fprintln(out, "No campaigns found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CAMPAIGN ID\tNAME")
	fmt.Fprintln(w, "-----------\t----")
	for _, c := range campaigns {
		fmt.Fprintf(w, "%s\t%s\n", c.CampaignID, c.Name)
	}
	return w.Flush()
}
