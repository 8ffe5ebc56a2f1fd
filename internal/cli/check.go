package cli

import (
	"fmt"

	"phoji-example/internal/logger"
	"phoji-example/internal/network"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the Phoji hosts are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			environment := "development"
			if a.cfg.IsProd() {
				environment = "production"
			}
			fmt.Fprintf(out, "Environment: %s\n", environment)

			if err := network.CheckConnectivity(cmd.Context(), a.cfg, a.httpClient); err != nil {
				logger.Error("Connectivity check failed: %v", err)
				fmt.Fprintln(out, "\nPlease ensure:")
				fmt.Fprintln(out, "  - You have an active internet connection")
				fmt.Fprintf(out, "  - PHOJI_ENV selects the environment you expect (%s)\n", a.cfg.Environment)
				return err
			}

			for _, target := range network.Targets(a.cfg) {
				fmt.Fprintf(out, "%s reachable: %s\n", target.Name, target.URL)
			}
			return nil
		},
	}
}
