package cli

import (
	"fmt"
	"time"

	"phoji-example/internal/auth"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify your Phoji credentials",
		Long: `Authenticate with PHOJI_USERNAME and PHOJI_PASSWORD and report the result.
The issued token is not stored; every command signs in again.

Example:
  phoji login`,
		Args: cobra.NoArgs,
		RunE: a.runLogin,
	}
}

func (a *app) runLogin(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !a.requireCredentials(out) {
		return nil
	}

	session, err := auth.NewAuthManager(a.cfg, a.httpClient).Login(cmd.Context())
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintf(out, "Login successful! Signed in as %s\n", a.cfg.Username)
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "  Token expires: %s\n", session.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
