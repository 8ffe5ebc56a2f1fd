package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"phoji-example/internal/config"
	"phoji-example/internal/links"
	"phoji-example/internal/logger"
	"phoji-example/internal/workflow"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

// newHTTPClient builds the client shared by every network call of a run.
// No timeout is set beyond the transport defaults.
var newHTTPClient = func() *http.Client {
	return &http.Client{}
}

// app carries what every command needs once the root pre-run has executed.
type app struct {
	verbose    bool
	cfg        *config.Config
	httpClient *http.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "phoji",
		Short: "Phoji example client",
		Long: `phoji signs in to the Phoji API, picks your first campaign and uploads
a sample image to it through a presigned URL, then prints example Phoji URLs.

Credentials are read from PHOJI_USERNAME and PHOJI_PASSWORD (a .env file in
the working directory is honoured). Set PHOJI_ENV=dev to target development.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Debug = true
			}

			logger.Init(cmd.ErrOrStderr(), cfg.Debug, cfg.LogFormat)
			logger.Debug("Using %s environment (%s)", cfg.Environment, cfg.Endpoints.APIURL)

			a.cfg = cfg
			a.httpClient = newHTTPClient()
			return nil
		},
		RunE: a.runDemo,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newCampaignsCmd(a))
	rootCmd.AddCommand(newUploadCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command until it completes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

// requireCredentials prints one line per missing variable and reports
// whether the command may proceed.
func (a *app) requireCredentials(out io.Writer) bool {
	missing := a.cfg.MissingCredentials()
	for _, name := range missing {
		fmt.Fprintf(out, "%s environment variable must be set.\n", name)
	}
	return len(missing) == 0
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !a.requireCredentials(out) {
		return nil
	}

	result, err := workflow.Run(cmd.Context(), a.cfg, a.httpClient, workflow.Options{
		File: a.cfg.SampleFile,
	})
	if err != nil {
		return err
	}

	// The example URLs are printed even when the upload failed.
	if result.UploadErr != nil {
		fmt.Fprintf(out, "Upload failed: %v\n", result.UploadErr)
	}

	return links.Print(out, result.Examples)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phoji v%s\n", version)
		},
	}
}
