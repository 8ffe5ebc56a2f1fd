package cli

import (
	"fmt"

	"phoji-example/internal/links"
	"phoji-example/internal/logger"
	"phoji-example/internal/workflow"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// openURL is swapped in tests.
var openURL = browser.OpenURL

type uploadOptions struct {
	campaignID string
	strict     bool
	open       bool
}

func newUploadCmd(a *app) *cobra.Command {
	var opts uploadOptions

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image to a campaign",
		Long: `Upload a local image through a presigned URL and print its Phoji URLs.
The content type is inferred from the file extension.

Examples:
  phoji upload TinyRick.png
  phoji upload ./avatar.jpg --campaign 8f1c2a --open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpload(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.campaignID, "campaign", "", "campaign id to upload into (default: first campaign)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the upload is rejected instead of printing URLs anyway")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the uploaded image in the browser")

	return cmd
}

func (a *app) runUpload(cmd *cobra.Command, file string, opts uploadOptions) error {
	out := cmd.OutOrStdout()
	if !a.requireCredentials(out) {
		return nil
	}

	result, err := workflow.Run(cmd.Context(), a.cfg, a.httpClient, workflow.Options{
		File:       file,
		CampaignID: opts.campaignID,
		Strict:     opts.strict,
	})
	if err != nil {
		return err
	}

	if result.UploadErr != nil {
		fmt.Fprintf(out, "Upload failed: %v\n", result.UploadErr)
	}
	if err := links.Print(out, result.Examples); err != nil {
		return err
	}

	if opts.open && result.Uploaded {
		original := links.ImageURL(a.cfg.Endpoints.StaticURL, result.Campaign.CampaignID, result.FileName)
		if err := openURL(original); err != nil {
			logger.Warning("Failed to open browser: %v", err)
		}
	}
	return nil
}
