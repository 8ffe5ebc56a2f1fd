package workflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"phoji-example/internal/api"
	"phoji-example/internal/auth"
	"phoji-example/internal/config"
	"phoji-example/internal/links"
	"phoji-example/internal/logger"
	"phoji-example/internal/upload"
)

// Options selects what Run uploads and how upload failures are treated.
type Options struct {
	// File is the local path to upload. Its base name is used remotely.
	File string
	// CampaignID selects a campaign by id; the first campaign is used when empty.
	CampaignID string
	// Strict turns a failed PUT into an error instead of a logged warning.
	Strict bool
}

// Result describes what a run did.
type Result struct {
	Campaign    api.Campaign
	FileName    string
	ContentType string
	UploadURL   string
	Uploaded    bool
	UploadErr   error
	Examples    []links.Example
}

// Run authenticates, picks a campaign, presigns and uploads the file, and
// derives the example URLs. Each step waits for the previous one.
func Run(ctx context.Context, cfg *config.Config, httpClient *http.Client, opts Options) (*Result, error) {
	authManager := auth.NewAuthManager(cfg, httpClient)

	session, err := authManager.Login(ctx)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		logger.Warning("Issued token is already expired")
	}

	client := authManager.Client(session)

	campaigns, err := client.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found %d campaigns", len(campaigns))

	campaign, err := selectCampaign(campaigns, opts.CampaignID)
	if err != nil {
		return nil, err
	}

	fileName := filepath.Base(opts.File)
	result := &Result{
		Campaign:    campaign,
		FileName:    fileName,
		ContentType: upload.ContentType(fileName),
	}

	result.UploadURL, err = client.PresignUpload(ctx, campaign.CampaignID, fileName, result.ContentType)
	if err != nil {
		return nil, err
	}
	logger.Debug("Presigned %s (%s) for campaign %s", fileName, result.ContentType, campaign.Name)

	uploader := upload.NewUploader(httpClient)
	if _, err := uploader.Upload(ctx, result.UploadURL, opts.File, result.ContentType); err != nil {
		// Only a rejected PUT is tolerated; read and transport failures stop the run.
		var statusErr *upload.StatusError
		if opts.Strict || !errors.As(err, &statusErr) {
			return nil, err
		}
		result.UploadErr = err
		logger.ErrorWithDetails("Upload failed", err)
	} else {
		result.Uploaded = true
		logger.Info("Uploaded %s to campaign %s", fileName, campaign.Name)
	}

	result.Examples = links.Examples(cfg.Endpoints.StaticURL, campaign.CampaignID, fileName)

	return result, nil
}

func selectCampaign(campaigns []api.Campaign, campaignID string) (api.Campaign, error) {
	if campaignID != "" {
		return api.FindCampaign(campaigns, campaignID)
	}

	campaign, err := api.FirstCampaign(campaigns)
	if errors.Is(err, api.ErrNoCampaigns) {
		return api.Campaign{}, fmt.Errorf("%w: create a campaign before uploading", err)
	}
	return campaign, err
}
