package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"phoji-example/internal/logger"

	"github.com/machinebox/graphql"
)

var (
	// ErrNoCampaigns is returned when the account has no campaign to upload into.
	ErrNoCampaigns = errors.New("no campaigns found for this account")
	// ErrCampaignNotFound is returned when a requested campaign id is not listed.
	ErrCampaignNotFound = errors.New("campaign not found")
)

const (
	authenticateMutation = `
mutation Authenticate($email: String!, $password: String!) {
  authenticate(email: $email, password: $password) {
    token
  }
}`

	campaignsQuery = `
query Campaigns {
  campaigns {
    campaignId
    name
  }
}`

	presignUploadMutation = `
mutation PresignPhojiUpload($fileName: String!, $fileType: String!, $campaignId: String!) {
  presignPhojiUpload(fileName: $fileName, fileType: $fileType, campaignId: $campaignId) {
    url
  }
}`
)

// Campaign is a named collection that uploaded images are grouped under.
type Campaign struct {
	CampaignID string `json:"campaignId"`
	Name       string `json:"name"`
}

// Client talks to the Phoji GraphQL API on behalf of a single token.
type Client struct {
	gql   *graphql.Client
	token string
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for GraphQL requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// NewClient returns a client bound to apiURL that sends token as a bearer
// credential on every request. An empty token is sent as-is.
func NewClient(apiURL, token string, opts ...Option) *Client {
	o := options{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	gql := graphql.NewClient(apiURL, graphql.WithHTTPClient(o.httpClient))
	gql.Log = logTrace

	return &Client{gql: gql, token: token}
}

// logTrace forwards only the query documents of the transport trace. The
// variables, headers and responses carry the password and bearer token.
func logTrace(line string) {
	if strings.HasPrefix(line, ">> query:") {
		logger.Debug("graphql: %s", line)
	}
}

func (c *Client) newRequest(query string) *graphql.Request {
	req := graphql.NewRequest(query)
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req
}

// Authenticate exchanges an email/password pair for a session token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	req := c.newRequest(authenticateMutation)
	req.Var("email", email)
	req.Var("password", password)

	var resp struct {
		Authenticate struct {
			Token string `json:"token"`
		} `json:"authenticate"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}

	return resp.Authenticate.Token, nil
}

// Campaigns lists the campaigns of the authenticated user in the order the
// API returns them.
func (c *Client) Campaigns(ctx context.Context) ([]Campaign, error) {
	req := c.newRequest(campaignsQuery)

	var resp struct {
		Campaigns []Campaign `json:"campaigns"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return resp.Campaigns, nil
}

// PresignUpload requests a write-capable URL for fileName under campaignID.
// fileType defaults to image/png when empty.
func (c *Client) PresignUpload(ctx context.Context, campaignID, fileName, fileType string) (string, error) {
	if fileType == "" {
		fileType = "image/png"
	}

	req := c.newRequest(presignUploadMutation)
	req.Var("fileName", fileName)
	req.Var("fileType", fileType)
	req.Var("campaignId", campaignID)

	var resp struct {
		PresignPhojiUpload struct {
			URL string `json:"url"`
		} `json:"presignPhojiUpload"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}

	return resp.PresignPhojiUpload.URL, nil
}

// FirstCampaign returns the first campaign of the list.
func FirstCampaign(campaigns []Campaign) (Campaign, error) {
	if len(campaigns) == 0 {
		return Campaign{}, ErrNoCampaigns
	}
	return campaigns[0], nil
}

// FindCampaign returns the campaign with the given id.
func FindCampaign(campaigns []Campaign, campaignID string) (Campaign, error) {
	for _, c := range campaigns {
		if c.CampaignID == campaignID {
			return c, nil
		}
	}
	return Campaign{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
}
