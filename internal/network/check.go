package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"phoji-example/internal/config"
	"phoji-example/internal/logger"
)

const checkTimeout = 5 * time.Second

// Target is a host the client depends on.
type Target struct {
	Name string
	URL  string
}

// Targets lists the API and static hosts of the configured environment.
func Targets(cfg *config.Config) []Target {
	return []Target{
		{Name: "API", URL: cfg.Endpoints.APIURL},
		{Name: "Static assets", URL: cfg.Endpoints.StaticURL},
	}
}

// CheckConnectivity verifies the Phoji hosts of the configured environment
// answer HTTP requests. Any status code counts as reachable.
func CheckConnectivity(ctx context.Context, cfg *config.Config, httpClient *http.Client) error {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: checkTimeout}
	}

	for _, target := range Targets(cfg) {
		if err := checkReachability(ctx, httpClient, target.URL); err != nil {
			return fmt.Errorf("%s at %s is not reachable: %w", target.Name, target.URL, err)
		}
		logger.Debug("%s at %s is reachable", target.Name, target.URL)
	}

	return nil
}

func checkReachability(ctx context.Context, httpClient *http.Client, url string) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}
