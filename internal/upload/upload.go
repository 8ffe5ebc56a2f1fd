package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// UnknownContentType is used when the file extension has no MIME mapping.
const UnknownContentType = "unknown"

// StatusError is returned when the upload target answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upload failed with status: %s", e.Status)
	}
	return fmt.Sprintf("upload failed with status: %s: %s", e.Status, e.Body)
}

// Uploader PUTs local files to presigned URLs.
type Uploader struct {
	httpClient *http.Client
}

func NewUploader(httpClient *http.Client) *Uploader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Uploader{httpClient: httpClient}
}

// ContentType infers a MIME type from the file name extension. Media type
// parameters such as charset are dropped.
func ContentType(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return UnknownContentType
	}

	t := mime.TypeByExtension(ext)
	if t == "" {
		return UnknownContentType
	}

	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return t
	}
	return mediaType
}

// Upload reads fileName fully into memory and PUTs it to url with the given
// content type. The response body is returned on success.
func (u *Uploader) Upload(ctx context.Context, url, fileName, contentType string) (string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", fileName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	// Must match the file type the URL was presigned for.
	req.Header.Set("Content-Type", contentType)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	return string(body), nil
}
