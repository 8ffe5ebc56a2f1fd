package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"TinyRick.png":     "image/png",
		"photo.JPG":        "image/jpeg",
		"dir/anim.gif":     "image/gif",
		"notes.html":       "text/html",
		"README":           UnknownContentType,
		"archive.notatype": UnknownContentType,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ContentType(name))
		})
	}
}

func TestUpload(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}
	path := writeFile(t, "TinyRick.png", data)

	var gotMethod, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)

	body, err := NewUploader(srv.Client()).Upload(context.Background(), srv.URL+"/x?sig=abc", path, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "OK", body)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, data, gotBody)
}

func TestUploadStatusError(t *testing.T) {
	path := writeFile(t, "TinyRick.png", []byte("png"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
	}))
	t.Cleanup(srv.Close)

	_, err := NewUploader(srv.Client()).Upload(context.Background(), srv.URL, path, "image/png")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "SignatureDoesNotMatch", statusErr.Body)
	assert.Contains(t, err.Error(), "403")
}

func TestUploadMissingFile(t *testing.T) {
	_, err := NewUploader(nil).Upload(context.Background(), "http://127.0.0.1:1", filepath.Join(t.TempDir(), "missing.png"), "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
