package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloaderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	t.Cleanup(srv.Close)

	d := NewDownloader(t.TempDir(), 0, nil)
	path, cleanup, err := d.Fetch(context.Background(), srv.URL, "t4-slip.pdf")
	require.NoError(t, err)
	t.Cleanup(cleanup)

	assert.Equal(t, ".pdf", filepath.Ext(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(b))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDownloaderFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// signed URL expired
		http.Error(w, "expired", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	d := NewDownloader(t.TempDir(), 0, nil)
	_, _, err := d.Fetch(context.Background(), srv.URL, "slip.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
