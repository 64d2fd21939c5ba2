package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(ts *httptest.Server) *SupabaseStorage {
	return &SupabaseStorage{
		BaseURL:    ts.URL,
		ServiceKey: "service-key",
		HTTP:       ts.Client(),
	}
}

func TestUploadBytesSuccess(t *testing.T) {
	var gotPath, gotAuth, gotCT string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"documents/admissions/x.pdf"}`))
	}))
	defer ts.Close()

	s := newTestStorage(ts)
	url, err := s.UploadBytes(context.Background(), "documents", "admissions/x.pdf", "application/pdf", []byte("pdf-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/documents/admissions/x.pdf", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "application/pdf", gotCT)
	assert.Equal(t, []byte("pdf-bytes"), gotBody)
	assert.Equal(t, ts.URL+"/storage/v1/object/public/documents/admissions/x.pdf", url)
}

func TestUploadBytesSurfacesUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Bucket not found"}`))
	}))
	defer ts.Close()

	s := newTestStorage(ts)
	_, err := s.UploadBytes(context.Background(), "missing", "x.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bucket not found")
	assert.Contains(t, err.Error(), "404")
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	s := newTestStorage(ts)
	err := s.Delete(context.Background(), "news-images", "1700000000-abc.webp")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/news-images/1700000000-abc.webp", gotPath)
}

func TestParsePublicURL(t *testing.T) {
	bucket, key, ok := ParsePublicURL("https://proj.supabase.co/storage/v1/object/public/documents/admissions/1700-abc.pdf")
	require.True(t, ok)
	assert.Equal(t, "documents", bucket)
	assert.Equal(t, "admissions/1700-abc.pdf", key)

	_, _, ok = ParsePublicURL("https://example.com/some/other/url.png")
	assert.False(t, ok)

	_, _, ok = ParsePublicURL("")
	assert.False(t, ok)
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize(50*1024*1024, 50*1024*1024, "en"))

	err := CheckSize(51*1024*1024, 50*1024*1024, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "51.00MB")
	assert.Contains(t, err.Error(), "50MB")

	err = CheckSize(51*1024*1024, 50*1024*1024, "ar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ميجابايت")
}
