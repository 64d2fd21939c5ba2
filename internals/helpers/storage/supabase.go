package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alwantayf_backend/internals/configs"
)

// Uploader is what handlers and services depend on; the Supabase client
// below is the only production implementation.
type Uploader interface {
	UploadBytes(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, bucket, objectPath string) error
}

// SupabaseStorage talks to the Supabase storage REST API with the
// service-role key. Objects land in public buckets, so the public URL can
// be derived without a second call.
type SupabaseStorage struct {
	BaseURL    string
	ServiceKey string
	HTTP       *http.Client
}

func NewSupabaseStorage() *SupabaseStorage {
	return &SupabaseStorage{
		BaseURL:    strings.TrimRight(configs.SupabaseURL, "/"),
		ServiceKey: configs.SupabaseServiceKey,
		HTTP:       &http.Client{Timeout: 60 * time.Second},
	}
}

// UploadBytes stores data at bucket/objectPath (no upsert) and returns the
// public URL. The response body of a failed call is surfaced verbatim so
// handlers can pass the service's message through as `details`.
func (s *SupabaseStorage) UploadBytes(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, bucket, escapePath(objectPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = http.DetectContentType(head(data))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("apikey", s.ServiceKey)
	req.Header.Set("x-upsert", "false")
	req.Header.Set("Cache-Control", "3600")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("storage upload failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return s.PublicURL(bucket, objectPath), nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, bucket, objectPath string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, bucket, escapePath(objectPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("apikey", s.ServiceKey)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("storage delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("storage delete failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// PublicURL builds the /storage/v1/object/public/... URL for an object.
func (s *SupabaseStorage) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.BaseURL, bucket, escapePath(objectPath))
}

// ParsePublicURL reverses PublicURL: given a stored href it extracts the
// bucket and object key, so delete endpoints can clean up storage from the
// URL recorded in the row.
func ParsePublicURL(href string) (bucket, key string, ok bool) {
	if href == "" {
		return "", "", false
	}
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}
	const marker = "/storage/v1/object/public/"
	i := strings.Index(href, marker)
	if i < 0 {
		return "", "", false
	}
	rest := href[i+len(marker):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	key, err := url.PathUnescape(parts[1])
	if err != nil {
		key = parts[1]
	}
	return parts[0], key, true
}

// escapePath escapes each segment but keeps the slashes.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

func head(b []byte) []byte {
	if len(b) > 512 {
		return b[:512]
	}
	return b
}
