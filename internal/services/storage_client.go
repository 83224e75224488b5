package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// StorageClientInterface is the object-storage collaborator contract:
// ensure the bucket exists, store bytes under an object path, hand out and
// revoke public URLs.
type StorageClientInterface interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, data []byte, mimeType, objectPath string) (string, error)
	DeleteObject(ctx context.Context, objectPath string) error

	Bucket() string
	PublicURLPrefix() string
}

// SupabaseStorageClient talks to the Supabase storage REST API with the
// service-role key.
type SupabaseStorageClient struct {
	HTTP       *http.Client
	BaseURL    string
	ServiceKey string
	BucketName string

	mu      sync.Mutex
	ensured bool
}

func NewSupabaseStorageClient() *SupabaseStorageClient {
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "resto_images"
	}
	return &SupabaseStorageClient{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		BaseURL:    strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		ServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		BucketName: bucket,
	}
}

func (c *SupabaseStorageClient) Bucket() string {
	return c.BucketName
}

func (c *SupabaseStorageClient) PublicURLPrefix() string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/", c.BaseURL, c.BucketName)
}

func (c *SupabaseStorageClient) configured() bool {
	return c.BaseURL != "" && c.ServiceKey != ""
}

func (c *SupabaseStorageClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	req.Header.Set("apikey", c.ServiceKey)
}

// EnsureBucket creates the public bucket on first use; the result is
// remembered for the process lifetime.
func (c *SupabaseStorageClient) EnsureBucket(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ensured {
		return nil
	}
	if !c.configured() {
		return fmt.Errorf("storage not configured: SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"id":     c.BucketName,
		"name":   c.BucketName,
		"public": true,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/storage/v1/bucket", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("storage bucket create: %w", err)
	}
	defer resp.Body.Close()

	// 409 means the bucket is already there, which is fine.
	if resp.StatusCode/100 != 2 && resp.StatusCode != http.StatusConflict {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage bucket create failed: %s: %s", resp.Status, string(body))
	}

	c.ensured = true
	return nil
}

func (c *SupabaseStorageClient) Upload(ctx context.Context, data []byte, mimeType, objectPath string) (string, error) {
	if !c.configured() {
		return "", fmt.Errorf("storage not configured")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.BucketName, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage upload failed: %s: %s", resp.Status, string(body))
	}

	return c.PublicURLPrefix() + objectPath, nil
}

func (c *SupabaseStorageClient) DeleteObject(ctx context.Context, objectPath string) error {
	if !c.configured() {
		return fmt.Errorf("storage not configured")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.BucketName, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("storage delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage delete failed: %s: %s", resp.Status, string(body))
	}
	return nil
}
