package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/de-tools/report-deck/pkg/models/domain"
)

// FileInfo is the upstream metadata payload describing the report a
// user just ran: who ran it, where to download it, and its type code.
type FileInfo struct {
	UserID   string `json:"user_id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// Client talks to the upstream report service.
type Client interface {
	GetFileInfo(ctx context.Context) (FileInfo, error)
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetFileInfo fetches the metadata for the most recently run report.
// Any transport or decoding failure surfaces as ErrNoFileInfo; there
// is no retry.
func (c *client) GetFileInfo(ctx context.Context) (FileInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get_file_info/", nil)
	if err != nil {
		return FileInfo{}, fmt.Errorf("build file info request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FileInfo{}, fmt.Errorf("%w: %v", domain.ErrNoFileInfo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FileInfo{}, fmt.Errorf("%w: upstream returned %d", domain.ErrNoFileInfo, resp.StatusCode)
	}

	var info FileInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return FileInfo{}, fmt.Errorf("%w: decode response: %v", domain.ErrNoFileInfo, err)
	}
	if info.URL == "" {
		return FileInfo{}, fmt.Errorf("%w: empty download url", domain.ErrNoFileInfo)
	}
	return info, nil
}

// Download streams the report file. The caller owns the returned body.
func (c *client) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: upstream returned %d", domain.ErrDownloadFailed, resp.StatusCode)
	}
	return resp.Body, nil
}
