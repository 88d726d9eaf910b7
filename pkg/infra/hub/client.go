package hub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/spatiallm3d/sampleset/pkg/domain/interfaces"
	"github.com/spatiallm3d/sampleset/pkg/domain/model"
	"github.com/spatiallm3d/sampleset/pkg/domain/types"
)

// treeEntry mirrors the Hub repository tree API response
type treeEntry struct {
	Type string `json:"type"`
	OID  string `json:"oid"`
	Size int64  `json:"size"`
	Path string `json:"path"`
	LFS  *struct {
		OID         string `json:"oid"`
		Size        int64  `json:"size"`
		PointerSize int    `json:"pointerSize"`
	} `json:"lfs,omitempty"`
}

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the Hub client
type Option func(*client)

// WithBaseURL overrides the Hub endpoint, mainly for tests and mirrors
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithToken sets the access token sent as Bearer authorization
func WithToken(token string) Option {
	return func(c *client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// New creates a HuggingFace Hub client for dataset repositories
func New(opts ...Option) interfaces.HubClient {
	c := &client{
		baseURL:    types.DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListFiles returns all files in the dataset repository at the given revision
func (c *client) ListFiles(ctx context.Context, repoID, revision string) ([]model.CatalogEntry, error) {
	listURL := c.baseURL + "/api/datasets/" + repoID + "/tree/" + url.PathEscape(revision) + "?recursive=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create listing request", goerr.V("url", listURL))
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository tree",
			goerr.V("repo", repoID),
			goerr.V("revision", revision),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status from repository tree",
			goerr.V("repo", repoID),
			goerr.V("status", resp.StatusCode),
		)
	}

	var entries []treeEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository tree", goerr.V("repo", repoID))
	}

	var catalog []model.CatalogEntry
	for _, e := range entries {
		if e.Type != "file" {
			continue
		}

		size := e.Size
		// LFS entries report the pointer size at the top level
		if e.LFS != nil {
			size = e.LFS.Size
		}

		catalog = append(catalog, model.CatalogEntry{
			Path: e.Path,
			Size: size,
			OID:  e.OID,
		})
	}

	return catalog, nil
}

// DownloadFile streams one repository file into destPath and returns the
// number of bytes written
func (c *client) DownloadFile(ctx context.Context, repoID, revision, path, destPath string) (int64, error) {
	downloadURL := c.baseURL + "/datasets/" + repoID + "/resolve/" + url.PathEscape(revision) + "/" + escapePath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create download request", goerr.V("url", downloadURL))
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to download file",
			goerr.V("repo", repoID),
			goerr.V("path", path),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, goerr.New("unexpected status for file download",
			goerr.V("repo", repoID),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
		)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, goerr.Wrap(err, "failed to create parent directories", goerr.V("dest", destPath))
	}

	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file", goerr.V("dest", destPath))
	}

	written, err := io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(destPath)
		return 0, goerr.Wrap(err, "failed to write file content", goerr.V("dest", destPath))
	}

	if err := f.Close(); err != nil {
		return 0, goerr.Wrap(err, "failed to close destination file", goerr.V("dest", destPath))
	}

	return written, nil
}

func (c *client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// escapePath escapes each segment of a repository path while keeping the
// separators intact
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
