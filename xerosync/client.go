package xerosync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

// fetcher is what the engine needs from the remote side: one authenticated GET
// for a collection path, returning the decoded top-level payload object.
type fetcher interface {
	getCollection(ctx context.Context, path string) (map[string]json.RawMessage, error)
}

type xeroClient struct {
	baseURL  string
	tenantID string
	bearer   string
	http     *http.Client
}

func newXeroClient(cfg config.XeroConfig) *xeroClient {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &xeroClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		tenantID: cfg.TenantID,
		bearer:   cfg.BearerToken,
		http:     &http.Client{Timeout: timeout},
	}
}

// getCollection issues a single GET for the configured collection path. The
// remote API is assumed to return the whole collection in one response; there
// is no pagination and no retry at this layer.
func (c *xeroClient) getCollection(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xero-tenant-id", c.tenantID)
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// A connection dropped mid-body is a transport fault, not a payload
		// the remote actually sent.
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("xero api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedPayload, err)
	}
	return payload, nil
}
