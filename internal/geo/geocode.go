// Package geo wraps the third-party reverse-geocoding API. Lookups are
// best-effort: any failure leaves the caller with the raw address string.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var ErrDisabled = errors.New("geo: geocoding not configured")

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 8 * time.Second}}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Suburb  string `json:"suburb"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
	} `json:"address"`
}

// Reverse resolves a lat/lng into a human-readable locality string.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	if c == nil || c.BaseURL == "" {
		return "", ErrDisabled
	}
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("format", "jsonv2")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var r reverseResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", err
	}
	locality := firstNonEmpty(r.Address.Suburb, r.Address.City, r.Address.Town, r.Address.Village)
	if locality == "" {
		return r.DisplayName, nil
	}
	if r.Address.State != "" {
		return locality + ", " + r.Address.State, nil
	}
	return locality, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
