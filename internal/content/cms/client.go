// Package cms is the read-only client for the headless CMS. Documents are
// fetched by type and UID over a JSON HTTP API. A client without
// credentials is deliberately functional: every call reports
// ErrNotConfigured so callers can fall through to the database backend.
package cms

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

var (
	ErrNotConfigured = errors.New("cms: access token not configured")
	ErrNotFound      = errors.New("cms: document not found")
)

// Document is a structured content record authored in the CMS.
type Document struct {
	ID                   string                     `json:"id"`
	UID                  string                     `json:"uid"`
	Type                 string                     `json:"type"`
	FirstPublicationDate string                     `json:"first_publication_date"`
	LastPublicationDate  string                     `json:"last_publication_date"`
	Data                 map[string]json.RawMessage `json:"data"`
}

// Filter narrows GetAllByType. Equality on a data field, or exclusion of a
// document id (used to drop the current property from "similar" lists).
type Filter struct {
	Field    string
	Equals   string
	NotDocID string
}

type Options struct {
	Limit     int
	Orderings string // e.g. "first_publication_date desc"
	Filters   []Filter
}

type Client struct {
	BaseURL     string
	AccessToken string
	HTTP        *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:     baseURL,
		AccessToken: token,
		HTTP:        &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client can reach the CMS at all.
func (c *Client) Configured() bool { return c != nil && c.BaseURL != "" && c.AccessToken != "" }

// GetByUID fetches a single document by type and UID.
func (c *Client) GetByUID(ctx context.Context, docType, uid string) (*Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("type", docType)
	q.Set("uid", uid)
	docs, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

// GetAllByType fetches every document of a type, subject to Options.
func (c *Client) GetAllByType(ctx context.Context, docType string, opts Options) ([]Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	q := url.Values{}
	q.Set("type", docType)
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Orderings != "" {
		q.Set("orderings", opts.Orderings)
	}
	for _, f := range opts.Filters {
		switch {
		case f.NotDocID != "":
			q.Add("not_id", f.NotDocID)
		case f.Field != "":
			q.Add("filter", f.Field+"="+f.Equals)
		}
	}
	return c.query(ctx, q)
}

func (c *Client) query(ctx context.Context, q url.Values) ([]Document, error) {
	q.Set("access_token", c.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/documents?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cms: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	var out struct {
		Results []Document `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
