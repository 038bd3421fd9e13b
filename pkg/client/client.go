// Copyright (C) 2026 Teuthida Labs
//
// This file is part of kraken-go.
//
// kraken-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kraken-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with kraken-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	krakengo "github.com/teuthida-labs/kraken-go"
	"github.com/teuthida-labs/kraken-go/pkg/api"
	"github.com/teuthida-labs/kraken-go/pkg/auth"
	"github.com/teuthida-labs/kraken-go/pkg/signer"
)

// DefaultBaseURL is the REST API domain.
const DefaultBaseURL = "https://api.kraken.com"

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// substitute stubs. Implementations must be safe for concurrent use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client dispatches public and private endpoint requests.
//
// A Client constructed without credentials can only query public endpoints.
// A Client is safe for concurrent use: all private requests issued through
// it draw from one strictly increasing nonce sequence, and the credentials
// are read-only after construction.
type Client struct {
	http      Doer
	creds     *auth.Credentials
	signer    signer.RequestSigner
	baseURL   string
	userAgent string
	nonces    nonceSource
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials equips the client for private endpoints.
func WithCredentials(creds *auth.Credentials) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithHTTPClient replaces the HTTP transport. The default is
// http.DefaultClient.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithBaseURL overrides the API domain, e.g. to target a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithSigner replaces the request signer.
func WithSigner(s signer.RequestSigner) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithUserAgent sets the User-Agent header value, conventionally
// "<product>/<product-version>".
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New constructs a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      http.DefaultClient,
		signer:    signer.NewDefaultSigner(),
		baseURL:   DefaultBaseURL,
		userAgent: krakengo.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send dispatches the request and decodes the result into Resp.
//
// Public requests are sent as GET with the parameters in the query string.
// Private requests draw a fresh nonce, are signed over the exact form body
// transmitted, and are sent as POST with the API-Key and API-Sign headers;
// without credentials they fail with ErrMissingCredentials before any
// transport call.
//
// A non-empty service error list inside a decoded envelope is not a failure
// of Send: the envelope is returned for the caller to judge. Send fails only
// on missing credentials, signing, transport or decode problems.
func Send[Resp any](ctx context.Context, c *Client, req api.Requester) (*api.Response[Resp], error) {
	r := req.Build()

	var (
		httpReq *http.Request
		err     error
	)
	if r.IsPrivate() {
		httpReq, err = c.newPrivateRequest(ctx, r)
	} else {
		httpReq, err = c.newPublicRequest(ctx, r)
	}
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: httpReq.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: httpReq.URL.String(), Err: err}
	}

	return api.Decode[Resp](resp.StatusCode, raw)
}

// SendValue dispatches the request leaving the result as raw JSON.
func (c *Client) SendValue(ctx context.Context, req api.Requester) (*api.ResponseValue, error) {
	return Send[json.RawMessage](ctx, c, req)
}

func (c *Client) newPublicRequest(ctx context.Context, r api.Request) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+r.Path(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.URL.RawQuery = r.EncodeParams()
	return httpReq, nil
}

func (c *Client) newPrivateRequest(ctx context.Context, r api.Request) (*http.Request, error) {
	if c.creds == nil {
		return nil, ErrMissingCredentials
	}

	// The nonce is consumed here, before transmission. Cancelling the
	// request afterwards spends it; the service tolerates gaps, it only
	// requires monotonicity.
	nonce := c.nonces.Next()
	params := r.Params()
	params.Set("nonce", strconv.FormatUint(nonce, 10))
	body := params.Encode()

	apiSign, err := c.signer.Sign(r.Path(), nonce, []byte(body), c.creds)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+r.Path(), strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("API-Key", c.creds.APIKey())
	httpReq.Header.Set("API-Sign", apiSign)
	return httpReq, nil
}
