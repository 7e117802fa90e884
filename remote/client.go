// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SKEAPI.
//
//  SKEAPI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SKEAPI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SKEAPI.  If not, see <https://www.gnu.org/licenses/>.

package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"skeapi/merror"
	"skeapi/params"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/rs/zerolog/log"
)

const (
	dfltIdleConnTimeoutSecs = 60
	dfltRequestTimeoutSecs  = 30
	errorField              = "error"
)

// Response is a successfully retrieved and decoded API response
type Response struct {

	// URL is the full request URL (including credentials,
	// so it should not be logged)
	URL string

	// Body is the raw JSON body
	Body []byte

	// Data is the decoded JSON object
	Data map[string]any
}

// Requester performs a single API call. It is satisfied by
// *Client and allows replacing the network in tests.
type Requester interface {
	Get(ctx context.Context, method string, req params.Request) (*Response, error)
}

// Client performs HTTP GET requests to the API. Each call is
// exactly one attempt - there are no retries.
type Client struct {
	baseURL string
	client  *http.Client
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get calls `<baseURL><method>` with req encoded as URL query.
// A non-2xx status or an `error` field in the response body
// are reported as merror.TransportError.
func (c *Client) Get(ctx context.Context, method string, req params.Request) (*Response, error) {
	hReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+method, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", method, err)
	}
	hReq.URL.RawQuery = req.URLValues().Encode()
	log.Debug().
		Str("method", method).
		Str("corpname", req.Get(params.KeyCorpname)).
		Msg("sending request to Sketch Engine API")

	t0 := time.Now()
	safeURL := redactedURL(hReq.URL)
	resp, err := c.client.Do(hReq)
	if err != nil {
		return nil, merror.TransportError{Msg: requestFailure(err, safeURL), URL: safeURL}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, merror.TransportError{
			Status: resp.StatusCode,
			URL:    safeURL,
			Msg:    fmt.Sprintf("failed to read response body: %s", err),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, merror.TransportError{
			Status: resp.StatusCode,
			URL:    safeURL,
			Msg:    http.StatusText(resp.StatusCode),
		}
	}
	ans := &Response{URL: hReq.URL.String(), Body: body}
	if err := sonic.Unmarshal(body, &ans.Data); err != nil {
		return nil, merror.TransportError{
			Status: resp.StatusCode,
			URL:    safeURL,
			Msg:    fmt.Sprintf("invalid JSON response: %s", err),
		}
	}
	if srvErr, ok := ans.Data[errorField]; ok {
		return nil, merror.TransportError{
			Status: resp.StatusCode,
			URL:    safeURL,
			Msg:    errorMessage(srvErr),
		}
	}
	log.Debug().
		Str("method", method).
		Float64("procTime", time.Since(t0).Seconds()).
		Msg("data retrieved")
	return ans, nil
}

// redactedURL returns u without its query part which
// carries the API key.
func redactedURL(u *url.URL) string {
	cp := *u
	cp.RawQuery = ""
	cp.User = nil
	return cp.String()
}

// requestFailure describes a failed HTTP round trip.
// The *url.Error message contains the full URL so it
// is rebuilt with the redacted one.
func requestFailure(err error, safeURL string) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("%s %s: %s", urlErr.Op, safeURL, urlErr.Err)
	}
	return err.Error()
}

func errorMessage(v any) string {
	switch tv := v.(type) {
	case string:
		if strings.TrimSpace(tv) != "" {
			return tv
		}
	case nil:
	default:
		return fmt.Sprintf("%v", tv)
	}
	return "server error occurred, no data retrieved"
}

// NewClient creates a client for the API at baseURL.
// Zero timeouts are replaced by defaults.
func NewClient(baseURL string, requestTimeoutSecs, idleConnTimeoutSecs int) *Client {
	if requestTimeoutSecs <= 0 {
		requestTimeoutSecs = dfltRequestTimeoutSecs
	}
	if idleConnTimeoutSecs <= 0 {
		idleConnTimeoutSecs = dfltIdleConnTimeoutSecs
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = time.Duration(idleConnTimeoutSecs) * time.Second
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   time.Duration(requestTimeoutSecs) * time.Second,
			Transport: transport,
		},
	}
}
