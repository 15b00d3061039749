/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package client provides functions for interacting with the HackMD API
// and the data structures for its responses
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrNoToken is returned when an authorized request is made without an API token
var ErrNoToken = errors.New("no API token configured")

// ErrContentTypeMismatch is returned when the server replies with an unexpected Content-Type
var ErrContentTypeMismatch = errors.New("content type mismatch")

// HTTPError represents an HTTP error response from the server
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	var summary string
	switch e.StatusCode {
	case http.StatusUnauthorized:
		summary = "Invalid or expired API token"
	case http.StatusForbidden:
		summary = "You don't have permission to perform this action"
	case http.StatusNotFound:
		summary = "The requested resource was not found"
	default:
		summary = fmt.Sprintf("response %d", e.StatusCode)
	}

	if e.Message == "" {
		return summary
	}

	return fmt.Sprintf(`%s "%s"`, summary, e.Message)
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a 403 Forbidden error
func (e *HTTPError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound returns true if the error is a 404 Not Found error
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

var contentTypeApplicationJSON = "application/json"

// requestOptions contains options for requests
type requestOptions struct {
	HTTPClient *http.Client
	// ExpectedContentType is the Content-Type that the client is expecting from the server
	ExpectedContentType *string
}

const (
	// clientRateLimitPerSecond is the max requests per second the client will make
	clientRateLimitPerSecond = 5
	// clientRateLimitBurst is the burst capacity for rate limiting
	clientRateLimitBurst = 20
	// clientTimeout bounds a single request including reading the body
	clientTimeout = 30 * time.Second
)

// rateLimitedTransport wraps an http.RoundTripper with rate limiting
type rateLimitedTransport struct {
	transport http.RoundTripper
	limiter   *rate.Limiter
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.transport.RoundTrip(req)
}

// NewRateLimitedHTTPClient creates an HTTP client with rate limiting and a timeout
func NewRateLimitedHTTPClient() *http.Client {
	interval := time.Second / time.Duration(clientRateLimitPerSecond)

	transport := &rateLimitedTransport{
		transport: http.DefaultTransport,
		limiter:   rate.NewLimiter(rate.Every(interval), clientRateLimitBurst),
	}
	return &http.Client{
		Transport: transport,
		Timeout:   clientTimeout,
	}
}

func getHTTPClient(ctx context.HackMDCtx, options *requestOptions) *http.Client {
	if options != nil && options.HTTPClient != nil {
		return options.HTTPClient
	}

	if ctx.HTTPClient != nil {
		return ctx.HTTPClient
	}

	return &http.Client{Timeout: clientTimeout}
}

func getExpectedContentType(options *requestOptions) string {
	if options != nil && options.ExpectedContentType != nil {
		return *options.ExpectedContentType
	}

	return contentTypeApplicationJSON
}

func getReq(ctx context.HackMDCtx, path, method, body string) (*http.Request, error) {
	endpoint := strings.TrimRight(ctx.APIEndpoint, "/") + path
	req, err := http.NewRequest(method, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "constructing http request")
	}

	req.Header.Set("User-Agent", fmt.Sprintf("hackmd-cli/%s", ctx.Version))
	req.Header.Set("Accept", contentTypeApplicationJSON)
	if body != "" {
		req.Header.Set("Content-Type", contentTypeApplicationJSON)
	}

	if ctx.APIToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", ctx.APIToken))
	}

	return req, nil
}

// errorBody is the shape of error replies from the API
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// checkRespErr returns an *HTTPError if the response has an error status.
func checkRespErr(res *http.Response) error {
	if res.StatusCode < 400 {
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "server responded with %d but client could not read the response body", res.StatusCode)
	}

	msg := strings.TrimSpace(string(body))

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}

	return &HTTPError{
		StatusCode: res.StatusCode,
		Message:    msg,
	}
}

// hasBody reports whether a successful response is expected to carry a payload
func hasBody(res *http.Response) bool {
	if res.StatusCode == http.StatusNoContent || res.StatusCode == http.StatusAccepted {
		return false
	}

	return res.ContentLength != 0
}

func checkContentType(res *http.Response, options *requestOptions) error {
	if !hasBody(res) {
		return nil
	}

	expected := getExpectedContentType(options)

	got := res.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(got)
	if err != nil || mediaType != expected {
		return errors.Wrapf(ErrContentTypeMismatch, "got: '%s' want: '%s'. Did you configure your endpoint correctly?", got, expected)
	}

	return nil
}

// doReq does a http request to the given path in the api endpoint
func doReq(ctx context.HackMDCtx, method, path, body string, options *requestOptions) (*http.Response, error) {
	req, err := getReq(ctx, path, method, body)
	if err != nil {
		return nil, errors.Wrap(err, "getting request")
	}
	req.Header.Set("Accept", getExpectedContentType(options))

	log.Debug("HTTP %s %s\n", method, path)

	hc := getHTTPClient(ctx, options)
	res, err := hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "making http request")
	}

	log.Debug("HTTP %s\n", res.Status)

	if err = checkRespErr(res); err != nil {
		res.Body.Close()
		return nil, err
	}

	if err = checkContentType(res, options); err != nil {
		res.Body.Close()
		return nil, errors.Wrap(err, "unexpected Content-Type")
	}

	return res, nil
}

// doAuthorizedReq does a http request to the given path in the api endpoint with
// the bearer token. The given path should include the preceding slash.
func doAuthorizedReq(ctx context.HackMDCtx, method, path, body string, options *requestOptions) (*http.Response, error) {
	if ctx.APIToken == "" {
		return nil, ErrNoToken
	}

	return doReq(ctx, method, path, body, options)
}

// decodeResp decodes the JSON body of a response into v and closes the body.
// An empty body leaves v untouched.
func decodeResp(res *http.Response, v interface{}) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading the response body")
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "unmarshalling the payload")
	}

	return nil
}
