// Copyright 2025 BookRelay, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package literal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shurcooL/graphql"

	"github.com/bookrelayhq/literal-relay/internal/apierror"
	relayerrors "github.com/bookrelayhq/literal-relay/internal/errors"
	"github.com/bookrelayhq/literal-relay/pkg/version"
)

// requestTimeout bounds every individual API request. The exporter has no
// retry logic, so a hung connection would otherwise stall the run forever.
const requestTimeout = 30 * time.Second

// maxResponseSize limits API response bodies to prevent excessive memory usage.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// GraphQLClient implements the Literal Client interface using the GraphQL API.
// It is configured with:
//   - A 30-second per-request timeout
//   - Response size limiting to prevent memory issues
//   - A User-Agent header identifying the tool
//   - Bearer authentication installed by Login and attached to all
//     subsequent requests
type GraphQLClient struct {
	client    *graphql.Client
	transport *authTransport
	inspector apierror.Inspector
}

// NewGraphQLClient creates a new Literal GraphQL client for the given
// endpoint. The client is unauthenticated until Login succeeds.
func NewGraphQLClient(endpoint string) *GraphQLClient {
	transport := &authTransport{base: http.DefaultTransport}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		transport: transport,
		inspector: apierror.NewErrorChainInspector(apierror.NewInspector()),
	}
}

// Login executes the login mutation and installs the returned session token
// into the client's transport. A response without a token is treated as an
// authentication failure even when the API reports no explicit error.
func (c *GraphQLClient) Login(ctx context.Context, email, password string) (*Account, error) {
	var mutation struct {
		Login struct {
			Token   graphql.String
			Email   graphql.String
			Profile struct {
				ID     graphql.String `graphql:"id"`
				Handle graphql.String
				Name   graphql.String
			}
		} `graphql:"login(email: $email, password: $password)"`
	}

	variables := map[string]interface{}{
		"email":    graphql.String(email),
		"password": graphql.String(password),
	}

	if err := c.client.Mutate(ctx, &mutation, variables); err != nil {
		return nil, c.mapLoginError(err)
	}

	token := string(mutation.Login.Token)
	if token == "" {
		return nil, fmt.Errorf("login response did not include a session token: %w", relayerrors.ErrAuthentication)
	}
	c.transport.setToken(token)

	return &Account{
		Email:  string(mutation.Login.Email),
		Handle: string(mutation.Login.Profile.Handle),
		Name:   string(mutation.Login.Profile.Name),
	}, nil
}

// FetchReviews fetches a page of the authenticated user's reviews. It
// supports offset-based pagination via opts.Offset and configurable page
// sizes through opts.PageSize. The API exposes no explicit page info, so a
// full page sets HasMore and the caller probes the next offset.
func (c *GraphQLClient) FetchReviews(ctx context.Context, opts FetchOptions) (*ReviewPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var query struct {
		MyReviews []struct {
			Data struct {
				Rating    graphql.Float
				UpdatedAt graphql.String
				Text      graphql.String
				Book      struct {
					Title   graphql.String
					Authors []struct {
						Name graphql.String
					}
				}
			}
		} `graphql:"myReviews(limit: $limit, offset: $offset)"`
	}

	variables := map[string]interface{}{
		"limit":  graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 100
		"offset": graphql.Int(int32(opts.Offset)),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapFetchError(err)
	}

	// Convert the response to our domain model
	page := &ReviewPage{
		Reviews: make([]Review, 0, len(query.MyReviews)),
		HasMore: len(query.MyReviews) == pageSize,
	}

	for _, node := range query.MyReviews {
		review := Review{
			Title:     string(node.Data.Book.Title),
			Rating:    float64(node.Data.Rating),
			UpdatedAt: string(node.Data.UpdatedAt),
			Text:      string(node.Data.Text),
			Authors:   make([]string, 0, len(node.Data.Book.Authors)),
		}
		for _, author := range node.Data.Book.Authors {
			review.Authors = append(review.Authors, string(author.Name))
		}
		page.Reviews = append(page.Reviews, review)
	}

	return page, nil
}

// mapLoginError maps login failures to our domain errors. Anything the API
// itself reports (wrong credentials, unknown user) is an authentication
// failure; only transport-level problems classify as network errors.
func (c *GraphQLClient) mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to the Literal API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("could not log in to Literal: %v: %w", err, relayerrors.ErrAuthentication)
}

// mapFetchError maps review query failures to our domain errors with
// actionable messages.
func (c *GraphQLClient) mapFetchError(err error) error {
	if err == nil {
		return nil
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("the Literal API rejected the session token. Please log in again: %w", relayerrors.ErrAuthentication)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to the Literal API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("failed to fetch reviews: %v: %w", err, relayerrors.ErrFetch)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds the session bearer header and safety limits to HTTP
// requests. The token is empty until Login installs it.
type authTransport struct {
	mu    sync.Mutex
	token string
	base  http.RoundTripper
}

// setToken installs the session token obtained at login.
func (t *authTransport) setToken(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	t.mu.Lock()
	token := t.token
	t.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Add user agent for identification
	req.Header.Set("User-Agent", fmt.Sprintf("literal-relay/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}
