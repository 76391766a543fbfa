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

	relayerrors "github.com/bookrelayhq/literal-relay/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// It serves pages out of the Reviews slice using the same offset semantics
// as the real API.
type MockClient struct {
	// Reviews to serve, in order.
	Reviews []Review

	// Account returned by a successful Login.
	Account *Account

	// Errors to return
	LoginError error
	FetchError error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	LoginCalls int
	FetchCalls int
	LastEmail  string
	LastOpts   FetchOptions
	loggedIn   bool
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Reviews: generateTestReviews(),
		Account: &Account{
			Email:  "reader@example.com",
			Handle: "reader",
			Name:   "Avid Reader",
		},
	}
}

// Login implements the Client interface
func (m *MockClient) Login(ctx context.Context, email, password string) (*Account, error) {
	m.LoginCalls++
	m.LastEmail = email

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("could not log in to Literal: Wrong credentials: %w", relayerrors.ErrAuthentication)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", relayerrors.ErrNetworkFailure)
	}

	if m.LoginError != nil {
		return nil, m.LoginError
	}

	m.loggedIn = true
	return m.Account, nil
}

// FetchReviews implements the Client interface
func (m *MockClient) FetchReviews(ctx context.Context, opts FetchOptions) (*ReviewPage, error) {
	m.FetchCalls++
	m.LastOpts = opts

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// A real client has no token before Login succeeds.
	if !m.loggedIn {
		return nil, fmt.Errorf("the Literal API rejected the session token: %w", relayerrors.ErrAuthentication)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", relayerrors.ErrNetworkFailure)
	}

	if m.FetchError != nil {
		return nil, m.FetchError
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	start := opts.Offset
	if start > len(m.Reviews) {
		start = len(m.Reviews)
	}
	end := start + pageSize
	if end > len(m.Reviews) {
		end = len(m.Reviews)
	}

	page := &ReviewPage{
		Reviews: m.Reviews[start:end],
		HasMore: end-start == pageSize,
	}

	return page, nil
}

// generateTestReviews creates sample review data for testing
func generateTestReviews() []Review {
	return []Review{
		{
			Title:     "Warbreaker",
			Authors:   []string{"Brandon Sanderson"},
			Rating:    4,
			UpdatedAt: "2024-02-23T23:47:18.066Z",
			Text:      "",
		},
		{
			Title:     "Bringing Columbia Home",
			Authors:   []string{"Jonathan H. Ward", "Michael D. Leinbach"},
			Rating:    5,
			UpdatedAt: "2024-01-13T23:43:21.383Z",
			Text:      "",
		},
		{
			Title:     "The Dispossessed",
			Authors:   []string{"Ursula K. Le Guin"},
			Rating:    4.5,
			UpdatedAt: "2023-11-02T10:15:00.000Z",
			Text:      "An ambiguous utopia, still sharp fifty years on.",
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithReviews sets specific reviews to serve
func WithReviews(reviews []Review) MockClientOption {
	return func(m *MockClient) {
		m.Reviews = reviews
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithNetworkFailure makes the client simulate a network failure
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// WithFetchError makes the client return a specific error from FetchReviews
func WithFetchError(err error) MockClientOption {
	return func(m *MockClient) {
		m.FetchError = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
