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

import "context"

// Client defines the interface for interacting with Literal's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// Login exchanges the account credentials for a session token and
	// attaches it to all subsequent requests made through this client.
	// The returned Account describes the authenticated profile.
	Login(ctx context.Context, email, password string) (*Account, error)

	// FetchReviews retrieves a page of the authenticated user's reviews.
	// It supports offset-based pagination through the opts.Offset
	// parameter; the page size can be configured via opts.PageSize.
	FetchReviews(ctx context.Context, opts FetchOptions) (*ReviewPage, error)
}
