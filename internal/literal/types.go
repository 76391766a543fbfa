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

// DefaultEndpoint is the public Literal GraphQL endpoint.
const DefaultEndpoint = "https://literal.club/graphql/"

// Review represents one user-authored book review as returned by the
// myReviews query. Records are held in memory only for the duration of a
// single export run.
type Review struct {
	// Title is the reviewed book's title. Always present.
	Title string

	// Authors holds the book's author names in API order.
	Authors []string

	// Rating is the star rating. Literal allows half stars, so this is
	// a float even though most values are whole numbers.
	Rating float64

	// UpdatedAt is the review's last-modified timestamp, kept verbatim
	// as the ISO-8601 string the API returns so exports round-trip exactly.
	UpdatedAt string

	// Text is the optional review comment; empty when the user rated
	// without writing anything.
	Text string
}

// Account describes the authenticated profile returned by the login
// mutation. Used only for the post-login confirmation message.
type Account struct {
	Email  string
	Handle string
	Name   string
}

// ReviewPage represents one page of reviews from the myReviews query.
type ReviewPage struct {
	Reviews []Review

	// HasMore reports whether another page may exist. The API exposes no
	// explicit page info; a full page means the next offset must be tried.
	HasMore bool
}

// FetchOptions configures how reviews are fetched.
type FetchOptions struct {
	// PageSize controls how many reviews to fetch per request.
	// Defaults to 100 if not specified, the query's maximum.
	PageSize int

	// Offset is the number of reviews to skip. Zero fetches from the
	// beginning; add PageSize after each full page for the next one.
	Offset int
}

// Default values for fetch operations
const (
	defaultPageSize = 100
)
