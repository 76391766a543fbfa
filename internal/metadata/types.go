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

// Package metadata types describe the statistics collected over a single
// export run. Nothing here is persisted; the summary exists only for the
// end-of-run report on stderr.
package metadata

import "time"

// ExportSummary captures the complete statistics of one export run.
type ExportSummary struct {
	// TotalReviews is the number of review records fetched.
	TotalReviews int

	// Pages is the number of review pages the fetch loop requested.
	Pages int

	// APICalls counts every request made, login included.
	APICalls int

	// OldestReview and NewestReview bound the updatedAt timestamps seen.
	// Zero when no review carried a parseable timestamp.
	OldestReview time.Time
	NewestReview time.Time

	// Duration is the wall-clock time from tracker creation to Summarize.
	Duration time.Duration
}
