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

package metadata

import "time"

// Tracker collects statistics during an export run. Create one at the start
// of the run and record activity as the fetch loop progresses; Summarize
// produces the final report data.
type Tracker struct {
	startTime    time.Time
	apiCallCount int
	pageCount    int
	reviewCount  int
	oldestReview time.Time
	newestReview time.Time
}

// New creates a new tracker and initializes it with the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// RecordAPICall records that an API request was made.
func (t *Tracker) RecordAPICall() {
	t.apiCallCount++
}

// RecordPage records one fetched page of reviewCount reviews.
func (t *Tracker) RecordPage(reviewCount int) {
	t.pageCount++
	t.reviewCount += reviewCount
}

// RecordReviewDate folds one review's updatedAt timestamp into the date
// range. Unparseable timestamps are skipped; the export keeps the raw
// string regardless.
func (t *Tracker) RecordReviewDate(updatedAt string) {
	ts, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return
	}

	if t.oldestReview.IsZero() || ts.Before(t.oldestReview) {
		t.oldestReview = ts
	}
	if ts.After(t.newestReview) {
		t.newestReview = ts
	}
}

// Summarize captures the run's statistics up to this point.
func (t *Tracker) Summarize() ExportSummary {
	return ExportSummary{
		TotalReviews: t.reviewCount,
		Pages:        t.pageCount,
		APICalls:     t.apiCallCount,
		OldestReview: t.oldestReview,
		NewestReview: t.newestReview,
		Duration:     time.Since(t.startTime),
	}
}
