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

package export

import (
	"strings"

	"github.com/bookrelayhq/literal-relay/internal/literal"
)

// Record is one review flattened for export. The same field set backs both
// the CSV columns and the JSON object keys, so the two formats always
// carry identical data.
type Record struct {
	Title   string  `json:"title"`
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
	Comment string  `json:"comment"`
}

// FromReview flattens an API review into an export record. Multiple
// authors are joined with ", " in source order; a missing comment becomes
// an empty field.
func FromReview(r literal.Review) Record {
	return Record{
		Title:   r.Title,
		Author:  strings.Join(r.Authors, ", "),
		Rating:  r.Rating,
		Date:    r.UpdatedAt,
		Comment: r.Text,
	}
}

// FromReviews flattens a review sequence, preserving order. The result is
// never nil so an empty set still serializes as [] rather than null.
func FromReviews(reviews []literal.Review) []Record {
	records := make([]Record, 0, len(reviews))
	for _, r := range reviews {
		records = append(records, FromReview(r))
	}
	return records
}
