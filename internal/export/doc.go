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

// Package export serializes review records to CSV or JSON and delivers
// them to stdout or a file.
//
// CSV output carries the header Title,Author,Rating,Date,Comment with
// RFC-4180 quoting; JSON output is an array of flat objects with the keys
// title, author, rating, date, and comment. Both formats render the same
// field set, so consumers can switch formats without remapping columns.
//
// Writes are atomic with respect to failure: the complete record set is
// encoded in memory before the sink is opened, so an aborted run never
// leaves a partial file behind.
package export
