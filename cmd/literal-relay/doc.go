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

// Package main implements the literal-relay command-line interface.
// This tool logs in to a Literal.club account, downloads the user's book
// reviews, and serializes them to CSV or JSON.
//
// The CLI supports:
//   - CSV (default) and JSON output formats
//   - Customizable output destinations (stdout or file)
//   - Credentials via flags, environment variables, or interactive prompt
//     with hidden password input
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	literal-relay [flags]
//
// Example:
//
//	literal-relay --email reader@example.com --format json --outfile reviews.json
//
// Exit codes:
//   - 0: Success
//   - 1: General error (unsupported format, output I/O failure)
//   - 2: Authentication error
//   - 3: Network error
package main
