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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrAuthentication indicates the Literal API rejected the supplied
	// credentials or the login response was missing its session token.
	// Maps to exit code 2.
	ErrAuthentication = errors.New("authentication failed")

	// ErrFetch indicates the review query failed or returned an
	// unexpected response shape.
	ErrFetch = errors.New("review fetch failed")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrUnsupportedFormat indicates an export format other than csv or json.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrOutputWrite indicates the output sink could not be created or written.
	ErrOutputWrite = errors.New("output write failed")
)
