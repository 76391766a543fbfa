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

// Package literal implements the client for Literal.club's GraphQL API.
// It covers the two operations the exporter needs: the login mutation,
// which exchanges account credentials for a bearer token, and the
// myReviews query, which pages through the authenticated user's book
// reviews with limit/offset pagination.
//
// The session token obtained at login is installed into the client's
// transport and attached to every subsequent request; callers never see
// or handle the token themselves.
package literal
