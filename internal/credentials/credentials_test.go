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

package credentials

import (
	"bytes"
	"strings"
	"testing"
)

func newTestResolver(input string) (*Resolver, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Resolver{
		In:  strings.NewReader(input),
		Out: out,
	}, out
}

func TestResolveFlagsTakePrecedence(t *testing.T) {
	t.Setenv("TEST_LITERAL_EMAIL", "env@example.com")
	t.Setenv("TEST_LITERAL_PASSWORD", "env-secret")

	r, out := newTestResolver("")
	creds, err := r.Resolve("flag@example.com", "flag-secret", "TEST_LITERAL_EMAIL", "TEST_LITERAL_PASSWORD")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "flag@example.com" {
		t.Errorf("Email = %q, want flag value", creds.Email)
	}
	if creds.Password != "flag-secret" {
		t.Errorf("Password = %q, want flag value", creds.Password)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected prompt output: %q", out.String())
	}
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv("TEST_LITERAL_EMAIL", "env@example.com")
	t.Setenv("TEST_LITERAL_PASSWORD", "env-secret")

	r, _ := newTestResolver("")
	creds, err := r.Resolve("", "", "TEST_LITERAL_EMAIL", "TEST_LITERAL_PASSWORD")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "env@example.com" {
		t.Errorf("Email = %q, want env value", creds.Email)
	}
	if creds.Password != "env-secret" {
		t.Errorf("Password = %q, want env value", creds.Password)
	}
}

func TestResolvePromptsForMissingValues(t *testing.T) {
	r, out := newTestResolver("prompted@example.com\nprompted-secret\n")
	creds, err := r.Resolve("", "", "UNSET_EMAIL_VAR", "UNSET_PASSWORD_VAR")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "prompted@example.com" {
		t.Errorf("Email = %q, want prompted value", creds.Email)
	}
	if creds.Password != "prompted-secret" {
		t.Errorf("Password = %q, want prompted value", creds.Password)
	}
	if !strings.Contains(out.String(), "email address") {
		t.Errorf("missing email prompt, got %q", out.String())
	}
	if !strings.Contains(out.String(), "password") {
		t.Errorf("missing password prompt, got %q", out.String())
	}
}

func TestResolvePromptsPasswordOnly(t *testing.T) {
	r, out := newTestResolver("only-password\n")
	creds, err := r.Resolve("flag@example.com", "", "", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "flag@example.com" {
		t.Errorf("Email = %q, want flag value", creds.Email)
	}
	if creds.Password != "only-password" {
		t.Errorf("Password = %q, want prompted value", creds.Password)
	}
	if strings.Contains(out.String(), "email address") {
		t.Error("email should not have been prompted")
	}
}

func TestResolveEmptyPromptInputPassesThrough(t *testing.T) {
	// Empty input is not an error here; authentication fails downstream.
	r, _ := newTestResolver("\n\n")
	creds, err := r.Resolve("", "", "", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "" || creds.Password != "" {
		t.Errorf("got %+v, want empty credentials", creds)
	}
}

func TestResolveStripsCRLF(t *testing.T) {
	r, _ := newTestResolver("user@example.com\r\nsecret\r\n")
	creds, err := r.Resolve("", "", "", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if creds.Email != "user@example.com" {
		t.Errorf("Email = %q, want CRLF stripped", creds.Email)
	}
	if creds.Password != "secret" {
		t.Errorf("Password = %q, want CRLF stripped", creds.Password)
	}
}
