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

// Package credentials resolves the Literal account email and password from
// command-line flags, environment variables, and finally an interactive
// prompt. Password input at the prompt never echoes to the terminal; the
// terminal mode is restored on every exit path, including errors.
package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Credentials is the resolved (email, password) pair. Values are passed to
// the API unchanged; empty values are allowed and fail at login.
type Credentials struct {
	Email    string
	Password string
}

// Resolver collects credentials from flags, the environment, and an
// interactive prompt, in that precedence order.
type Resolver struct {
	// In is the prompt input. Defaults to os.Stdin.
	In io.Reader

	// Out receives prompt text. Defaults to os.Stderr so prompts never
	// mix with exported data on stdout.
	Out io.Writer

	// readPassword reads a password without echoing. Defaults to
	// term.ReadPassword; replaceable in tests.
	readPassword func(fd int) ([]byte, error)

	// reader wraps In; shared across prompts so buffered input is not lost
	// between the email and password reads.
	reader *bufio.Reader
}

// NewResolver creates a Resolver wired to the process's terminal.
func NewResolver() *Resolver {
	return &Resolver{
		In:           os.Stdin,
		Out:          os.Stderr,
		readPassword: term.ReadPassword,
	}
}

// Resolve produces the (email, password) pair. Flag values win over the
// environment variables named by emailEnv and passwordEnv; anything still
// missing is prompted for interactively.
func (r *Resolver) Resolve(flagEmail, flagPassword, emailEnv, passwordEnv string) (Credentials, error) {
	email := flagEmail
	if email == "" && emailEnv != "" {
		email = os.Getenv(emailEnv)
	}
	if email == "" {
		var err error
		email, err = r.promptLine("Enter the email address for your Literal account: ")
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read email: %w", err)
		}
	}

	password := flagPassword
	if password == "" && passwordEnv != "" {
		password = os.Getenv(passwordEnv)
	}
	if password == "" {
		var err error
		password, err = r.promptPassword("Enter the password for your Literal account: ")
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read password: %w", err)
		}
	}

	return Credentials{Email: email, Password: password}, nil
}

// promptLine prints prompt and reads one line of input.
func (r *Resolver) promptLine(prompt string) (string, error) {
	fmt.Fprint(r.Out, prompt)
	return r.readLine()
}

// promptPassword prints prompt and reads a password with echo disabled when
// the input is a terminal. Non-terminal input (pipes, test buffers) falls
// back to a plain line read.
func (r *Resolver) promptPassword(prompt string) (string, error) {
	fmt.Fprint(r.Out, prompt)

	if f, ok := r.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		// term.ReadPassword restores the terminal state itself,
		// including when the read fails.
		pw, err := r.readPassword(int(f.Fd()))
		fmt.Fprintln(r.Out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	return r.readLine()
}

func (r *Resolver) readLine() (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(r.In)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
