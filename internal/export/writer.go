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
	"bytes"
	"fmt"
	"io"
	"os"

	relayerrors "github.com/bookrelayhq/literal-relay/internal/errors"
)

// Encoder renders a complete record set to a writer. This abstraction
// allows additional output formats to be added without changing the
// delivery logic.
type Encoder interface {
	Encode(w io.Writer, records []Record) error
}

// NewEncoder returns the encoder for the given format.
func NewEncoder(f Format) Encoder {
	if f == FormatJSON {
		return jsonEncoder{}
	}
	return csvEncoder{}
}

// Write serializes records in the given format and delivers them to path.
// An empty path writes to stdout; otherwise the named file is created or
// overwritten. The record set is encoded fully in memory before the sink
// is touched, so a failed run never leaves a partial file behind.
func Write(records []Record, f Format, path string) error {
	var buf bytes.Buffer
	if err := NewEncoder(f).Encode(&buf, records); err != nil {
		return fmt.Errorf("failed to encode records: %v: %w", err, relayerrors.ErrOutputWrite)
	}

	if path == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write to stdout: %v: %w", err, relayerrors.ErrOutputWrite)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v: %w", err, relayerrors.ErrOutputWrite)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %v: %w", err, relayerrors.ErrOutputWrite)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to flush output file: %v: %w", err, relayerrors.ErrOutputWrite)
	}
	return nil
}
