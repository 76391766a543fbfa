package export

import (
	"encoding/json"
	"io"
)

// jsonEncoder renders records as a single JSON array of flat objects.
type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}
