package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader matches the column order of Literal's own CSV export.
var csvHeader = []string{"Title", "Author", "Rating", "Date", "Comment"}

// csvEncoder renders records as RFC-4180 CSV with a header row.
type csvEncoder struct{}

func (csvEncoder) Encode(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Title, r.Author, formatRating(r.Rating), r.Date, r.Comment}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatRating renders whole-star ratings without a decimal point ("4")
// and half-star ratings with one ("3.5").
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
