package source

import (
	"encoding/csv"
	"io"

	"github.com/gridpdf/gridpdf/table"
)

// CSV reads comma-separated content from r; the first record names the
// columns. Short records are padded with empty cells.
func CSV(r io.Reader, totalWidth float64) ([]table.Column, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrNoTable
	}
	if err != nil {
		return nil, nil, err
	}
	var content [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		content = append(content, normalizeRow(rec, len(header)))
	}
	return spreadColumns(header, totalWidth), content, nil
}
