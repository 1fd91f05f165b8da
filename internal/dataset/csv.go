package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

type csvReader struct {
	delim rune
}

func (csvReader) CanRead(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (r csvReader) Read(filename string, data []byte) (*table.Table, error) {
	delim := r.delim
	if delim == 0 {
		if strings.HasSuffix(strings.ToLower(filename), ".tsv") {
			delim = '\t'
		} else {
			delim = ','
		}
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table.New(), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	cols := make([][]any, len(names))
	for i := range cols {
		cols[i] = []any{}
	}
	row := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		for i := range names {
			// Short records are padded with nulls, empty cells become nulls.
			var cell any
			if i < len(rec) {
				if v := strings.TrimSpace(rec[i]); v != "" {
					cell = v
				}
			}
			cols[i] = append(cols[i], cell)
		}
	}
	t := table.New()
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if err := t.SetColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
