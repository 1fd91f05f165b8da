package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/BoostMeHQ/boostme-cli/internal/table"
)

type parquetReader struct{}

func (parquetReader) CanRead(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".parquet")
}

// Read decodes a flat (non-nested) parquet file into a table. Nested schemas
// fail the load with no partial result.
func (parquetReader) Read(filename string, data []byte) (*table.Table, error) {
	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	fields := f.Schema().Fields()
	for _, fld := range fields {
		if !fld.Leaf() {
			return nil, fmt.Errorf("parquet column %q: nested schemas are not supported", fld.Name())
		}
	}
	cols := make([][]any, len(fields))
	for i := range cols {
		cols[i] = []any{}
	}
	for _, rg := range f.RowGroups() {
		if err := readRowGroup(rg, fields, cols); err != nil {
			return nil, err
		}
	}
	t := table.New()
	for i, fld := range fields {
		if err := t.SetColumn(fld.Name(), cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func readRowGroup(rg parquet.RowGroup, fields []parquet.Field, cols [][]any) error {
	rows := rg.Rows()
	defer rows.Close()
	buf := make([]parquet.Row, 64)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			vals := make([]any, len(fields))
			for _, v := range row {
				ci := v.Column()
				if ci >= 0 && ci < len(fields) {
					vals[ci] = decodeValue(v, fields[ci])
				}
			}
			for i := range cols {
				cols[i] = append(cols[i], vals[i])
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read parquet rows: %w", err)
		}
	}
}

// decodeValue converts one parquet value to its table cell. Timestamps and
// dates come back as time.Time in UTC; everything else maps to the obvious
// Go type.
func decodeValue(v parquet.Value, field parquet.Field) any {
	if v.IsNull() {
		return nil
	}
	if lt := field.Type().LogicalType(); lt != nil {
		switch {
		case lt.Timestamp != nil:
			unit := lt.Timestamp.Unit
			switch {
			case unit.Millis != nil:
				return time.UnixMilli(v.Int64()).UTC()
			case unit.Micros != nil:
				return time.UnixMicro(v.Int64()).UTC()
			default:
				return time.Unix(0, v.Int64()).UTC()
			}
		case lt.Date != nil:
			return time.Unix(0, 0).UTC().AddDate(0, 0, int(v.Int32()))
		}
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return v.String()
	}
}
