// Package csvfile writes extracted rows as header-less delimited text.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
)

const timestampLayout = "2006-01-02 15:04:05.999999"

// RowSource is satisfied by *sqlx.Rows.
type RowSource interface {
	Next() bool
	SliceScan() ([]interface{}, error)
	Err() error
}

// Write truncates path and writes one record per row, in cursor order.
// A partially written file is left in place when writing fails.
func Write(path string, rows RowSource, delimiter rune) (count int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(file)
	w.Comma = delimiter
	defer w.Flush()
	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			return count, fmt.Errorf("scan row %d: %w", count+1, err)
		}
		if err := w.Write(lo.Map(row, func(v interface{}, _ int) string { return Format(v) })); err != nil {
			return count, fmt.Errorf("write row %d to %q: %w", count+1, path, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("read rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return count, fmt.Errorf("flush %q: %w", path, err)
	}
	return count, nil
}

// Format renders a driver value the way it appears in the export.
func Format(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		if _, offset := v.Zone(); offset != 0 {
			return v.Format(timestampLayout + "-07:00")
		}
		return v.Format(timestampLayout)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Read returns every record of a file produced by Write.
func Read(path string, delimiter rune) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
