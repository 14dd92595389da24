// Package tabular round-trips graph data through delimited text files:
// comma-separated records, double quotes only where a field needs them, and a
// .csv extension appended for callers that leave it off.
//
// Reading coerces fields back to numbers with a deliberate asymmetry carried
// over from the format's first producer: only digit-only fields become
// numbers, so "-3" survives as the string "-3" while "3" comes back as an
// integer. Downstream consumers rely on this, surprising as it is.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Ext is the extension appended to file names that lack it.
const Ext = ".csv"

// Record is one multi-field row. Fields are strings, int64s or float64s.
type Record []any

// Write serializes records to name (with Ext appended if missing), one record
// per line. The file is created or truncated, and closed on every exit path.
func Write(name string, records []Record) error {
	f, err := os.Create(withExt(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", withExt(name), err)
	}

	w := csv.NewWriter(f)
	for _, record := range records {
		fields := make([]string, len(record))
		for i, v := range record {
			fields[i] = formatField(v)
		}
		if err := w.Write(fields); err != nil {
			_ = f.Close()
			return fmt.Errorf("write record to %s: %w", withExt(name), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", withExt(name), err)
	}
	return f.Close()
}

// Read parses name (with Ext appended if missing). With flat set, each line
// yields its first field as a scalar; otherwise each line yields a Record.
// Fields come back coerced: digit-only becomes int64, digits containing a
// dot become float64, anything else stays a string.
func Read(name string, flat bool) ([]any, error) {
	f, err := os.Open(withExt(name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", withExt(name), err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", withExt(name), err)
	}

	data := make([]any, 0, len(rows))
	for _, row := range rows {
		if flat {
			if len(row) > 0 {
				data = append(data, coerce(row[0]))
			}
			continue
		}
		record := make(Record, len(row))
		for i, field := range row {
			record[i] = coerce(field)
		}
		data = append(data, record)
	}
	return data, nil
}

func withExt(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

func formatField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// coerce applies the digit-only numeric rule. A leading '-' fails the digit
// check, so signed numbers intentionally stay strings.
func coerce(field string) any {
	digits := false
	dot := false
	for _, r := range field {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.':
			dot = true
		default:
			return field
		}
	}
	if !digits {
		return field
	}
	if dot {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return field
		}
		return f
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return field
	}
	return n
}
