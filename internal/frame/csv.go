package frame

import (
	"encoding/csv"
	"fmt"
	"io"
)

// FromCSV reads a header-led CSV into an all-string frame. Every value
// is present initially; Coerce decides what becomes missing.
func FromCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		for i := range header {
			v := ""
			if i < len(record) {
				v = record[i]
			}
			cols[i] = append(cols[i], v)
		}
	}

	f := New()
	for i, name := range header {
		f.Set(name, NewStrings(cols[i]))
	}
	return f, nil
}

// WriteCSV renders the frame as CSV with a header row. Missing values
// render as empty fields.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Names()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(f.names))
	for i := 0; i < f.Len(); i++ {
		for j, name := range f.names {
			record[j] = f.cols[name].Format(i)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
