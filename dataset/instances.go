package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// MissingValue is the token the UCI data files use for an unknown value.
const MissingValue = "?"

/*
ReadInstances parses comma-separated records from r, one per line, without
a header row. Blank lines are skipped. When filterMissing is true, records
containing the missing token anywhere are dropped.

Every record must have the width of the first one; a shorter or longer line
yields a DimensionError that names the line.
*/
func ReadInstances(r io.Reader, filterMissing bool, missing string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records []Record
	width := -1
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading instance line %d", line)
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(errors.NewDimensionError("ReadInstances", width, len(row), 1), "line %d", line)
		}
		if filterMissing && contains(row, missing) {
			continue
		}
		records = append(records, Record(row))
	}
	return records, nil
}

func contains(row []string, token string) bool {
	for _, v := range row {
		if v == token {
			return true
		}
	}
	return false
}

// LoadInstances opens path and reads it with ReadInstances. An empty path
// reads from standard input.
func LoadInstances(path string, filterMissing bool, missing string) ([]Record, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening instances file %s", path)
		}
		defer f.Close()
	}
	records, err := ReadInstances(f, filterMissing, missing)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing instances file %s", path)
	}
	return records, nil
}

// WriteInstances writes records to w as comma-separated lines.
func WriteInstances(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for i, r := range records {
		if err := cw.Write(r); err != nil {
			return errors.Wrapf(err, "writing record %d", i)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveInstances writes records to the file at path, replacing it.
func SaveInstances(path string, records []Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating instances file %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing instances file %s", path)
		}
	}()
	return WriteInstances(f, records)
}
