package ingestion

import (
	"encoding/csv"
	"fmt"
	"health-records-service/internal/pkg/exceptions"
	"io"
	"os"
	"strings"
)

// table is a CSV file held in memory. Column names are lower-cased and every
// row has exactly one cell per column. Short rows are padded with empty
// cells; rows wider than the header are rejected.
type table struct {
	columns []string
	rows    [][]string
}

func readCSV(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, exceptions.ErrOpenSourceFile(err, path)
	}
	defer file.Close()

	result, err := parseCSV(file)
	if err != nil {
		return nil, exceptions.ErrReadSourceFile(err, path)
	}
	return result, nil
}

func parseCSV(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, column := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(column))
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(columns), len(record))
		}

		row := make([]string, len(columns))
		copy(row, record)
		rows = append(rows, row)
	}

	return &table{columns: columns, rows: rows}, nil
}
