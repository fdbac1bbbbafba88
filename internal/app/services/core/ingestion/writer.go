package ingestion

import (
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/exceptions"
	"os"

	"github.com/goccy/go-json"
)

// writeJSON replaces the file at path with records as a 4-space indented
// JSON array.
func writeJSON(path string, records []models.Document) error {
	if records == nil {
		records = []models.Document{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return exceptions.ErrWriteOutputFile(err, path)
	}
	return nil
}

func readJSON(path string) ([]models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrOpenSourceFile(err, path)
	}

	var records []models.Document
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return records, nil
}
