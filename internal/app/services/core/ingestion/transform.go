package ingestion

import (
	"fmt"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"strings"
)

// RandomSource draws integers in the closed range [min, max].
// *gofakeit.Faker satisfies it.
type RandomSource interface {
	Number(min, max int) int
}

// project keeps the allow-listed columns that exist in the table, in table
// order, and at most limit rows. A negative limit keeps every row.
func project(source *table, fields []string, limit int) ([]string, []models.Document) {
	allowed := make(map[string]bool, len(fields))
	for _, field := range fields {
		allowed[strings.ToLower(field)] = true
	}

	var indexes []int
	var columns []string
	for i, column := range source.columns {
		if allowed[column] {
			indexes = append(indexes, i)
			columns = append(columns, column)
		}
	}

	rows := source.rows
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	records := make([]models.Document, len(rows))
	for r, row := range rows {
		record := make(models.Document, len(indexes)+4)
		for c, index := range indexes {
			record[columns[c]] = row[index]
		}
		records[r] = record
	}
	return columns, records
}

func enrich(record models.Document, firstNameField, emailDomain string, random RandomSource) error {
	diseases, err := sample(random, Diseases, samplesPerRecord)
	if err != nil {
		return err
	}
	allergies, err := sample(random, Allergies, samplesPerRecord)
	if err != nil {
		return err
	}

	firstName, _ := record[firstNameField].(string)
	record[constvars.FieldDiseases] = diseases
	record[constvars.FieldAllergies] = allergies
	record[constvars.FieldEmail] = fmt.Sprintf("%s@%s", strings.ToLower(firstName), emailDomain)
	record[constvars.FieldDigitalConsent] = true
	return nil
}

// sample draws count distinct entries of list with a partial Fisher-Yates
// shuffle. list itself is left untouched.
func sample(random RandomSource, list []string, count int) ([]string, error) {
	if count > len(list) {
		return nil, exceptions.ErrSampleTooLarge(nil, count, len(list))
	}

	pool := append([]string(nil), list...)
	for i := 0; i < count; i++ {
		j := random.Number(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func containsField(columns []string, field string) bool {
	field = strings.ToLower(field)
	for _, column := range columns {
		if column == field {
			return true
		}
	}
	return false
}
