package models

import (
	"health-records-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
)

// PatientIDs returns the string entries of the doctor's patients list in
// their stored order. Non-string entries are skipped.
func (d Document) PatientIDs() []string {
	var values []interface{}
	switch list := d[constvars.FieldPatients].(type) {
	case bson.A:
		values = list
	case []interface{}:
		values = list
	case []string:
		return append([]string(nil), list...)
	default:
		return nil
	}

	patientIDs := make([]string, 0, len(values))
	for _, value := range values {
		if patientID, ok := value.(string); ok {
			patientIDs = append(patientIDs, patientID)
		}
	}
	return patientIDs
}
