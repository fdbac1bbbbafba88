package models

import "health-records-service/internal/pkg/constvars"

// WithoutID returns the fields of a partial update that may be written with
// $set. The immutable _id is never part of it.
func (d Document) WithoutID() Document {
	fields := make(Document, len(d))
	for key, value := range d {
		if key == constvars.FieldID {
			continue
		}
		fields[key] = value
	}
	return fields
}
