package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-less record of either collection.
type Document bson.M

func (d Document) ID() string {
	return IDToString(d["_id"])
}

// ConvertIntoResponse returns a copy of the document in which every
// ObjectID, at any depth, is replaced by its hex string.
func (d Document) ConvertIntoResponse() Document {
	response := make(Document, len(d))
	for key, value := range d {
		response[key] = convertValue(value)
	}
	return response
}

func convertValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case Document:
		return v.ConvertIntoResponse()
	case bson.M:
		return Document(v).ConvertIntoResponse()
	case map[string]interface{}:
		return Document(v).ConvertIntoResponse()
	case bson.D:
		return Document(v.Map()).ConvertIntoResponse()
	case bson.A:
		return convertSlice(v)
	case []interface{}:
		return convertSlice(v)
	default:
		return value
	}
}

func convertSlice(values []interface{}) []interface{} {
	converted := make([]interface{}, len(values))
	for i, value := range values {
		converted[i] = convertValue(value)
	}
	return converted
}

// IDToString renders an inserted or stored _id the way clients see it.
func IDToString(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
