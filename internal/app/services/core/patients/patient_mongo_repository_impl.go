package patients

import (
	"context"
	"health-records-service/internal/app/contracts"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient models.Document) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return models.IDToString(result.InsertedID), nil
}

func (repo *PatientMongoRepository) CreatePatients(ctx context.Context, patients []models.Document) ([]string, error) {
	if len(patients) == 0 {
		return []string{}, nil
	}

	documents := make([]interface{}, len(patients))
	for i, patient := range patients {
		documents[i] = patient
	}

	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	patientIDs := make([]string, len(result.InsertedIDs))
	for i, insertedID := range result.InsertedIDs {
		patientIDs[i] = models.IDToString(insertedID)
	}
	return patientIDs, nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (models.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Document
	err = repo.Collection.FindOne(ctx, bson.M{constvars.FieldID: objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return patient, nil
}

// FindByIDs returns the stored patients among patientIDs in store order.
// Malformed ids are skipped.
func (repo *PatientMongoRepository) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Document, error) {
	objectIDs := toObjectIDs(patientIDs)
	if len(objectIDs) == 0 {
		return []models.Document{}, nil
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{constvars.FieldID: bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	patients := make([]models.Document, 0, len(objectIDs))
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

// UpdateFields sets the given fields on one patient. With no fields it only
// reports whether the patient exists.
func (repo *PatientMongoRepository) UpdateFields(ctx context.Context, patientID string, fields models.Document) (*models.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return &models.UpdateResult{}, nil
	}
	filter := bson.M{constvars.FieldID: objectID}

	if len(fields) == 0 {
		count, err := repo.Collection.CountDocuments(ctx, filter)
		if err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		return &models.UpdateResult{MatchedCount: count}, nil
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (repo *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return 0, nil
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{constvars.FieldID: objectID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (repo *PatientMongoRepository) DeleteByIDs(ctx context.Context, patientIDs []string) (int64, error) {
	objectIDs := toObjectIDs(patientIDs)
	if len(objectIDs) == 0 {
		return 0, nil
	}

	result, err := repo.Collection.DeleteMany(ctx, bson.M{constvars.FieldID: bson.M{"$in": objectIDs}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func toObjectIDs(ids []string) []primitive.ObjectID {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs
}
