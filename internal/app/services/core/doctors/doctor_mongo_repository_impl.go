package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor models.Document) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return models.IDToString(result.InsertedID), nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (models.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, nil
	}
	return repo.findOne(ctx, bson.M{constvars.FieldID: objectID})
}

func (repo *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (models.Document, error) {
	return repo.findOne(ctx, bson.M{constvars.FieldEmail: email})
}

func (repo *DoctorMongoRepository) FindByCredentials(ctx context.Context, email, password string) (models.Document, error) {
	return repo.findOne(ctx, bson.M{
		constvars.FieldEmail:    email,
		constvars.FieldPassword: password,
	})
}

func (repo *DoctorMongoRepository) AppendPatientIDs(ctx context.Context, doctorID string, patientIDs ...string) (*models.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return &models.UpdateResult{}, nil
	}

	filter := bson.M{constvars.FieldID: objectID}
	update := bson.M{"$push": bson.M{constvars.FieldPatients: bson.M{"$each": patientIDs}}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (repo *DoctorMongoRepository) RemovePatientIDFromAll(ctx context.Context, patientID string) (*models.UpdateResult, error) {
	filter := bson.M{constvars.FieldPatients: patientID}
	update := bson.M{"$pull": bson.M{constvars.FieldPatients: patientID}}
	return repo.updateMany(ctx, filter, update)
}

func (repo *DoctorMongoRepository) RemovePatientIDsFromAll(ctx context.Context, patientIDs []string) (*models.UpdateResult, error) {
	filter := bson.M{constvars.FieldPatients: bson.M{"$in": patientIDs}}
	update := bson.M{"$pullAll": bson.M{constvars.FieldPatients: patientIDs}}
	return repo.updateMany(ctx, filter, update)
}

func (repo *DoctorMongoRepository) findOne(ctx context.Context, filter bson.M) (models.Document, error) {
	var doctor models.Document
	err := repo.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doctor, nil
}

func (repo *DoctorMongoRepository) updateMany(ctx context.Context, filter, update bson.M) (*models.UpdateResult, error) {
	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
