package routers

import (
	"context"
	"health-records-service/internal/app/models"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore mimics the two collections closely enough to drive the HTTP
// stack without a database.
type memoryStore struct {
	mu        sync.Mutex
	doctors   map[string]models.Document
	patients  map[string]models.Document
	insertErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		doctors:  map[string]models.Document{},
		patients: map[string]models.Document{},
	}
}

func copyDocument(document models.Document) models.Document {
	clone := make(models.Document, len(document))
	for key, value := range document {
		if list, ok := value.([]interface{}); ok {
			value = append([]interface{}(nil), list...)
		}
		clone[key] = value
	}
	return clone
}

func insert(collection map[string]models.Document, document models.Document) string {
	objectID := primitive.NewObjectID()
	stored := copyDocument(document)
	stored["_id"] = objectID
	collection[objectID.Hex()] = stored
	return objectID.Hex()
}

type memoryDoctorRepository struct {
	store *memoryStore
}

func (repo *memoryDoctorRepository) CreateDoctor(ctx context.Context, doctor models.Document) (string, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	if repo.store.insertErr != nil {
		return "", repo.store.insertErr
	}
	return insert(repo.store.doctors, doctor), nil
}

func (repo *memoryDoctorRepository) FindByID(ctx context.Context, doctorID string) (models.Document, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	doctor, ok := repo.store.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return copyDocument(doctor), nil
}

func (repo *memoryDoctorRepository) FindByEmail(ctx context.Context, email string) (models.Document, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, doctor := range repo.store.doctors {
		if doctor["email"] == email {
			return copyDocument(doctor), nil
		}
	}
	return nil, nil
}

func (repo *memoryDoctorRepository) FindByCredentials(ctx context.Context, email, password string) (models.Document, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	for _, doctor := range repo.store.doctors {
		if doctor["email"] == email && doctor["password"] == password {
			return copyDocument(doctor), nil
		}
	}
	return nil, nil
}

func (repo *memoryDoctorRepository) AppendPatientIDs(ctx context.Context, doctorID string, patientIDs ...string) (*models.UpdateResult, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	doctor, ok := repo.store.doctors[doctorID]
	if !ok {
		return &models.UpdateResult{}, nil
	}
	list, _ := doctor["patients"].([]interface{})
	for _, patientID := range patientIDs {
		list = append(list, patientID)
	}
	doctor["patients"] = list
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (repo *memoryDoctorRepository) RemovePatientIDFromAll(ctx context.Context, patientID string) (*models.UpdateResult, error) {
	return repo.RemovePatientIDsFromAll(ctx, []string{patientID})
}

func (repo *memoryDoctorRepository) RemovePatientIDsFromAll(ctx context.Context, patientIDs []string) (*models.UpdateResult, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	remove := map[string]bool{}
	for _, patientID := range patientIDs {
		remove[patientID] = true
	}

	result := &models.UpdateResult{}
	for _, doctor := range repo.store.doctors {
		list, _ := doctor["patients"].([]interface{})
		kept := make([]interface{}, 0, len(list))
		for _, value := range list {
			if id, ok := value.(string); ok && remove[id] {
				continue
			}
			kept = append(kept, value)
		}
		if len(kept) != len(list) {
			result.MatchedCount++
			result.ModifiedCount++
			doctor["patients"] = kept
		}
	}
	return result, nil
}

type memoryPatientRepository struct {
	store *memoryStore
}

func (repo *memoryPatientRepository) CreatePatient(ctx context.Context, patient models.Document) (string, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	if repo.store.insertErr != nil {
		return "", repo.store.insertErr
	}
	return insert(repo.store.patients, patient), nil
}

func (repo *memoryPatientRepository) CreatePatients(ctx context.Context, patients []models.Document) ([]string, error) {
	patientIDs := make([]string, 0, len(patients))
	for _, patient := range patients {
		patientID, err := repo.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		patientIDs = append(patientIDs, patientID)
	}
	return patientIDs, nil
}

func (repo *memoryPatientRepository) FindByID(ctx context.Context, patientID string) (models.Document, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	patient, ok := repo.store.patients[patientID]
	if !ok {
		return nil, nil
	}
	return copyDocument(patient), nil
}

func (repo *memoryPatientRepository) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Document, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	patients := []models.Document{}
	seen := map[string]bool{}
	for _, patientID := range patientIDs {
		patient, ok := repo.store.patients[patientID]
		if ok && !seen[patientID] {
			seen[patientID] = true
			patients = append(patients, copyDocument(patient))
		}
	}
	return patients, nil
}

func (repo *memoryPatientRepository) UpdateFields(ctx context.Context, patientID string, fields models.Document) (*models.UpdateResult, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	patient, ok := repo.store.patients[patientID]
	if !ok {
		return &models.UpdateResult{}, nil
	}
	for key, value := range fields {
		patient[key] = value
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (repo *memoryPatientRepository) DeleteByID(ctx context.Context, patientID string) (int64, error) {
	return repo.DeleteByIDs(ctx, []string{patientID})
}

func (repo *memoryPatientRepository) DeleteByIDs(ctx context.Context, patientIDs []string) (int64, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()
	var deletedCount int64
	for _, patientID := range patientIDs {
		if _, ok := repo.store.patients[patientID]; ok {
			delete(repo.store.patients, patientID)
			deletedCount++
		}
	}
	return deletedCount, nil
}
