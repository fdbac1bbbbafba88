package ingestion

import (
	"context"
	"errors"
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/models"
	"health-records-service/internal/pkg/dto/requests"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const patientsCSV = `Id,BIRTHDATE,SSN,PREFIX,FIRST,LAST,GENDER,ADDRESS,CITY,STATE,COUNTY,ZIP,INCOME
a1,1980-01-01,999-11-2222,Mr.,John,Doe,M,1 Main St,Boston,MA,Suffolk,02110,50000
a2,1975-05-05,,Mrs.,MARY,Major,F,2 Elm St,Salem,MA,Essex,,62000
a3,1990-09-09,999-33-4444,,Li,Wu,F,3 Oak St,Lynn,MA,Essex,01901,41000
`

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, filePath, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, filePath, bucketName, objectName)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, queue string, payload interface{}) error {
	args := m.Called(ctx, queue, payload)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient models.Document) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) CreatePatients(ctx context.Context, patients []models.Document) ([]string, error) {
	args := m.Called(ctx, patients)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (models.Document, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(models.Document)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Document, error) {
	args := m.Called(ctx, patientIDs)
	patients, _ := args.Get(0).([]models.Document)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) UpdateFields(ctx context.Context, patientID string, fields models.Document) (*models.UpdateResult, error) {
	args := m.Called(ctx, patientID, fields)
	result, _ := args.Get(0).(*models.UpdateResult)
	return result, args.Error(1)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) DeleteByIDs(ctx context.Context, patientIDs []string) (int64, error) {
	args := m.Called(ctx, patientIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor models.Document) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (models.Document, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(models.Document)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (models.Document, error) {
	args := m.Called(ctx, email)
	doctor, _ := args.Get(0).(models.Document)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByCredentials(ctx context.Context, email, password string) (models.Document, error) {
	args := m.Called(ctx, email, password)
	doctor, _ := args.Get(0).(models.Document)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) AppendPatientIDs(ctx context.Context, doctorID string, patientIDs ...string) (*models.UpdateResult, error) {
	args := m.Called(ctx, doctorID, patientIDs)
	result, _ := args.Get(0).(*models.UpdateResult)
	return result, args.Error(1)
}

func (m *MockDoctorRepository) RemovePatientIDFromAll(ctx context.Context, patientID string) (*models.UpdateResult, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.UpdateResult)
	return result, args.Error(1)
}

func (m *MockDoctorRepository) RemovePatientIDsFromAll(ctx context.Context, patientIDs []string) (*models.UpdateResult, error) {
	args := m.Called(ctx, patientIDs)
	result, _ := args.Get(0).(*models.UpdateResult)
	return result, args.Error(1)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestConfig(t *testing.T) *config.IngestionConfig {
	t.Helper()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "patients.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(patientsCSV), 0644))

	return &config.IngestionConfig{
		InputPath:      inputPath,
		OutputPath:     filepath.Join(dir, "patients.json"),
		Limit:          50,
		Fields:         []string{"_id", "id", "birthdate", "ssn", "prefix", "first", "last", "gender", "address", "city", "state", "county", "zip"},
		FirstNameField: "first",
		EmailDomain:    "example.com",
		Seed:           42,
	}
}

func readOutput(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestIngestionUsecase_Transform(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes Enriched Records", func(t *testing.T) {
		cfg := newTestConfig(t)
		uc := NewIngestionUsecase(cfg, gofakeit.New(cfg.Seed), IngestionDependencies{}, newTestLogger())

		result, err := uc.Transform(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RecordCount)

		records := readOutput(t, cfg.OutputPath)
		require.Len(t, records, 3)
		first := records[0]
		assert.Equal(t, "a1", first["id"])
		assert.Equal(t, "02110", first["zip"], "values are kept as strings")
		assert.NotContains(t, first, "income", "columns outside the allow-list are excluded")
		assert.Equal(t, "john@example.com", first["email"])
		assert.Equal(t, true, first["digitalConsent"])
		assert.Len(t, first["diseases"], 2)
		assert.Len(t, first["allergies"], 2)

		assert.Equal(t, "mary@example.com", records[1]["email"])
		assert.Equal(t, "", records[1]["ssn"], "missing cells become empty strings")

		data, err := os.ReadFile(cfg.OutputPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n    {", "output is indented with four spaces")
	})

	t.Run("Same Seed Same Output", func(t *testing.T) {
		cfg := newTestConfig(t)
		_, err := NewIngestionUsecase(cfg, gofakeit.New(9), IngestionDependencies{}, newTestLogger()).Transform(ctx)
		require.NoError(t, err)
		firstRun := readOutput(t, cfg.OutputPath)

		_, err = NewIngestionUsecase(cfg, gofakeit.New(9), IngestionDependencies{}, newTestLogger()).Transform(ctx)
		require.NoError(t, err)
		secondRun := readOutput(t, cfg.OutputPath)

		assert.Equal(t, firstRun, secondRun)
	})

	t.Run("Limit", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Limit = 2
		result, err := NewIngestionUsecase(cfg, gofakeit.New(1), IngestionDependencies{}, newTestLogger()).Transform(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, result.RecordCount)
		assert.Len(t, readOutput(t, cfg.OutputPath), 2)
	})

	t.Run("Missing Source File", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.InputPath = filepath.Join(t.TempDir(), "absent.csv")

		_, err := NewIngestionUsecase(cfg, gofakeit.New(1), IngestionDependencies{}, newTestLogger()).Transform(ctx)

		assert.Error(t, err)
		_, statErr := os.Stat(cfg.OutputPath)
		assert.True(t, os.IsNotExist(statErr), "no output is written on failure")
	})

	t.Run("First Name Field Not Projected", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.Fields = []string{"_id", "last"}

		_, err := NewIngestionUsecase(cfg, gofakeit.New(1), IngestionDependencies{}, newTestLogger()).Transform(ctx)

		assert.Error(t, err)
	})

	t.Run("Uploads And Notifies", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.UploadBucket = "ingestion"
		cfg.NotifyQueue = "ingestion.completed"

		mockStorage := new(MockStorage)
		mockStorage.On("UploadFile", ctx, cfg.OutputPath, "ingestion", mock.AnythingOfType("string")).Return("patients_1.json", nil)
		mockPublisher := new(MockPublisher)
		mockPublisher.On("Publish", ctx, "ingestion.completed", mock.MatchedBy(func(n requests.IngestionNotification) bool {
			return n.RecordCount == 3 && n.ObjectName == "patients_1.json" && n.OutputPath == cfg.OutputPath
		})).Return(nil)

		uc := NewIngestionUsecase(cfg, gofakeit.New(1), IngestionDependencies{Storage: mockStorage, Publisher: mockPublisher}, newTestLogger())
		result, err := uc.Transform(ctx)

		require.NoError(t, err)
		assert.Equal(t, "patients_1.json", result.ObjectName)
		mockStorage.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		cfg := newTestConfig(t)
		cfg.UploadBucket = "ingestion"

		mockStorage := new(MockStorage)
		mockStorage.On("UploadFile", ctx, cfg.OutputPath, "ingestion", mock.Anything).Return("", errors.New("access denied"))

		_, err := NewIngestionUsecase(cfg, gofakeit.New(1), IngestionDependencies{Storage: mockStorage}, newTestLogger()).Transform(ctx)
		assert.Error(t, err)
	})
}

func TestIngestionUsecase_Load(t *testing.T) {
	ctx := context.Background()

	writeInput := func(t *testing.T) string {
		path := filepath.Join(t.TempDir(), "patients.json")
		content := `[{"_id": "a1", "first": "John"}, {"_id": "a2", "first": "Mary"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	expected := []models.Document{
		{"sourceId": "a1", "first": "John"},
		{"sourceId": "a2", "first": "Mary"},
	}

	t.Run("Inserts And Links", func(t *testing.T) {
		mockPatients := new(MockPatientRepository)
		mockDoctors := new(MockDoctorRepository)
		mockPatients.On("CreatePatients", ctx, expected).Return([]string{"p1", "p2"}, nil)
		mockDoctors.On("AppendPatientIDs", ctx, "d1", []string{"p1", "p2"}).Return(&models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

		uc := NewIngestionUsecase(&config.IngestionConfig{}, gofakeit.New(1), IngestionDependencies{
			PatientRepository: mockPatients,
			DoctorRepository:  mockDoctors,
		}, newTestLogger())
		result, err := uc.Load(ctx, writeInput(t), "d1")

		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, result.PatientIDs)
		assert.True(t, result.Linked)
		mockPatients.AssertExpectations(t)
		mockDoctors.AssertExpectations(t)
	})

	t.Run("Without Doctor", func(t *testing.T) {
		mockPatients := new(MockPatientRepository)
		mockDoctors := new(MockDoctorRepository)
		mockPatients.On("CreatePatients", ctx, expected).Return([]string{"p1", "p2"}, nil)

		uc := NewIngestionUsecase(&config.IngestionConfig{}, gofakeit.New(1), IngestionDependencies{
			PatientRepository: mockPatients,
			DoctorRepository:  mockDoctors,
		}, newTestLogger())
		result, err := uc.Load(ctx, writeInput(t), "")

		require.NoError(t, err)
		assert.False(t, result.Linked)
		mockDoctors.AssertNotCalled(t, "AppendPatientIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		mockPatients := new(MockPatientRepository)
		mockDoctors := new(MockDoctorRepository)
		mockPatients.On("CreatePatients", ctx, expected).Return([]string{"p1", "p2"}, nil)
		mockDoctors.On("AppendPatientIDs", ctx, "missing", []string{"p1", "p2"}).Return(&models.UpdateResult{}, nil)

		uc := NewIngestionUsecase(&config.IngestionConfig{}, gofakeit.New(1), IngestionDependencies{
			PatientRepository: mockPatients,
			DoctorRepository:  mockDoctors,
		}, newTestLogger())
		_, err := uc.Load(ctx, writeInput(t), "missing")

		assert.Error(t, err)
	})
}
